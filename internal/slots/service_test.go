package slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/models"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/schedule"
)

type fakeRepo struct {
	slots []models.Slot
}

func (f *fakeRepo) ListAvailable(ctx context.Context, therapist, fromDate string) ([]models.Slot, error) {
	items := make([]models.Slot, 0)
	for _, s := range f.slots {
		if s.IsBooked || s.Date < fromDate {
			continue
		}
		if therapist != "" && s.Therapist != therapist {
			continue
		}
		items = append(items, s)
	}
	return items, nil
}

func (f *fakeRepo) ListAll(ctx context.Context) ([]models.Slot, error) {
	return append([]models.Slot(nil), f.slots...), nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (models.Slot, error) {
	for _, s := range f.slots {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Slot{}, ErrNotFound
}

func (f *fakeRepo) Create(ctx context.Context, slot models.Slot) error {
	for _, s := range f.slots {
		if s.Therapist == slot.Therapist && s.Date == slot.Date && s.StartTime == slot.StartTime {
			return ErrDuplicate
		}
	}
	f.slots = append(f.slots, slot)
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	for i, s := range f.slots {
		if s.ID == id && !s.IsBooked {
			f.slots = append(f.slots[:i], f.slots[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeRepo) Claim(ctx context.Context, id string) error {
	for i, s := range f.slots {
		if s.ID == id && !s.IsBooked {
			f.slots[i].IsBooked = true
			return nil
		}
	}
	return ErrUnavailable
}

func (f *fakeRepo) Release(ctx context.Context, id string) error {
	for i, s := range f.slots {
		if s.ID == id {
			f.slots[i].IsBooked = false
		}
	}
	return nil
}

func testService(repo Repository) *Service {
	loc, _ := time.LoadLocation("Australia/Sydney")
	svc := NewService(repo, loc)
	svc.now = func() time.Time {
		return time.Date(2025, 6, 1, 9, 0, 0, 0, loc)
	}
	return svc
}

func TestAvailabilityGroupsByDate(t *testing.T) {
	repo := &fakeRepo{slots: []models.Slot{
		{ID: "1", Therapist: "brett", Date: "2025-06-10", StartTime: "09:00", EndTime: "10:00"},
		{ID: "2", Therapist: "brett", Date: "2025-06-12", StartTime: "10:00", EndTime: "11:00"},
		{ID: "3", Therapist: "sandra", Date: "2025-06-10", StartTime: "09:00", EndTime: "10:00"},
		{ID: "4", Therapist: "brett", Date: "2025-05-01", StartTime: "09:00", EndTime: "10:00"},
		{ID: "5", Therapist: "brett", Date: "2025-06-13", StartTime: "09:00", EndTime: "10:00", IsBooked: true},
	}}
	svc := testService(repo)

	result, err := svc.Availability(context.Background(), "brett", "", "all")
	require.NoError(t, err)

	require.Len(t, result.Days, 2)
	require.Equal(t, "2025-06-10", result.Days[0].Date)
	require.Equal(t, "Tuesday, 10 June 2025", result.Days[0].Label)
	require.Equal(t, "2025-06-12", result.Days[1].Date)
	require.Equal(t, 2, result.Total)
	require.Equal(t, "9:00 AM – 10:00 AM", result.Days[0].Slots[0].Label)
}

func TestAvailabilityPeriodFilterReportsOutsideCount(t *testing.T) {
	repo := &fakeRepo{slots: []models.Slot{
		{ID: "1", Therapist: "sandra", Date: "2025-06-10", StartTime: "18:00", EndTime: "19:00"},
		{ID: "2", Therapist: "sandra", Date: "2025-06-10", StartTime: "19:00", EndTime: "20:00"},
	}}
	svc := testService(repo)

	filtered, err := svc.Availability(context.Background(), "sandra", "", schedule.PeriodMorning)
	require.NoError(t, err)
	require.Equal(t, 0, filtered.Total)
	require.Empty(t, filtered.Days)
	require.Equal(t, 2, filtered.OutsidePeriod)

	reset, err := svc.Availability(context.Background(), "sandra", "", schedule.PeriodAll)
	require.NoError(t, err)
	require.Equal(t, 2, reset.Total)
	require.Equal(t, 0, reset.OutsidePeriod)
}

func TestAvailabilityRejectsUnknownTherapist(t *testing.T) {
	svc := testService(&fakeRepo{})
	_, err := svc.Availability(context.Background(), "nobody", "", "all")
	require.ErrorIs(t, err, ErrInvalidTherapist)
}

func TestCreateValidatesRangeAndDate(t *testing.T) {
	repo := &fakeRepo{}
	svc := testService(repo)

	_, err := svc.Create(context.Background(), CreateRequest{
		Therapist: "brett", Date: "2025-06-10", StartTime: "10:00", EndTime: "09:00",
	})
	require.ErrorIs(t, err, schedule.ErrInvalidRange)

	_, err = svc.Create(context.Background(), CreateRequest{
		Therapist: "brett", Date: "2025-05-01", StartTime: "09:00", EndTime: "10:00",
	})
	require.ErrorIs(t, err, ErrDateInPast)

	slot, err := svc.Create(context.Background(), CreateRequest{
		Therapist: "brett", Date: "2025-06-10", StartTime: "09:00", EndTime: "10:00",
	})
	require.NoError(t, err)
	require.False(t, slot.IsBooked)

	_, err = svc.Create(context.Background(), CreateRequest{
		Therapist: "brett", Date: "2025-06-10", StartTime: "09:00", EndTime: "10:00",
	})
	require.ErrorIs(t, err, ErrDuplicate)
}

func TestDeleteRefusesBookedSlot(t *testing.T) {
	repo := &fakeRepo{slots: []models.Slot{
		{ID: "booked", Therapist: "brett", Date: "2025-06-10", StartTime: "09:00", EndTime: "10:00", IsBooked: true},
		{ID: "free", Therapist: "brett", Date: "2025-06-10", StartTime: "11:00", EndTime: "12:00"},
	}}
	svc := testService(repo)

	err := svc.Delete(context.Background(), "booked")
	require.ErrorIs(t, err, ErrSlotBooked)

	require.NoError(t, svc.Delete(context.Background(), "free"))
	require.ErrorIs(t, svc.Delete(context.Background(), "free"), ErrNotFound)
}
