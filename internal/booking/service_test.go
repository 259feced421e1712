package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/models"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/notifications"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/slots"
)

type memSlotRepo struct {
	mu    sync.Mutex
	slots map[string]*models.Slot
}

func newMemSlotRepo(items ...models.Slot) *memSlotRepo {
	repo := &memSlotRepo{slots: make(map[string]*models.Slot)}
	for i := range items {
		s := items[i]
		repo.slots[s.ID] = &s
	}
	return repo
}

func (r *memSlotRepo) ListAvailable(ctx context.Context, therapist, fromDate string) ([]models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]models.Slot, 0)
	for _, s := range r.slots {
		if !s.IsBooked {
			items = append(items, *s)
		}
	}
	return items, nil
}

func (r *memSlotRepo) ListAll(ctx context.Context) ([]models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]models.Slot, 0, len(r.slots))
	for _, s := range r.slots {
		items = append(items, *s)
	}
	return items, nil
}

func (r *memSlotRepo) GetByID(ctx context.Context, id string) (models.Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.slots[id]; ok {
		return *s, nil
	}
	return models.Slot{}, slots.ErrNotFound
}

func (r *memSlotRepo) Create(ctx context.Context, slot models.Slot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[slot.ID] = &slot
	return nil
}

func (r *memSlotRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.slots, id)
	return nil
}

func (r *memSlotRepo) Claim(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.slots[id]; ok && !s.IsBooked {
		s.IsBooked = true
		return nil
	}
	return slots.ErrUnavailable
}

func (r *memSlotRepo) Release(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.slots[id]; ok {
		s.IsBooked = false
	}
	return nil
}

type memBookingRepo struct {
	mu       sync.Mutex
	bookings []models.Booking
	failNext error
	bySlot   map[string]bool
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bySlot: make(map[string]bool)}
}

func (r *memBookingRepo) Create(ctx context.Context, booking models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failNext != nil {
		err := r.failNext
		r.failNext = nil
		return err
	}
	if r.bySlot[booking.SlotID] {
		return ErrDuplicate
	}
	r.bySlot[booking.SlotID] = true
	r.bookings = append(r.bookings, booking)
	return nil
}

func (r *memBookingRepo) GetByID(ctx context.Context, id string) (models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Booking{}, ErrNotFound
}

func (r *memBookingRepo) List(ctx context.Context, limit, offset int64) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Booking(nil), r.bookings...), nil
}

type captureNotifier struct {
	mu         sync.Mutex
	sent       []notifications.BookingNotification
	recipients []string
	err        error
}

func (n *captureNotifier) SendBookingNotification(ctx context.Context, payload notifications.BookingNotification, recipients []string) (int, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return 0, n.err
	}
	n.sent = append(n.sent, payload)
	n.recipients = recipients
	return len(recipients), nil
}

func testBookingService(slotRepo slots.Repository, bookingRepo Repository, notifier Notifier) *Service {
	loc, _ := time.LoadLocation("Australia/Sydney")
	svc := NewService(slotRepo, bookingRepo, notifier, []string{"sandra@intunetherapy.com.au", "brett@intunetherapy.com.au"}, loc)
	svc.now = func() time.Time {
		return time.Date(2025, 6, 1, 9, 0, 0, 0, loc)
	}
	return svc
}

func TestConfirmBooksSlotAndNotifies(t *testing.T) {
	slotRepo := newMemSlotRepo(models.Slot{
		ID: "slot-1", Therapist: "brett", Date: "2025-06-10", StartTime: "09:00", EndTime: "10:00",
	})
	bookingRepo := newMemBookingRepo()
	notifier := &captureNotifier{}
	svc := testBookingService(slotRepo, bookingRepo, notifier)

	booking, slot, err := svc.Confirm(context.Background(), ConfirmRequest{
		SlotID: "slot-1",
		Name:   "  Jane Doe ",
		Email:  "jane@example.com",
		Phone:  "0400 000 000",
	})
	require.NoError(t, err)
	require.Equal(t, "slot-1", booking.SlotID)
	require.Equal(t, "brett", booking.Therapist)
	require.Equal(t, "Jane Doe", booking.CustomerName)
	require.Equal(t, models.SessionPriceCents, booking.SessionPrice)
	require.Equal(t, models.PaymentStatusPending, booking.PaymentStatus)
	require.NotEmpty(t, booking.Reference)
	require.True(t, slot.IsBooked)

	stored, err := slotRepo.GetByID(context.Background(), "slot-1")
	require.NoError(t, err)
	require.True(t, stored.IsBooked)

	require.NoError(t, svc.Notify(context.Background(), booking, slot))
	require.Len(t, notifier.sent, 1)
	payload := notifier.sent[0]
	require.Equal(t, "Brett Boyland", payload.TherapistName)
	require.Equal(t, "Tuesday, 10 June 2025", payload.SessionDate)
	require.Equal(t, "9:00 AM – 10:00 AM", payload.SessionTime)
	require.Equal(t, "Jane Doe", payload.CustomerName)
	require.Equal(t, "jane@example.com", payload.CustomerEmail)
	require.Equal(t, []string{"sandra@intunetherapy.com.au", "brett@intunetherapy.com.au"}, notifier.recipients)
}

func TestConfirmConcurrentSingleWinner(t *testing.T) {
	slotRepo := newMemSlotRepo(models.Slot{
		ID: "slot-1", Therapist: "sandra", Date: "2025-06-10", StartTime: "09:00", EndTime: "10:00",
	})
	bookingRepo := newMemBookingRepo()
	svc := testBookingService(slotRepo, bookingRepo, nil)

	req := func(name string) ConfirmRequest {
		return ConfirmRequest{SlotID: "slot-1", Name: name, Email: name + "@example.com", Phone: "0400 000 000"}
	}

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for _, name := range []string{"first", "second"} {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			_, _, err := svc.Confirm(context.Background(), req(name))
			errs <- err
		}(name)
	}
	wg.Wait()
	close(errs)

	var ok, conflict int
	for err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrSlotUnavailable):
			conflict++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	require.Equal(t, 1, ok)
	require.Equal(t, 1, conflict)
	require.Len(t, bookingRepo.bookings, 1)
}

func TestConfirmReleasesClaimWhenInsertFails(t *testing.T) {
	slotRepo := newMemSlotRepo(models.Slot{
		ID: "slot-1", Therapist: "sandra", Date: "2025-06-10", StartTime: "09:00", EndTime: "10:00",
	})
	bookingRepo := newMemBookingRepo()
	bookingRepo.failNext = errors.New("write concern error")
	svc := testBookingService(slotRepo, bookingRepo, nil)

	_, _, err := svc.Confirm(context.Background(), ConfirmRequest{
		SlotID: "slot-1", Name: "Jane", Email: "jane@example.com", Phone: "0400 000 000",
	})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrSlotUnavailable)

	stored, err := slotRepo.GetByID(context.Background(), "slot-1")
	require.NoError(t, err)
	require.False(t, stored.IsBooked)
}

func TestConfirmRejectsPastAndMissingSlots(t *testing.T) {
	slotRepo := newMemSlotRepo(
		models.Slot{ID: "past", Therapist: "brett", Date: "2025-05-01", StartTime: "09:00", EndTime: "10:00"},
		models.Slot{ID: "taken", Therapist: "brett", Date: "2025-06-10", StartTime: "09:00", EndTime: "10:00", IsBooked: true},
	)
	svc := testBookingService(slotRepo, newMemBookingRepo(), nil)

	_, _, err := svc.Confirm(context.Background(), ConfirmRequest{
		SlotID: "missing", Name: "Jane", Email: "jane@example.com", Phone: "0400 000 000",
	})
	require.ErrorIs(t, err, ErrSlotNotFound)

	_, _, err = svc.Confirm(context.Background(), ConfirmRequest{
		SlotID: "past", Name: "Jane", Email: "jane@example.com", Phone: "0400 000 000",
	})
	require.ErrorIs(t, err, ErrSlotExpired)

	_, _, err = svc.Confirm(context.Background(), ConfirmRequest{
		SlotID: "taken", Name: "Jane", Email: "jane@example.com", Phone: "0400 000 000",
	})
	require.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestNotifyWithoutNotifierIsNoop(t *testing.T) {
	svc := testBookingService(newMemSlotRepo(), newMemBookingRepo(), nil)
	err := svc.Notify(context.Background(), models.Booking{Therapist: "brett"}, models.Slot{
		Date: "2025-06-10", StartTime: "09:00", EndTime: "10:00",
	})
	require.NoError(t, err)
}
