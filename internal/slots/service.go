package slots

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/models"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/schedule"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/therapists"
)

var (
	ErrInvalidTherapist = errors.New("unknown therapist")
	ErrDateInPast       = errors.New("date in the past")
	ErrSlotBooked       = errors.New("slot is booked")
)

type Service struct {
	repo     Repository
	location *time.Location
	now      func() time.Time
}

func NewService(repo Repository, location *time.Location) *Service {
	return &Service{
		repo:     repo,
		location: location,
		now:      time.Now,
	}
}

type SlotView struct {
	ID        string `json:"id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Label     string `json:"label"`
}

type DayGroup struct {
	Date  string     `json:"date"`
	Label string     `json:"label"`
	Slots []SlotView `json:"slots"`
}

// Availability is the slot-selection payload: unbooked future slots for
// one therapist, grouped by date. OutsidePeriod counts slots hidden by
// the period filter so the client can offer a one-click reset.
type Availability struct {
	Therapist     string     `json:"therapist"`
	Period        string     `json:"period"`
	Days          []DayGroup `json:"days"`
	Total         int        `json:"total"`
	OutsidePeriod int        `json:"outside_period"`
}

func (s *Service) Availability(ctx context.Context, therapist, date, period string) (Availability, error) {
	therapist = strings.ToLower(strings.TrimSpace(therapist))
	if !therapists.IsValid(therapist) {
		return Availability{}, ErrInvalidTherapist
	}
	period = strings.ToLower(strings.TrimSpace(period))
	if period == "" {
		period = schedule.PeriodAll
	}
	if !schedule.IsValidPeriod(period) {
		return Availability{}, schedule.ErrInvalidPeriod
	}

	today := s.now().In(s.location).Format("2006-01-02")
	items, err := s.repo.ListAvailable(ctx, therapist, today)
	if err != nil {
		return Availability{}, err
	}

	if date != "" {
		kept := items[:0]
		for _, slot := range items {
			if slot.Date == date {
				kept = append(kept, slot)
			}
		}
		items = kept
	}

	result := Availability{
		Therapist: therapist,
		Period:    period,
		Days:      make([]DayGroup, 0),
	}

	for _, slot := range items {
		in, err := schedule.InPeriod(slot.StartTime, period)
		if err != nil {
			return Availability{}, err
		}
		if !in {
			result.OutsidePeriod++
			continue
		}

		label, err := schedule.FormatTimeRange(slot.StartTime, slot.EndTime)
		if err != nil {
			return Availability{}, err
		}
		view := SlotView{
			ID:        slot.ID,
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Label:     label,
		}

		if n := len(result.Days); n > 0 && result.Days[n-1].Date == slot.Date {
			result.Days[n-1].Slots = append(result.Days[n-1].Slots, view)
		} else {
			dayLabel, err := schedule.FormatLongDate(slot.Date, s.location)
			if err != nil {
				return Availability{}, err
			}
			result.Days = append(result.Days, DayGroup{
				Date:  slot.Date,
				Label: dayLabel,
				Slots: []SlotView{view},
			})
		}
		result.Total++
	}

	return result, nil
}

type CreateRequest struct {
	Therapist string `json:"therapist" validate:"required,therapist"`
	Date      string `json:"slot_date" validate:"required,date"`
	StartTime string `json:"start_time" validate:"required,clock"`
	EndTime   string `json:"end_time" validate:"required,clock"`
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (models.Slot, error) {
	if err := schedule.ValidateRange(req.StartTime, req.EndTime); err != nil {
		return models.Slot{}, err
	}

	past, err := schedule.IsDatePast(req.Date, s.location, s.now())
	if err != nil {
		return models.Slot{}, err
	}
	if past {
		return models.Slot{}, ErrDateInPast
	}

	slot := models.Slot{
		ID:        primitive.NewObjectID().Hex(),
		Therapist: strings.ToLower(strings.TrimSpace(req.Therapist)),
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		IsBooked:  false,
		CreatedAt: s.now().In(s.location),
	}

	if err := s.repo.Create(ctx, slot); err != nil {
		return models.Slot{}, err
	}
	return slot, nil
}

// Delete refuses to remove a booked slot; a booking already references it.
func (s *Service) Delete(ctx context.Context, id string) error {
	slot, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if slot.IsBooked {
		return ErrSlotBooked
	}
	if err := s.repo.Delete(ctx, slot.ID); err != nil {
		// Lost a race with a claim between the read and the delete.
		if errors.Is(err, ErrNotFound) {
			return ErrSlotBooked
		}
		return err
	}
	return nil
}

// ByTherapist groups every slot (booked included) for the admin view.
type ByTherapist struct {
	Therapist string        `json:"therapist"`
	Name      string        `json:"name"`
	Slots     []models.Slot `json:"slots"`
}

func (s *Service) ListAdmin(ctx context.Context) ([]ByTherapist, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	groups := make([]ByTherapist, 0)
	for _, info := range therapists.All() {
		group := ByTherapist{Therapist: info.ID, Name: info.Name, Slots: make([]models.Slot, 0)}
		for _, slot := range items {
			if slot.Therapist == info.ID {
				group.Slots = append(group.Slots, slot)
			}
		}
		groups = append(groups, group)
	}
	return groups, nil
}
