package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/metrics"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/models"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/notifications"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/schedule"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/slots"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/therapists"
)

var (
	ErrSlotNotFound    = errors.New("slot not found")
	ErrSlotUnavailable = errors.New("slot already booked")
	ErrSlotExpired     = errors.New("slot date has passed")
)

// Notifier is the at-most-once, best-effort email hook invoked after a
// booking commits. Failures never affect the booking outcome.
type Notifier interface {
	SendBookingNotification(ctx context.Context, n notifications.BookingNotification, recipients []string) (int, error)
}

type Service struct {
	slots      slots.Repository
	bookings   Repository
	notifier   Notifier
	recipients []string
	location   *time.Location
	now        func() time.Time
}

func NewService(slotRepo slots.Repository, bookingRepo Repository, notifier Notifier, recipients []string, location *time.Location) *Service {
	return &Service{
		slots:      slotRepo,
		bookings:   bookingRepo,
		notifier:   notifier,
		recipients: recipients,
		location:   location,
		now:        time.Now,
	}
}

type ConfirmRequest struct {
	SlotID  string `json:"slot_id" validate:"required"`
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Phone   string `json:"phone" validate:"required,max=20"`
	Address string `json:"address" validate:"omitempty,max=255"`
}

// Confirm executes the booking sequence. The slot is claimed first with
// a conditional update (is_booked false -> true), so two concurrent
// confirms for one slot resolve to exactly one winner; the loser gets
// ErrSlotUnavailable. The booking row is inserted only after a
// successful claim, which keeps orphan bookings out of the store; a
// failed insert releases the claim best-effort.
func (s *Service) Confirm(ctx context.Context, req ConfirmRequest) (models.Booking, models.Slot, error) {
	slot, err := s.slots.GetByID(ctx, strings.TrimSpace(req.SlotID))
	if err != nil {
		if errors.Is(err, slots.ErrNotFound) {
			return models.Booking{}, models.Slot{}, ErrSlotNotFound
		}
		return models.Booking{}, models.Slot{}, err
	}

	past, err := schedule.IsDatePast(slot.Date, s.location, s.now())
	if err != nil {
		return models.Booking{}, models.Slot{}, err
	}
	if past {
		return models.Booking{}, models.Slot{}, ErrSlotExpired
	}

	if err := s.slots.Claim(ctx, slot.ID); err != nil {
		if errors.Is(err, slots.ErrUnavailable) {
			metrics.BookingConflicts.Inc()
			return models.Booking{}, models.Slot{}, ErrSlotUnavailable
		}
		return models.Booking{}, models.Slot{}, err
	}

	booking := models.Booking{
		ID:              primitive.NewObjectID().Hex(),
		Reference:       uuid.NewString(),
		SlotID:          slot.ID,
		Therapist:       slot.Therapist,
		CustomerName:    strings.TrimSpace(req.Name),
		CustomerEmail:   strings.TrimSpace(req.Email),
		CustomerPhone:   strings.TrimSpace(req.Phone),
		CustomerAddress: strings.TrimSpace(req.Address),
		SessionPrice:    models.SessionPriceCents,
		PaymentStatus:   models.PaymentStatusPending,
		CreatedAt:       s.now().In(s.location),
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		if errors.Is(err, ErrDuplicate) {
			metrics.BookingConflicts.Inc()
			return models.Booking{}, models.Slot{}, ErrSlotUnavailable
		}
		_ = s.slots.Release(ctx, slot.ID)
		return models.Booking{}, models.Slot{}, err
	}

	slot.IsBooked = true
	metrics.BookingsConfirmed.Inc()
	return booking, slot, nil
}

// Notify emails the therapists about a confirmed booking. Callers run it
// after Confirm returns; an error here is logged and counted, nothing
// more.
func (s *Service) Notify(ctx context.Context, booking models.Booking, slot models.Slot) error {
	if s.notifier == nil {
		return nil
	}

	info, ok := therapists.Lookup(booking.Therapist)
	if !ok {
		return errors.New("unknown therapist on booking")
	}
	sessionDate, err := schedule.FormatLongDate(slot.Date, s.location)
	if err != nil {
		return err
	}
	sessionTime, err := schedule.FormatTimeRange(slot.StartTime, slot.EndTime)
	if err != nil {
		return err
	}

	_, err = s.notifier.SendBookingNotification(ctx, notifications.BookingNotification{
		TherapistName:   info.Name,
		CustomerName:    booking.CustomerName,
		CustomerEmail:   booking.CustomerEmail,
		CustomerPhone:   booking.CustomerPhone,
		CustomerAddress: booking.CustomerAddress,
		SessionDate:     sessionDate,
		SessionTime:     sessionTime,
		SessionPrice:    info.Price,
	}, s.recipients)
	if err != nil {
		metrics.NotificationFailures.Inc()
	}
	return err
}

func (s *Service) GetByID(ctx context.Context, id string) (models.Booking, error) {
	return s.bookings.GetByID(ctx, strings.TrimSpace(id))
}

func (s *Service) ListAdmin(ctx context.Context, limit, offset int64) ([]models.Booking, error) {
	return s.bookings.List(ctx, limit, offset)
}
