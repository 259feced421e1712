package booking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/cache"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/httpx"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/middleware"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/models"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/schedule"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/therapists"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/transport"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/validation"
)

type Handler struct {
	service  *Service
	val      *validation.Validator
	log      *slog.Logger
	cache    cache.Cache
	location *time.Location
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger, c cache.Cache, location *time.Location) *Handler {
	if c == nil {
		c = cache.NewNoop()
	}
	return &Handler{
		service:  service,
		val:      val,
		log:      log,
		cache:    c,
		location: location,
	}
}

// confirmationView is the terminal wizard payload: the booking plus the
// session details rendered the way the confirmation screen shows them.
type confirmationView struct {
	Booking       models.Booking `json:"booking"`
	TherapistName string         `json:"therapist_name"`
	SessionDate   string         `json:"session_date"`
	SessionTime   string         `json:"session_time"`
	SessionPrice  string         `json:"session_price"`
	PaymentNote   string         `json:"payment_note"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req ConfirmRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("bookings create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("bookings create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	booking, slot, err := h.service.Confirm(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotFound):
			log.Warn("bookings create: slot not found", slog.String("slot_id", req.SlotID))
			transport.WriteError(w, http.StatusNotFound, "slot not found", nil)
		case errors.Is(err, ErrSlotExpired):
			log.Warn("bookings create: slot date passed", slog.String("slot_id", req.SlotID))
			transport.WriteError(w, http.StatusBadRequest, "slot no longer available", nil)
		case errors.Is(err, ErrSlotUnavailable):
			log.Warn("bookings create: slot already booked", slog.String("slot_id", req.SlotID))
			transport.WriteError(w, http.StatusConflict, "slot already booked", nil)
		default:
			log.Error("bookings create: database error", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, "failed to complete booking", nil)
		}
		return
	}

	_ = h.cache.DeletePrefix(r.Context(), "availability:")

	go func(b models.Booking, s models.Slot) {
		notifyCtx, notifyCancel := context.WithTimeout(context.Background(), 8*time.Second)
		defer notifyCancel()
		if err := h.service.Notify(notifyCtx, b, s); err != nil {
			h.log.Warn("bookings create: notification failed",
				slog.String("booking_id", b.ID),
				slog.String("error", err.Error()),
			)
		}
	}(booking, slot)

	log.Info("bookings create: confirmed",
		slog.String("booking_id", booking.ID),
		slog.String("slot_id", booking.SlotID),
		slog.String("therapist", booking.Therapist),
		slog.String("date", slot.Date),
	)

	info, _ := therapists.Lookup(booking.Therapist)
	sessionDate, _ := schedule.FormatLongDate(slot.Date, h.location)
	sessionTime, _ := schedule.FormatTimeRange(slot.StartTime, slot.EndTime)

	transport.WriteJSON(w, http.StatusCreated, confirmationView{
		Booking:       booking,
		TherapistName: info.Name,
		SessionDate:   sessionDate,
		SessionTime:   sessionTime,
		SessionPrice:  info.Price,
		PaymentNote:   "Payment will be collected at the session or via invoice sent to your email.",
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("bookings get: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	booking, err := h.service.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("bookings get: not found", slog.String("booking_id", id))
			transport.WriteError(w, http.StatusNotFound, "booking not found", nil)
			return
		}
		log.Error("bookings get: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("bookings get: ok", slog.String("booking_id", id))
	transport.WriteJSON(w, http.StatusOK, booking)
}

func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	limit, offset, err := httpx.ParseLimitOffset(r.URL.Query(), 20, 100)
	if err != nil {
		log.Warn("admin bookings list: invalid query", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, err := h.service.ListAdmin(ctx, limit, offset)
	if err != nil {
		log.Error("admin bookings list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin bookings list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"items":  items,
		"limit":  limit,
		"offset": offset,
	})
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
