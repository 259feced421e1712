package slots

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/cache"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/httpx"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/middleware"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/schedule"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/transport"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/validation"
)

type Handler struct {
	service  *Service
	val      *validation.Validator
	log      *slog.Logger
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger, c cache.Cache, cacheTTL time.Duration) *Handler {
	if c == nil {
		c = cache.NewNoop()
	}
	return &Handler{
		service:  service,
		val:      val,
		log:      log,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

type availabilityQuery struct {
	Therapist string `validate:"required,therapist"`
	Date      string `validate:"omitempty,date"`
	Period    string `validate:"omitempty,period"`
}

func (h *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	q := availabilityQuery{
		Therapist: strings.ToLower(strings.TrimSpace(r.URL.Query().Get("therapist"))),
		Date:      strings.TrimSpace(r.URL.Query().Get("date")),
		Period:    strings.ToLower(strings.TrimSpace(r.URL.Query().Get("period"))),
	}
	if err := h.val.Struct(q); err != nil {
		log.Warn("availability: invalid query")
		transport.WriteError(w, http.StatusBadRequest, "invalid query", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	cacheKey := "availability:" + q.Therapist + ":" + q.Date + ":" + q.Period
	if cached, ok, err := h.cache.Get(r.Context(), cacheKey); err == nil && ok {
		log.Info("availability: cache hit", slog.String("therapist", q.Therapist))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(cached)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := h.service.Availability(ctx, q.Therapist, q.Date, q.Period)
	if err != nil {
		if errors.Is(err, ErrInvalidTherapist) || errors.Is(err, schedule.ErrInvalidPeriod) {
			transport.WriteError(w, http.StatusBadRequest, "invalid query", nil)
			return
		}
		log.Error("availability: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	if payload, err := json.Marshal(result); err == nil {
		_ = h.cache.Set(r.Context(), cacheKey, payload, h.cacheTTL)
	}

	log.Info("availability: ok",
		slog.String("therapist", q.Therapist),
		slog.String("period", result.Period),
		slog.Int("slots", result.Total),
	)
	transport.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	groups, err := h.service.ListAdmin(ctx)
	if err != nil {
		log.Error("admin slots list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin slots list: ok")
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"therapists": groups})
}

func (h *Handler) AdminCreate(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin slots create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		log.Warn("admin slots create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	slot, err := h.service.Create(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidRange):
			transport.WriteError(w, http.StatusBadRequest, "end time must be after start time", nil)
		case errors.Is(err, ErrDateInPast):
			transport.WriteError(w, http.StatusBadRequest, "date in the past", nil)
		case errors.Is(err, ErrDuplicate):
			log.Warn("admin slots create: duplicate", slog.String("date", req.Date), slog.String("start", req.StartTime))
			transport.WriteError(w, http.StatusConflict, "slot already exists", nil)
		default:
			log.Error("admin slots create: database error", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		}
		return
	}

	_ = h.cache.DeletePrefix(r.Context(), "availability:")

	log.Info("admin slots create: ok",
		slog.String("slot_id", slot.ID),
		slog.String("therapist", slot.Therapist),
		slog.String("date", slot.Date),
	)
	transport.WriteJSON(w, http.StatusCreated, slot)
}

func (h *Handler) AdminDelete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("admin slots delete: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			log.Warn("admin slots delete: not found", slog.String("slot_id", id))
			transport.WriteError(w, http.StatusNotFound, "slot not found", nil)
		case errors.Is(err, ErrSlotBooked):
			log.Warn("admin slots delete: slot booked", slog.String("slot_id", id))
			transport.WriteError(w, http.StatusConflict, "booked slots cannot be deleted", nil)
		default:
			log.Error("admin slots delete: database error", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		}
		return
	}

	_ = h.cache.DeletePrefix(r.Context(), "availability:")

	log.Info("admin slots delete: ok", slog.String("slot_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
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
