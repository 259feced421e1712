package content

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/cache"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/middleware"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/transport"
)

type Handler struct {
	log      *slog.Logger
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewHandler(log *slog.Logger, c cache.Cache, cacheTTL time.Duration) *Handler {
	if c == nil {
		c = cache.NewNoop()
	}
	return &Handler{log: log, cache: c, cacheTTL: cacheTTL}
}

// writeCached serves compiled-in data through the cache so repeated page
// loads skip the marshal.
func (h *Handler) writeCached(w http.ResponseWriter, r *http.Request, key string, data interface{}) {
	if cached, ok, err := h.cache.Get(r.Context(), key); err == nil && ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(cached)
		return
	}

	payload, err := json.Marshal(data)
	if err != nil {
		h.logWithRequest(r).Error("content: marshal error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "internal error", nil)
		return
	}
	_ = h.cache.Set(r.Context(), key, payload, h.cacheTTL)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

func (h *Handler) GetServices(w http.ResponseWriter, r *http.Request) {
	h.writeCached(w, r, "content:services", map[string]interface{}{"services": Services()})
}

func (h *Handler) GetPrograms(w http.ResponseWriter, r *http.Request) {
	h.writeCached(w, r, "content:programs", map[string]interface{}{"programs": Programs()})
}

func (h *Handler) GetTherapists(w http.ResponseWriter, r *http.Request) {
	h.writeCached(w, r, "content:therapists", map[string]interface{}{"therapists": TherapistProfiles()})
}

func (h *Handler) GetResources(w http.ResponseWriter, r *http.Request) {
	h.writeCached(w, r, "content:resources", map[string]interface{}{"resources": Resources()})
}

func (h *Handler) GetVideos(w http.ResponseWriter, r *http.Request) {
	h.writeCached(w, r, "content:videos", map[string]interface{}{"videos": Videos()})
}

func (h *Handler) GetVideo(w http.ResponseWriter, r *http.Request) {
	id := strings.ToLower(strings.TrimSpace(chi.URLParam(r, "id")))
	video, ok := VideoByID(id)
	if !ok {
		h.logWithRequest(r).Warn("content video: not found", slog.String("video_id", id))
		transport.WriteError(w, http.StatusNotFound, "video not found", nil)
		return
	}
	h.writeCached(w, r, "content:video:"+id, video)
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
