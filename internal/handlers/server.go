package handlers

import (
	"log/slog"
	"net/http"

	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/auth"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/cache"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/config"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/db"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/middleware"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/notifications"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/validation"
)

// Server carries the shared dependencies for the handlers that sit
// outside the slots/booking slices: contact, settings and admin auth.
type Server struct {
	Cfg    *config.Config
	Cols   *db.Collections
	Val    *validation.Validator
	Log    *slog.Logger
	Cache  cache.Cache
	Mailer *notifications.ResendClient
	Auth   *auth.Manager
}

func NewServer(cfg *config.Config, cols *db.Collections, val *validation.Validator, log *slog.Logger, c cache.Cache, mailer *notifications.ResendClient, authManager *auth.Manager) *Server {
	if c == nil {
		c = cache.NewNoop()
	}
	return &Server{
		Cfg:    cfg,
		Cols:   cols,
		Val:    val,
		Log:    log,
		Cache:  c,
		Mailer: mailer,
		Auth:   authManager,
	}
}

func (s *Server) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return s.Log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return s.Log.With(slog.String("request_id", id))
	}
	return s.Log
}

func (s *Server) notificationRecipients() []string {
	return []string{s.Cfg.SandraEmail, s.Cfg.BrettEmail}
}
