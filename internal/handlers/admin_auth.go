package handlers

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/auth"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/httpx"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/middleware"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/models"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/transport"
)

const RefreshCookieName = "intune_refresh"

type loginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=200"`
}

func (s *Server) setAuthCookies(w http.ResponseWriter, access, refresh string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessCookieName,
		Value:    access,
		Path:     "/",
		MaxAge:   int(s.Auth.AccessTTL.Seconds()),
		HttpOnly: true,
		Secure:   s.Cfg.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookieName,
		Value:    refresh,
		Path:     "/api/admin",
		MaxAge:   int(s.Auth.RefreshTTL.Seconds()),
		HttpOnly: true,
		Secure:   s.Cfg.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
}

func (s *Server) clearAuthCookies(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AccessCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.Cfg.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookieName,
		Value:    "",
		Path:     "/api/admin",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.Cfg.CookieSecure,
		SameSite: http.SameSiteStrictMode,
	})
}

// checkCredentials verifies against the users collection first, then the
// bootstrap admin from the environment. Returns the role on success.
func (s *Server) checkCredentials(ctx context.Context, username, password string) (string, bool) {
	var user models.User
	err := s.Cols.Users.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err == nil {
		if auth.ComparePassword(user.PasswordHash, password) == nil {
			return user.Role, true
		}
		return "", false
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return "", false
	}

	if s.Cfg.AdminPassword == "" {
		return "", false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.Cfg.AdminUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.Cfg.AdminPassword)) == 1
	if userOK && passOK {
		return models.UserRoleAdmin, true
	}
	return "", false
}

func (s *Server) AdminLogin(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	if s.Auth == nil {
		transport.WriteError(w, http.StatusServiceUnavailable, "admin auth not configured", nil)
		return
	}

	var req loginRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin login: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		log.Warn("admin login: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(s.Val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	role, ok := s.checkCredentials(ctx, strings.TrimSpace(req.Username), req.Password)
	if !ok {
		log.Warn("admin login: bad credentials", slog.String("username", req.Username))
		transport.WriteError(w, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	access, err := s.Auth.NewAccessToken(role)
	if err != nil {
		log.Error("admin login: token error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to issue token", nil)
		return
	}
	refresh, err := s.Auth.NewRefreshToken(role)
	if err != nil {
		log.Error("admin login: token error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to issue token", nil)
		return
	}

	s.setAuthCookies(w, access, refresh)
	log.Info("admin login: ok", slog.String("username", req.Username))
	transport.WriteJSON(w, http.StatusOK, map[string]string{
		"status": "authenticated",
		"role":   role,
	})
}

func (s *Server) AdminRefresh(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	if s.Auth == nil {
		transport.WriteError(w, http.StatusServiceUnavailable, "admin auth not configured", nil)
		return
	}

	cookie, err := r.Cookie(RefreshCookieName)
	if err != nil || cookie.Value == "" {
		log.Warn("admin refresh: missing cookie")
		transport.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	claims, err := s.Auth.Parse(cookie.Value)
	if err != nil {
		log.Warn("admin refresh: invalid token")
		transport.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}

	access, err := s.Auth.NewAccessToken(claims.Role)
	if err != nil {
		log.Error("admin refresh: token error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to issue token", nil)
		return
	}
	refresh, err := s.Auth.NewRefreshToken(claims.Role)
	if err != nil {
		log.Error("admin refresh: token error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to issue token", nil)
		return
	}

	s.setAuthCookies(w, access, refresh)
	log.Info("admin refresh: ok")
	transport.WriteJSON(w, http.StatusOK, map[string]string{"status": "refreshed"})
}

func (s *Server) AdminLogout(w http.ResponseWriter, r *http.Request) {
	s.clearAuthCookies(w)
	s.logWithRequest(r).Info("admin logout: ok")
	transport.WriteJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}
