package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/httpx"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/models"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/transport"
)

const (
	SettingSandraCalendarURL = "sandra_calendar_url"
	SettingBrettCalendarURL  = "brett_calendar_url"
	SettingPaymentConfigured = "payment_configured"
)

var publicSettingKeys = []string{SettingSandraCalendarURL, SettingBrettCalendarURL}

func (s *Server) loadSettings(ctx context.Context, keys []string) (map[string]string, error) {
	cursor, err := s.Cols.Settings.Find(ctx, bson.M{"_id": bson.M{"$in": keys}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	values := make(map[string]string, len(keys))
	for cursor.Next(ctx) {
		var setting models.Setting
		if err := cursor.Decode(&setting); err != nil {
			return nil, err
		}
		values[setting.Key] = setting.Value
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	for _, key := range keys {
		if _, ok := values[key]; !ok {
			values[key] = ""
		}
	}
	return values, nil
}

func (s *Server) upsertSetting(ctx context.Context, key, value string) error {
	_, err := s.Cols.Settings.UpdateOne(ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"value": value, "updated_at": time.Now().In(s.Cfg.Timezone)}},
		options.Update().SetUpsert(true),
	)
	return err
}

// GetPublicSettings exposes the calendar links the booking page embeds.
// Payment state stays admin-only.
func (s *Server) GetPublicSettings(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	values, err := s.loadSettings(ctx, publicSettingKeys)
	if err != nil {
		log.Error("settings get: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, values)
}

func (s *Server) AdminGetSettings(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	keys := append(append([]string(nil), publicSettingKeys...), SettingPaymentConfigured)
	values, err := s.loadSettings(ctx, keys)
	if err != nil {
		log.Error("admin settings get: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"sandra_calendar_url": values[SettingSandraCalendarURL],
		"brett_calendar_url":  values[SettingBrettCalendarURL],
		"payment_configured":  values[SettingPaymentConfigured] == "true",
	})
}

type updateSettingsRequest struct {
	SandraCalendarURL *string `json:"sandra_calendar_url" validate:"omitempty,url,max=500"`
	BrettCalendarURL  *string `json:"brett_calendar_url" validate:"omitempty,url,max=500"`
}

func (s *Server) AdminUpdateSettings(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)

	var req updateSettingsRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin settings update: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if req.SandraCalendarURL == nil && req.BrettCalendarURL == nil {
		log.Warn("admin settings update: empty request")
		transport.WriteError(w, http.StatusBadRequest, "no settings provided", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		log.Warn("admin settings update: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(s.Val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if req.SandraCalendarURL != nil {
		if err := s.upsertSetting(ctx, SettingSandraCalendarURL, strings.TrimSpace(*req.SandraCalendarURL)); err != nil {
			log.Error("admin settings update: database error", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
			return
		}
	}
	if req.BrettCalendarURL != nil {
		if err := s.upsertSetting(ctx, SettingBrettCalendarURL, strings.TrimSpace(*req.BrettCalendarURL)); err != nil {
			log.Error("admin settings update: database error", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
			return
		}
	}

	log.Info("admin settings update: ok")
	s.AdminGetSettings(w, r)
}

type configurePaymentRequest struct {
	SecretKey string `json:"secret_key" validate:"required"`
}

// AdminConfigurePayment records that a payment provider key was supplied.
// The key itself is never persisted, only the configured flag.
func (s *Server) AdminConfigurePayment(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)

	var req configurePaymentRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin payment config: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		log.Warn("admin payment config: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(s.Val.ValidationErrors(err)))
		return
	}
	if !strings.HasPrefix(strings.TrimSpace(req.SecretKey), "sk_") {
		log.Warn("admin payment config: bad key format")
		transport.WriteError(w, http.StatusBadRequest, "secret key must start with sk_", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.upsertSetting(ctx, SettingPaymentConfigured, "true"); err != nil {
		log.Error("admin payment config: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin payment config: ok")
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"payment_configured": true,
	})
}
