package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/auth"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/httpx"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/models"
	"github.com/adeebakausar/latest-intune-mindset-refresh/internal/transport"
)

type createUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"omitempty,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=200"`
}

func (s *Server) AdminCreateUser(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)

	var req createUserRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin users create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		log.Warn("admin users create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(s.Val.ValidationErrors(err)))
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Error("admin users create: hash error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to create user", nil)
		return
	}

	now := time.Now().In(s.Cfg.Timezone)
	user := models.User{
		ID:           primitive.NewObjectID().Hex(),
		Username:     strings.ToLower(strings.TrimSpace(req.Username)),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := s.Cols.Users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Warn("admin users create: duplicate username", slog.String("username", user.Username))
			transport.WriteError(w, http.StatusConflict, "username already exists", nil)
			return
		}
		log.Error("admin users create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin users create: ok", slog.String("username", user.Username))
	transport.WriteJSON(w, http.StatusCreated, user)
}

type updatePasswordRequest struct {
	Username    string `json:"username" validate:"required,max=100"`
	OldPassword string `json:"old_password" validate:"required,max=200"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=200"`
}

func (s *Server) AdminUpdatePassword(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)

	var req updatePasswordRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("admin users password: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	if err := s.Val.Struct(req); err != nil {
		log.Warn("admin users password: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(s.Val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	username := strings.ToLower(strings.TrimSpace(req.Username))

	var user models.User
	if err := s.Cols.Users.FindOne(ctx, bson.M{"username": username}).Decode(&user); err != nil {
		log.Warn("admin users password: user not found", slog.String("username", username))
		transport.WriteError(w, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}
	if err := auth.ComparePassword(user.PasswordHash, req.OldPassword); err != nil {
		log.Warn("admin users password: bad credentials", slog.String("username", username))
		transport.WriteError(w, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		log.Error("admin users password: hash error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "failed to update password", nil)
		return
	}

	_, err = s.Cols.Users.UpdateOne(ctx,
		bson.M{"username": username},
		bson.M{"$set": bson.M{"passwordHash": hash, "updatedAt": time.Now().In(s.Cfg.Timezone)}},
	)
	if err != nil {
		log.Error("admin users password: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("admin users password: ok", slog.String("username", username))
	transport.WriteJSON(w, http.StatusOK, map[string]string{"status": "password updated"})
}
