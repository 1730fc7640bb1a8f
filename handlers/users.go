// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/monthlog/auth"
	"github.com/danielhkuo/monthlog/cliparse"
	"github.com/danielhkuo/monthlog/db"
	"github.com/danielhkuo/monthlog/middleware"
	"github.com/danielhkuo/monthlog/models"
)

type UserHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewUserHandler(db *sql.DB, cfg cliparse.Config) *UserHandler {
	return &UserHandler{db: db, cfg: cfg}
}

// Signup handles POST /signup
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	email := normalizeEmail(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		middleware.ErrorResponse(w, http.StatusBadRequest, "a valid email is required")
		return
	}
	if len(req.Password) < auth.MinPasswordLen {
		middleware.ErrorResponse(w, http.StatusBadRequest, auth.ErrWeakPassword.Error())
		return
	}

	nickname := strings.TrimSpace(req.Nickname)
	if nickname == "" {
		nickname, _, _ = strings.Cut(email, "@")
	}
	if len(nickname) > 50 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "nickname must be at most 50 characters")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	userID, err := auth.GenerateID(16)
	if err != nil {
		slog.Error("failed to generate user ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	now := time.Now().UTC()
	_, err = h.db.Exec(`
		INSERT INTO app_user (id, email, nickname, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, userID, email, nickname, hash, now)
	if err != nil {
		// The UNIQUE constraint on email settles concurrent sign-ups
		if db.IsUniqueViolation(err) {
			middleware.ErrorResponse(w, http.StatusConflict, "Email already registered")
			return
		}
		slog.Error("failed to insert user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	token, err := h.createSession(userID, now)
	if err != nil {
		slog.Error("failed to create session", "error", err, "user_id", userID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	slog.Info("user signed up", "user_id", userID)

	middleware.JSONResponse(w, http.StatusCreated, models.User{
		ID:        userID,
		Email:     email,
		Nickname:  nickname,
		Token:     token,
		CreatedAt: now,
	})
}

// Login handles POST /login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "email and password are required")
		return
	}

	var user models.User
	var hash string
	err := h.db.QueryRow(`
		SELECT id, email, nickname, password_hash, created_at
		FROM app_user WHERE email = $1
	`, email).Scan(&user.ID, &user.Email, &user.Nickname, &hash, &user.CreatedAt)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := auth.CheckPassword(hash, req.Password); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, err.Error())
		return
	}

	user.Token, err = h.createSession(user.ID, time.Now().UTC())
	if err != nil {
		slog.Error("failed to create session", "error", err, "user_id", user.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create session")
		return
	}

	slog.Info("user logged in", "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusOK, user)
}

func (h *UserHandler) createSession(userID string, now time.Time) (string, error) {
	token, err := auth.GenerateSessionToken()
	if err != nil {
		return "", err
	}
	_, err = h.db.Exec(`
		INSERT INTO user_session (token, user_id, created_at)
		VALUES ($1, $2, $3)
	`, token, userID, now)
	if err != nil {
		return "", err
	}
	return token, nil
}

// GetSessionUser resolves the bearer session token on r.
// Returns (nil, nil) when no token is sent and auth.ErrInvalidToken when the
// token is malformed or unknown.
func GetSessionUser(db *sql.DB, r *http.Request) (*models.User, error) {
	token, err := auth.BearerToken(r)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, nil
	}

	var user models.User
	err = db.QueryRow(`
		SELECT u.id, u.email, u.nickname, u.created_at
		FROM user_session s
		JOIN app_user u ON u.id = s.user_id
		WHERE s.token = $1
	`, token).Scan(&user.ID, &user.Email, &user.Nickname, &user.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, auth.ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
