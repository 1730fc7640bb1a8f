// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/danielhkuo/monthlog/auth"
	"github.com/danielhkuo/monthlog/cliparse"
	"github.com/danielhkuo/monthlog/middleware"
	"github.com/danielhkuo/monthlog/models"
	"github.com/danielhkuo/monthlog/schema"
)

// MaxPayloadBytes caps the size of a contribution body
const MaxPayloadBytes = 64 << 10

type ContributionHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewContributionHandler(db *sql.DB, cfg cliparse.Config) *ContributionHandler {
	return &ContributionHandler{db: db, cfg: cfg}
}

// SubmitContribution handles POST /api/v1/cities/:id/contributions
func (h *ContributionHandler) SubmitContribution(w http.ResponseWriter, r *http.Request) {
	cityID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || cityID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "city id must be a positive integer")
		return
	}

	var exists bool
	err = h.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM city WHERE id = $1)
	`, cityID).Scan(&exists)
	if err != nil {
		slog.Error("failed to query city", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusNotFound, "City not found")
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxPayloadBytes))
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, "body must be at most "+humanize.IBytes(MaxPayloadBytes))
		return
	}
	if err != nil {
		slog.Warn("failed to read contribution body", "error", err)
		middleware.ErrorResponse(w, http.StatusBadRequest, "Failed to read body")
		return
	}

	var wire models.ContributionPayload
	if err := json.Unmarshal(body, &wire); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if len(wire) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "contribution is empty")
		return
	}
	for category, fields := range wire {
		if !slices.Contains(models.KnownCategories, category) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "unknown category: "+category)
			return
		}
		if len(fields) == 0 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "category "+category+" has no fields")
			return
		}
	}

	// Typed decode catches unknown fields and wrong value types
	contribution, err := schema.DecodePayload(body)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := schema.Validate(contribution); err != nil {
		var verr *schema.ValidationError
		if errors.As(err, &verr) {
			middleware.ValidationErrorResponse(w, "contribution is invalid", verr.Messages())
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	// Re-diff against the defaults so unanswered values sent explicitly are
	// neither stored nor counted in stats
	payload, err := contribution.Payload()
	if err != nil {
		slog.Error("failed to assemble payload", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to store contribution")
		return
	}
	if len(payload) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "contribution has no answered fields")
		return
	}

	user, err := GetSessionUser(h.db, r)
	if errors.Is(err, auth.ErrInvalidToken) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid session token")
		return
	}
	if err != nil {
		slog.Error("failed to resolve session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	var userID *string
	if user != nil {
		userID = &user.ID
	}

	categories := payload.Categories()
	contributionID := uuid.NewString()
	ipHash := auth.HashIP(middleware.GetClientIP(r), h.cfg.IPHashSalt)

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO contribution (id, city_id, user_id, submitted_at, ip_hash, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, contributionID, cityID, userID, time.Now().UTC(), ipHash, r.UserAgent())
	if err != nil {
		slog.Error("failed to insert contribution", "error", err, "city_id", cityID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to store contribution")
		return
	}

	for _, category := range categories {
		data, err := json.Marshal(payload[category])
		if err != nil {
			slog.Error("failed to encode section", "error", err, "category", category)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to store contribution")
			return
		}
		_, err = tx.Exec(`
			INSERT INTO contribution_section (contribution_id, category, payload)
			VALUES ($1, $2, $3)
		`, contributionID, category, string(data))
		if err != nil {
			slog.Error("failed to insert section", "error", err, "category", category)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to store contribution")
			return
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit contribution", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to store contribution")
		return
	}

	slog.Info("contribution stored",
		"contribution_id", contributionID,
		"city_id", cityID,
		"categories", categories,
		"size", humanize.Bytes(uint64(len(body))),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.ContributionResponse{
		ContributionID: contributionID,
		CityID:         cityID,
		Categories:     categories,
		Message:        "Contribution received",
	})
}
