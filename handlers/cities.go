// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/monthlog/cliparse"
	"github.com/danielhkuo/monthlog/middleware"
	"github.com/danielhkuo/monthlog/models"
)

type CityHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewCityHandler(db *sql.DB, cfg cliparse.Config) *CityHandler {
	return &CityHandler{db: db, cfg: cfg}
}

// GetHomeCMS handles GET /api/v1/explorer/home/cms
// user_info is set only for a valid session token; a bad token is ignored.
func (h *CityHandler) GetHomeCMS(w http.ResponseWriter, r *http.Request) {
	cities, err := listCities(h.db)
	if err != nil {
		slog.Error("failed to list cities", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var contributionCount int
	err = h.db.QueryRow(`SELECT COUNT(*) FROM contribution`).Scan(&contributionCount)
	if err != nil {
		slog.Error("failed to count contributions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	user, err := GetSessionUser(h.db, r)
	if err != nil {
		slog.Warn("ignoring session token", "error", err)
		user = nil
	}

	middleware.JSONResponse(w, http.StatusOK, models.HomeCMSResponse{
		Cities: cities,
		Stats: models.HomeStats{
			CityCount:         len(cities),
			ContributionCount: contributionCount,
		},
		UserInfo: user,
	})
}

// GetCity handles GET /api/v1/cities/:slug
func (h *CityHandler) GetCity(w http.ResponseWriter, r *http.Request) {
	slug := strings.ToLower(strings.TrimSpace(r.PathValue("slug")))
	if slug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	var city models.City
	err := h.db.QueryRow(`
		SELECT id, slug, name, country FROM city WHERE slug = $1
	`, slug).Scan(&city.ID, &city.Slug, &city.Name, &city.Country)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "City not found")
		return
	}
	if err != nil {
		slog.Error("failed to query city", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	stats, err := ComputeCityStats(h.db, city.ID)
	if err != nil {
		slog.Error("failed to compute city stats", "error", err, "city_id", city.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to compute stats")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.CityDetailResponse{
		City:  city,
		Stats: stats,
	})
}

func listCities(db *sql.DB) ([]models.City, error) {
	rows, err := db.Query(`
		SELECT id, slug, name, country FROM city ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cities := []models.City{}
	for rows.Next() {
		var c models.City
		if err := rows.Scan(&c.ID, &c.Slug, &c.Name, &c.Country); err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}
