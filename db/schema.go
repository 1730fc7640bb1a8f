// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/danielhkuo/monthlog/models"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The same DDL runs on both PostgreSQL and SQLite.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// DefaultCities is the built-in catalog inserted by SeedCities
var DefaultCities = []models.City{
	{ID: 1, Slug: "seoul", Name: "Seoul", Country: "KR"},
	{ID: 2, Slug: "busan", Name: "Busan", Country: "KR"},
	{ID: 3, Slug: "jeju", Name: "Jeju", Country: "KR"},
	{ID: 4, Slug: "gangneung", Name: "Gangneung", Country: "KR"},
	{ID: 5, Slug: "chiang-mai", Name: "Chiang Mai", Country: "TH"},
	{ID: 6, Slug: "lisbon", Name: "Lisbon", Country: "PT"},
}

// SeedCities upserts cities by id. Slugs are stored lower-case.
func SeedCities(db *sql.DB, cities []models.City) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, c := range cities {
		_, err := tx.Exec(`
			INSERT INTO city (id, slug, name, country)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO UPDATE SET
				slug = EXCLUDED.slug,
				name = EXCLUDED.name,
				country = EXCLUDED.country
		`, c.ID, strings.ToLower(c.Slug), c.Name, c.Country)
		if err != nil {
			return fmt.Errorf("failed to seed city %s: %w", c.Slug, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit city seed: %w", err)
	}
	return nil
}

const schema = `
-- Cities
CREATE TABLE IF NOT EXISTS city (
    id INTEGER PRIMARY KEY,
    slug TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    country TEXT NOT NULL
);

-- Users
CREATE TABLE IF NOT EXISTS app_user (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    nickname TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Sessions
CREATE TABLE IF NOT EXISTS user_session (
    token TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES app_user(id) ON DELETE CASCADE,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_user_session_user_id ON user_session(user_id);

-- Contributions
CREATE TABLE IF NOT EXISTS contribution (
    id TEXT PRIMARY KEY,
    city_id INTEGER NOT NULL REFERENCES city(id) ON DELETE CASCADE,
    user_id TEXT REFERENCES app_user(id) ON DELETE SET NULL,
    submitted_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    ip_hash TEXT,
    user_agent TEXT
);

CREATE INDEX IF NOT EXISTS idx_contribution_city_id ON contribution(city_id);

-- Contribution sections (one per category)
CREATE TABLE IF NOT EXISTS contribution_section (
    contribution_id TEXT NOT NULL REFERENCES contribution(id) ON DELETE CASCADE,
    category TEXT NOT NULL,
    payload TEXT NOT NULL,
    PRIMARY KEY (contribution_id, category)
);

CREATE INDEX IF NOT EXISTS idx_contribution_section_category ON contribution_section(category);
`
