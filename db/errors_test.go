// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"

	"github.com/danielhkuo/monthlog/db"
	"github.com/danielhkuo/monthlog/testutil"
)

func TestIsUniqueViolation(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	insertUser := func(id, email string) error {
		_, err := conn.Exec(`
			INSERT INTO app_user (id, email, nickname, password_hash, created_at)
			VALUES ($1, $2, 'n', 'h', $3)
		`, id, email, time.Now().UTC())
		return err
	}

	if err := insertUser("u1", "dup@example.com"); err != nil {
		t.Fatalf("Failed to insert user: %v", err)
	}
	dupEmail := insertUser("u2", "dup@example.com")
	dupID := insertUser("u1", "other@example.com")

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"sqlite duplicate email", dupEmail, true},
		{"sqlite duplicate primary key", dupID, true},
		{"wrapped sqlite duplicate", fmt.Errorf("insert: %w", dupEmail), true},
		{"postgres unique violation", &pq.Error{Code: "23505"}, true},
		{"postgres foreign key violation", &pq.Error{Code: "23503"}, false},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := db.IsUniqueViolation(tt.err); got != tt.expected {
				t.Errorf("IsUniqueViolation(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}
