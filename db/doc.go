// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and the city catalog seed.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The DDL is portable between PostgreSQL (lib/pq) and SQLite (modernc.org/sqlite).

# Tables

  - city: catalog entries, numeric id and unique lower-case slug
  - app_user: accounts with bcrypt password hashes
  - user_session: bearer tokens issued at login
  - contribution: one row per accepted submission
  - contribution_section: one row per category, payload as JSON text

# Relationships

	city 1──* contribution
	app_user 1──* user_session
	app_user 1──* contribution (nullable, anonymous allowed)
	contribution 1──* contribution_section

# Seeding

	err := db.SeedCities(conn, db.DefaultCities)

Upserts by id, so it can run on every start.
*/
package db
