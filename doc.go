// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Monthlog API server.

Monthlog is a crowdsourced city guide. People browse a city catalog, read
aggregated stats, and contribute what they know about a city's digital
infrastructure and cost of living through multi-section forms.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	IP_HASH_SALT=... DATABASE_URL=monthlog.db go run . --seed

Or against PostgreSQL:

	go run . -t postgres -d "postgres://..." --ip-salt ...

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file path or PostgreSQL connection string
  - IP_HASH_SALT (--ip-salt): Secret for contributor IP hashing

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite (default) or postgres
  - SEED_CITIES (--seed): Upsert the built-in city catalog at startup

A .env file in the working directory is loaded first when present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (cities, contributions, users, stats)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Passwords, session tokens, IP hashing
  - db: Schema creation and city seeding
  - cliparse: Configuration parsing

The client side of the contribution flow lives in schema, formtree, form,
and client, with a command-line front end in cmd/monthlog.

See package documentation for each component.
*/
package main
