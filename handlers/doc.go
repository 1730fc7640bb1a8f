// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Monthlog API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - CityHandler: City catalog and per-city statistics
  - ContributionHandler: Contribution submission
  - UserHandler: Sign-up and login

Handlers are created via constructor functions that accept *sql.DB and Config:

	cityHandler := handlers.NewCityHandler(db, cfg)

# Catalog

	GET /api/v1/explorer/home/cms → GetHomeCMS (cities, totals, user_info)
	GET /api/v1/cities/{slug}     → GetCity (city plus stats)

Clients resolve a city slug to its numeric id through the catalog before
submitting.

# Contributions

	POST /api/v1/cities/{id}/contributions → SubmitContribution

The body maps a category (cityDigital, cityCost) to the fields the user
changed from the form defaults. Unknown categories or fields, out-of-range
values, and empty bodies are rejected with 400. Each category is stored as
its own contribution_section row holding the JSON fields.

# Stats

ComputeCityStats aggregates stored sections:

	stats, err := ComputeCityStats(db, cityID)

Medians use linear interpolation between closest ranks. Fields a
contribution left unanswered are absent from its payload and so never count.

# Sessions

	POST /signup → Signup (returns user with token)
	POST /login  → Login (returns user with token)

Send the token as "Authorization: Bearer <token>". Contributions made with a
session are linked to the user.
*/
package handlers
