// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Monthlog API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Catalog (public):

	GET /api/v1/explorer/home/cms - Cities, totals, logged-in user
	GET /api/v1/cities/{slug}     - City with aggregated stats

Contributions:

	POST /api/v1/cities/{id}/contributions - Submit a contribution payload

Accounts:

	POST /signup - Create account and session
	POST /login  - Start a session

# Handler Initialization

The router creates handler instances with dependency injection:

	cityHandler := handlers.NewCityHandler(db, cfg)
	contributionHandler := handlers.NewContributionHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db, cfg)

All handlers receive the database connection and configuration.
CORS is applied by the caller around the returned mux.
*/
package router
