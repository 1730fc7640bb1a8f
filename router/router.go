// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/monthlog/cliparse"
	"github.com/danielhkuo/monthlog/handlers"
	"github.com/danielhkuo/monthlog/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	cityHandler := handlers.NewCityHandler(db, cfg)
	contributionHandler := handlers.NewContributionHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// City catalog (public, user_info when logged in)
	mux.HandleFunc("GET /api/v1/explorer/home/cms", middleware.WithLogging(cityHandler.GetHomeCMS))
	mux.HandleFunc("GET /api/v1/cities/{slug}", middleware.WithLogging(cityHandler.GetCity))

	// Contributions (anonymous or with a bearer session)
	mux.HandleFunc("POST /api/v1/cities/{id}/contributions", middleware.WithLogging(contributionHandler.SubmitContribution))

	// Accounts
	mux.HandleFunc("POST /signup", middleware.WithLogging(userHandler.Signup))
	mux.HandleFunc("POST /login", middleware.WithLogging(userHandler.Login))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("monthlog API v1"))
	})

	return mux
}
