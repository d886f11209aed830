// Package server assembles the HTTP surface: routing, middleware, and the
// configured net/http server.
package server

import (
	"fmt"
	"net/http"
	"time"

	"ledger/internal/cache"
	"ledger/internal/config"
	"ledger/internal/database"
)

// Server holds the dependencies for the HTTP server
type Server struct {
	cfg   *config.Config
	db    database.Service
	cache cache.Store
}

// New creates and configures the HTTP server with all routes registered
func New(cfg *config.Config, db database.Service, cacheStore cache.Store) *http.Server {
	s := &Server{
		cfg:   cfg,
		db:    db,
		cache: cacheStore,
	}

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.RegisterRoutes(),
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}
}
