// Package server wires the ppauto compile API (server/api), its
// dao.Store-backed persistence, and the go-chi router together into a
// runnable HTTP server. Grounded on the teacher's server/server.go bootstrap
// and cmd/tqserver's admin-account-on-startup pattern.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/dekarrin/ppauto/server/api"
	"github.com/dekarrin/ppauto/server/dao"
	"github.com/dekarrin/ppauto/server/middle"
	"github.com/dekarrin/ppauto/server/tunas"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is a running ppauto compile service: the chi router, the
// persistence store it reads and writes, and the config it was built from.
type Server struct {
	db     dao.Store
	router chi.Router
	cfg    Config
}

// New connects to cfg's configured DB and builds a Server ready to serve.
func New(cfg Config) (*Server, error) {
	cfg = cfg.FillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	db, err := cfg.DB.Connect()
	if err != nil {
		return nil, fmt.Errorf("connect to db: %w", err)
	}

	backend := tunas.Service{DB: db, CacheDir: cfg.CacheDir}

	theAPI := api.API{
		Backend:     backend,
		UnauthDelay: cfg.UnauthDelay(),
		Secret:      cfg.TokenSecret,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Route(api.PathPrefix, func(r chi.Router) {
		r.Post("/login", theAPI.HTTPCreateLogin())

		r.Group(func(r chi.Router) {
			r.Use(middle.RequireAuth(db.Users(), cfg.TokenSecret, cfg.UnauthDelay(), dao.User{}))
			r.Delete("/login", theAPI.HTTPDeleteLogin())
			r.Post("/compile", theAPI.HTTPCreateCompile())
			r.Get("/jobs/{id}", theAPI.HTTPGetJob())
		})
	})

	return &Server{db: db, router: r, cfg: cfg}, nil
}

// ListenAndServe starts the HTTP server on addr and blocks until it exits.
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("INFO  listening on %s", addr)
	return http.ListenAndServe(addr, s.router)
}

// Close releases the underlying persistence store's resources.
func (s *Server) Close() error {
	return s.db.Close()
}

// Bootstrap creates the given admin account if no user by that username
// exists yet, mirroring cmd/tqserver's startup convenience for getting a
// first operator account onto a fresh store.
func (s *Server) Bootstrap(ctx context.Context, username, password string) error {
	backend := tunas.Service{DB: s.db, CacheDir: s.cfg.CacheDir}

	if _, err := backend.DB.Users().GetByUsername(ctx, username); err == nil {
		return nil
	}

	_, err := backend.CreateUser(ctx, username, password, dao.Admin)
	return err
}
