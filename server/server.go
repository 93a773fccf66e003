// Package server exposes the Bearer-token-protected management API for feeds
// and groups.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/curiofeeds/collector/pkg/store"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store is the metadata store surface behind the management API
type Store interface {
	AddFeed(ctx context.Context, id, url string, intervalMinutes *int, now time.Time) (*store.Feed, error)
	SoftDeleteFeed(ctx context.Context, id string, now time.Time) error
	ListFeeds(ctx context.Context) ([]store.Feed, error)

	CreateGroup(ctx context.Context, id, name string, now time.Time) (*store.Group, error)
	DeleteGroup(ctx context.Context, id string) error
	ListGroups(ctx context.Context) ([]store.Group, error)
	AddFeedToGroup(ctx context.Context, groupID, feedID string, now time.Time) error
	RemoveFeedFromGroup(ctx context.Context, groupID, feedID string) error
}

// Config holds server settings
type Config struct {
	Listen    string
	Timeout   time.Duration
	AuthToken string // empty disables authentication
}

// Server represents HTTP server instance
type Server struct {
	config  Config
	store   Store
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// New initializes a new server instance
func New(cfg Config, st Store, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		store:   st,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	lgr.Printf("[INFO] starting server on %s", s.config.Listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         s.config.Listen,
		Handler:      s.router,
		ReadTimeout:  s.config.Timeout,
		WriteTimeout: s.config.Timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("collector", "curiofeeds", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api").Route(func(r *routegroup.Bundle) {
		r.Use(s.authMiddleware)

		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("POST /feeds", s.addFeedHandler)
		r.HandleFunc("GET /feeds", s.listFeedsHandler)
		r.HandleFunc("DELETE /feeds/{id}", s.deleteFeedHandler)

		r.HandleFunc("POST /groups", s.createGroupHandler)
		r.HandleFunc("GET /groups", s.listGroupsHandler)
		r.HandleFunc("DELETE /groups/{id}", s.deleteGroupHandler)
		r.HandleFunc("POST /groups/{groupID}/feeds", s.addFeedToGroupHandler)
		r.HandleFunc("DELETE /groups/{groupID}/feeds/{feedID}", s.removeFeedFromGroupHandler)
	})
}

// authMiddleware rejects requests without the configured bearer token. An
// empty token leaves the API open, for local use only.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.config.AuthToken != "" && r.Header.Get("Authorization") != "Bearer "+s.config.AuthToken {
			RenderError(w, r, errors.New("unauthorized"), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
