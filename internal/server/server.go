// Package server exposes the matching engine over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/kcsbuilding/guttergauge/internal/access"
	"github.com/kcsbuilding/guttergauge/internal/catalog"
	"github.com/kcsbuilding/guttergauge/internal/match"
	"github.com/kcsbuilding/guttergauge/internal/types"
)

// ErrGateOpen is returned when the server would start without a team password
var ErrGateOpen = errors.New("refusing to serve without a team password hash")

const shutdownTimeout = 10 * time.Second

// Options configures a Server
type Options struct {
	Provider *catalog.Provider
	Engine   *match.Engine
	Gate     *access.Gate
	Logger   hclog.Logger

	// Region and Category are used when a request omits them
	Region   string
	Category string

	// MinTier is applied to every match, nil for none
	MinTier *types.Tier

	// Throttle limits failed logins per client; zero uses DefaultThrottle
	Throttle Throttle
}

// Server serves match requests against a cached catalog
type Server struct {
	provider *catalog.Provider
	engine   *match.Engine
	gate     *access.Gate
	logger   hclog.Logger
	limiter  *loginLimiter

	region   string
	category string
	minTier  *types.Tier
}

// New creates a Server. A gate without a team password is rejected.
func New(opts Options) (*Server, error) {
	if opts.Provider == nil {
		return nil, errors.New("server: catalog provider is required")
	}
	if opts.Gate == nil || opts.Gate.Open() {
		return nil, ErrGateOpen
	}
	if opts.Engine == nil {
		opts.Engine = match.NewDefaultEngine()
	}
	if opts.Logger == nil {
		opts.Logger = hclog.NewNullLogger()
	}
	if opts.Throttle == (Throttle{}) {
		opts.Throttle = DefaultThrottle
	}

	return &Server{
		provider: opts.Provider,
		engine:   opts.Engine,
		gate:     opts.Gate,
		logger:   opts.Logger,
		limiter:  newLoginLimiter(opts.Throttle),
		region:   opts.Region,
		category: opts.Category,
		minTier:  opts.MinTier,
	}, nil
}

// Handler returns the HTTP handler with all routes and middleware
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /api/match", s.requireRole(access.CapSearch, s.handleMatch))
	mux.Handle("GET /api/catalog/stats", s.requireRole(access.CapSearch, s.handleStats))
	return s.withRequestID(mux)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
