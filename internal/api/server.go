// Package api exposes the retirement calculator, the scheme catalog and saved
// scenarios over HTTP.
package api

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/futurefunds/retirement-planner/internal/calculation"
	"github.com/futurefunds/retirement-planner/internal/scenario"
	"github.com/futurefunds/retirement-planner/internal/schemes"
)

const (
	serverName          = "futurefunds"
	defaultStoreTimeout = 5 * time.Second
	shutdownTimeout     = 10 * time.Second
)

// nowFunc returns the current time; the calendar year of a projection is taken from it.
var nowFunc = time.Now

// Pinger is implemented by stores that can report backend health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server routes API requests to the calculator, catalog and scenario store.
type Server struct {
	Calculator   *calculation.RetirementCalculator
	Catalog      *schemes.Catalog
	Store        scenario.Store
	Logger       calculation.Logger
	StoreTimeout time.Duration
}

// NewServer wires a server; a nil catalog selects the built-in one and a nil logger discards output.
func NewServer(store scenario.Store, catalog *schemes.Catalog, logger calculation.Logger) *Server {
	if catalog == nil {
		catalog = schemes.DefaultCatalog()
	}
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	calc := calculation.NewRetirementCalculator()
	calc.SetLogger(logger)
	return &Server{
		Calculator:   calc,
		Catalog:      catalog,
		Store:        store,
		Logger:       logger,
		StoreTimeout: defaultStoreTimeout,
	}
}

// Handler returns the routing request handler with access logging.
func (s *Server) Handler() fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		s.route(ctx)
		s.Logger.Infof("%s %s -> %d (%s)", ctx.Method(), ctx.Path(), ctx.Response.StatusCode(), time.Since(start))
	}
}

func (s *Server) route(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/api/calc/retirement":
		if !allow(ctx, fasthttp.MethodPost) {
			return
		}
		s.handleCalculate(ctx)
	case "/api/scenarios":
		if !allow(ctx, fasthttp.MethodGet, fasthttp.MethodPost, fasthttp.MethodDelete) {
			return
		}
		switch string(ctx.Method()) {
		case fasthttp.MethodGet:
			s.handleListScenarios(ctx)
		case fasthttp.MethodPost:
			s.handleCreateScenario(ctx)
		default:
			s.handleDeleteScenario(ctx)
		}
	case "/api/schemes/list":
		if !allow(ctx, fasthttp.MethodGet) {
			return
		}
		s.handleListSchemes(ctx)
	case "/healthz":
		if !allow(ctx, fasthttp.MethodGet) {
			return
		}
		s.handleHealth(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

// storeContext bounds a store call. fasthttp's RequestCtx is not used as the context
// because it is only valid inside a running server.
func (s *Server) storeContext() (context.Context, context.CancelFunc) {
	timeout := s.StoreTimeout
	if timeout <= 0 {
		timeout = defaultStoreTimeout
	}
	return context.WithTimeout(context.Background(), timeout)
}

// Serve accepts connections on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &fasthttp.Server{
		Handler:            s.Handler(),
		Name:               serverName,
		ReadTimeout:        15 * time.Second,
		WriteTimeout:       15 * time.Second,
		MaxRequestBodySize: 1 << 20,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.Logger.Infof("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return <-errCh
	}
}

// ListenAndServe listens on addr and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.Logger.Infof("FutureFunds API listening on %s", ln.Addr())
	return s.Serve(ctx, ln)
}
