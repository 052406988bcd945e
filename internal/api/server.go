// Package api exposes the operator HTTP server: health, metrics, profiling
// and the token protected admin routes.
package api

import (
	"context"
	"fmt"
	"net/http"
	"numberbot/internal/config"
	"numberbot/internal/credential"
	"numberbot/internal/usage"
	"numberbot/pkg/controller"
	"numberbot/pkg/logger"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultMetricsPath is used when Options.MetricsPath is empty.
const DefaultMetricsPath = "/metrics"

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout bounds handling of a single request via http.TimeoutHandler.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// JWTPublicKey verifies admin tokens. Admin routes are disabled when empty.
	JWTPublicKey string
	// KeysFile is re-read by the key reload route.
	KeysFile string
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		JWTPublicKey:      cfg.HTTP.JWTPublicKey,
		KeysFile:          cfg.Providers.KeysFile,
	}
}

// Pinger reports whether the storage backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the services the routes read from.
type Deps struct {
	Usage   usage.Recorder
	Keys    *credential.Rotator
	Storage Pinger
	// Gatherer backs the metrics route. Nil uses prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
}

// NewHandler builds the routing tree wrapped with recovery and access logging.
//
// Routes:
//   - GET /healthz
//   - MetricsPath (Prometheus)
//   - /debug/pprof/
//   - GET /admin/stats, POST /admin/keys/reload (bearer token)
func NewHandler(ctx context.Context, deps Deps, opts Options) (http.Handler, error) {
	mux := http.NewServeMux()
	h := &handler{deps: deps, keysFile: opts.KeysFile}

	mux.HandleFunc("GET /healthz", h.health)

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	metricsPath := opts.MetricsPath
	if metricsPath == "" {
		metricsPath = DefaultMetricsPath
	}
	mux.Handle(metricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	controller.RegisterPprof(mux)

	if opts.JWTPublicKey != "" {
		auth, err := NewAuthenticator(opts.JWTPublicKey)
		if err != nil {
			return nil, err
		}

		mux.Handle("GET /admin/stats", auth.Middleware(http.HandlerFunc(h.stats)))
		mux.Handle("POST /admin/keys/reload", auth.Middleware(http.HandlerFunc(h.reloadKeys)))
	} else {
		logger.Warn(ctx, "no JWT public key configured, admin routes are disabled")
	}

	handler := controller.WithRecovery(mux)
	handler = controller.WithLogger(handler)

	return handler, nil
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
func NewServer(ctx context.Context, deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(ctx, deps, opts)
	if err != nil {
		return nil, fmt.Errorf("could not create http handler: %w", err)
	}

	// pprof profile and trace stream for longer than any request timeout.
	if opts.RequestTimeout > 0 {
		handler = withTimeout(handler, opts.RequestTimeout)
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}

func withTimeout(next http.Handler, d time.Duration) http.Handler {
	limited := http.TimeoutHandler(next, d, `{"code":"TIMEOUT","message":"request timed out"}`)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, controller.PprofPrefix) {
			next.ServeHTTP(w, r)

			return
		}

		limited.ServeHTTP(w, r)
	})
}
