// Package api exposes the price-history dataset over HTTP as JSON.
package api

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"metals-tracker/internal/observability"
	"metals-tracker/internal/query"
	"metals-tracker/internal/storage"
)

// API identity reported by the home endpoint.
const (
	apiName    = "Precious Metals Bull Market Tracker API"
	apiVersion = "1.0"
)

// Server holds the request handlers and their dependencies.
type Server struct {
	queries *query.Queries
	current storage.CurrentPriceStore
	initErr string // startup dataset failure, empty when the load succeeded
	logger  *log.Logger
}

// Options configures a Server.
type Options struct {
	Queries      *query.Queries
	CurrentStore storage.CurrentPriceStore
	// InitError records a failed dataset bootstrap. The server still
	// serves; health reports the reason and data queries fail per-request.
	InitError string
	Logger    *log.Logger
}

// NewServer creates a Server.
func NewServer(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		queries: opts.Queries,
		current: opts.CurrentStore,
		initErr: opts.InitError,
		logger:  logger,
	}
}

// Routes builds the HTTP handler with all endpoints and middleware.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	}))
	r.Use(metricsMiddleware)

	r.Get("/", s.handleHome)
	r.Get("/api/health", s.handleHealth)
	r.Get("/api/weekly-data/{metal}/{cycle}", s.handleWeeklyData)
	r.Get("/api/raw-data/{metal}/{cycle}", s.handleRawData)
	r.Get("/api/market-summary", s.handleMarketSummary)
	r.Get("/api/database-stats", s.handleDatabaseStats)
	r.Handle("/metrics", observability.Handler())

	return r
}

// metricsMiddleware records a request counter and latency histogram
// per route pattern.
func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		observability.RecordHTTPRequest(route, strconv.Itoa(ww.Status()), time.Since(start).Seconds())
	})
}

// timestamp returns the response timestamp in RFC 3339.
func timestamp() string {
	return time.Now().Format(time.RFC3339)
}
