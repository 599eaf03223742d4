package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/PlotPlanner_Go/internal/handler"
	"github.com/osse101/PlotPlanner_Go/internal/logger"
	"github.com/osse101/PlotPlanner_Go/internal/metrics"
	"github.com/osse101/PlotPlanner_Go/internal/planner"
	"github.com/osse101/PlotPlanner_Go/internal/profile"
)

// CatalogStore is the catalog view the HTTP surface needs
type CatalogStore interface {
	handler.CatalogSource
	handler.FallbackReporter
}

// Options configures the HTTP server
type Options struct {
	Port            int
	APIKey          string
	TrustedProxies  []string
	MaxRequestBytes int64
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance. dbPool may be nil when profiles
// are kept in memory.
func NewServer(opts Options, dbPool handler.Pinger, catalogs CatalogStore, plannerService planner.Service, profileService profile.Service) *Server {
	if opts.MaxRequestBytes <= 0 {
		opts.MaxRequestBytes = DefaultMaxRequestBytes
	}
	handler.InitValidator()

	r := chi.NewRouter()

	// Middleware executes in the order defined (outermost first)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(opts.MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool, catalogs))

	r.Get("/version", handler.HandleVersion(catalogs))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", handler.HandleGetCatalog(catalogs))
			r.Get("/suggest", handler.HandleSuggest(catalogs))
			r.Get("/{kind}/{name}/merge", handler.HandleGetMergeRequirement(catalogs))
		})
		r.Get("/shop", handler.HandleGetShop(catalogs))
		r.Post("/strategy", handler.HandleComputeStrategy(plannerService))

		profileHandler := handler.NewProfileHandler(profileService)
		plannerHandler := handler.NewPlannerHandler(plannerService)
		r.Route("/profiles", func(r chi.Router) {
			r.Get("/", profileHandler.HandleList)
			r.Route("/{name}", func(r chi.Router) {
				r.Get("/", profileHandler.HandleGet)
				r.Put("/", profileHandler.HandleSave)
				r.Delete("/", profileHandler.HandleDelete)
				r.Get("/export", profileHandler.HandleExport)
				r.Post("/import", profileHandler.HandleImport)

				r.Get("/strategy", plannerHandler.HandleStrategy)
				r.Post("/quantity", plannerHandler.HandleSetQuantity)
				r.Post("/exclusions", plannerHandler.HandleToggleExclusion)
				r.Put("/objective", plannerHandler.HandleSetObjective)
				r.Get("/value", plannerHandler.HandleValue)
				r.Get("/upgrades/{seed}", plannerHandler.HandleUpgrades)
			})
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", profileHandler.HandleGetSettings)
			r.Put("/", profileHandler.HandleSaveSettings)
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
		},
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	for _, prefix := range QuietPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
