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

	"github.com/osse101/InvestSim_Go/internal/catalog"
	"github.com/osse101/InvestSim_Go/internal/eventlog"
	"github.com/osse101/InvestSim_Go/internal/handler"
	"github.com/osse101/InvestSim_Go/internal/logger"
	"github.com/osse101/InvestSim_Go/internal/metrics"
	"github.com/osse101/InvestSim_Go/internal/sse"
	"github.com/osse101/InvestSim_Go/internal/wallet"
)

// Dependencies are the services the routes are served from
type Dependencies struct {
	DB      handler.Pinger
	Catalog catalog.Service
	Wallet  wallet.Service
	Hub     *sse.Hub

	// EventLog is optional; without it the events route answers 503
	EventLog eventlog.Service
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, deps Dependencies) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	monitor := NewClientMonitor()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, monitor))
	r.Use(RateLimitMiddleware(trustedProxies, monitor))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.DB))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	accounts := handler.NewAccountHandler(deps.Wallet)
	admin := handler.NewAdminHandler(deps.Catalog, deps.EventLog)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", handler.HandleGetCatalog(deps.Catalog))
			r.Get("/{symbol}", handler.HandleGetAsset(deps.Catalog))
		})

		r.Post("/affordability", handler.HandleAffordability(deps.Catalog))
		r.Post("/selection/preview", handler.HandleSelectionPreview(deps.Catalog, deps.Wallet))

		r.Route("/accounts", func(r chi.Router) {
			r.Post("/", accounts.HandleCreateAccount)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/balance", accounts.HandleGetBalance)
				r.Get("/wallet", accounts.HandleGetWallet)
				r.Get("/purchases", accounts.HandleListPurchases)
				r.Post("/purchases", accounts.HandleSubmitPurchase)
			})
		})

		if deps.Hub != nil {
			r.Get("/events", sse.Handler(deps.Hub))
		}

		r.Route("/admin", func(r chi.Router) {
			r.Post("/catalog/reload", admin.HandleReloadCatalog)
			r.Get("/cache/stats", admin.HandleGetCacheStats)
			r.Get("/events", admin.HandleListEvents)
		})
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           r,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
	// Event streams never finish on their own; closing the hub ends them
	if deps.Hub != nil {
		httpServer.RegisterOnShutdown(deps.Hub.Stop)
	}

	return &Server{httpServer: httpServer, router: r}
}

// Handler exposes the router, mainly for httptest servers
func (s *Server) Handler() http.Handler {
	return s.router
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

// Flush keeps the event stream working through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
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
			"duration_ms", duration.Milliseconds())
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
