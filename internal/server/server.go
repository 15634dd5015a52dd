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

	"github.com/osse101/GrowRoom_Go/internal/catalog"
	"github.com/osse101/GrowRoom_Go/internal/clock"
	"github.com/osse101/GrowRoom_Go/internal/handler"
	"github.com/osse101/GrowRoom_Go/internal/logger"
	"github.com/osse101/GrowRoom_Go/internal/metrics"
	"github.com/osse101/GrowRoom_Go/internal/sse"
	"github.com/osse101/GrowRoom_Go/internal/storage"
)

// Server is the local driver API around one game session
type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance. An empty apiKey disables
// authentication; store may be nil when there is nothing to ping, and hub
// may be nil to leave the event stream unmounted.
func NewServer(port int, apiKey string, trustedProxies []string, game handler.Game, cat *catalog.Catalog, store storage.Store, hub *sse.Hub) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(apiKey, trustedProxies, game, cat, store, hub),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the middleware stack and routes
func NewRouter(apiKey string, trustedProxies []string, game handler.Game, cat *catalog.Catalog, store storage.Store, hub *sse.Hub) chi.Router {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector(clock.NewRealClock())

	r.Use(SecurityHeadersMiddleware())
	if apiKey != "" {
		r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	} else {
		slog.Default().Warn(LogMsgAuthDisabled)
	}
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	var storeCheck handler.HealthChecker
	if store != nil {
		storeCheck = handler.HealthCheckFunc(func(ctx context.Context) error {
			return storage.CheckHealth(ctx, store)
		})
	}

	// Unversioned operational routes
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(game, storeCheck))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	h := handler.NewGameHandler(game, cat)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", h.HandleGetState)
		r.Get("/status", h.HandleGetStatus)

		r.Route("/plants", func(r chi.Router) {
			r.Post("/", h.HandlePlantSeed)
			r.Route("/{slot}", func(r chi.Router) {
				r.Put("/", h.HandleUpdatePlant)
				r.Delete("/", h.HandleRemovePlant)
				r.Get("/eligibility", h.HandleEligibility)
				r.Post("/water", h.HandleWater)
				r.Post("/fertilize", h.HandleFertilize)
				r.Post("/harvest", h.HandleHarvest)
			})
		})

		r.Route("/trade/offers", func(r chi.Router) {
			r.Post("/", h.HandleGenerateOffers)
			r.Post("/{id}/accept", h.HandleAcceptOffer)
			r.Post("/{id}/haggle", h.HandleHaggleOffer)
		})

		r.Post("/quests/{id}/claim", h.HandleClaimQuest)

		r.Route("/events", func(r chi.Router) {
			r.Post("/trigger", h.HandleTriggerEvent)
			r.Post("/tick", h.HandleTickEvent)
		})

		r.Post("/wallet/{currency}/{action}", h.HandleWallet)
		r.Post("/upgrades/{id}", h.HandleUpgrade)
		r.Post("/slots", h.HandleAddSlot)
		r.Put("/settings", h.HandleUpdateSettings)

		r.Post("/save", h.HandleSave)
		r.Post("/reset", h.HandleReset)

		if hub != nil {
			r.Get("/stream", sse.Handler(hub))
		}
	})

	return r
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

func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Probes and scrapes are not logged
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

// Start starts the server. It returns http.ErrServerClosed after Stop.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
