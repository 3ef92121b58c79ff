package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/IdleMiner_Go/internal/database"
	"github.com/osse101/IdleMiner_Go/internal/handler"
	"github.com/osse101/IdleMiner_Go/internal/logger"
	"github.com/osse101/IdleMiner_Go/internal/metrics"
	"github.com/osse101/IdleMiner_Go/internal/mining"
	"github.com/osse101/IdleMiner_Go/internal/player"
)

// Config carries everything NewServer needs.
type Config struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Detector       DetectorConfig

	DBPool        database.Pool
	MiningService mining.Service
	PlayerService player.Service
}

// Server is the HTTP front end for the mining and player services.
type Server struct {
	httpServer *http.Server
	router     http.Handler
}

// NewServer builds the router and middleware chain.
func NewServer(cfg Config) *Server {
	router := newRouter(cfg)
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           router,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		router: router,
	}
}

func newRouter(cfg Config) http.Handler {
	handler.InitValidator()

	r := chi.NewRouter()
	detector := NewSuspiciousActivityDetector(cfg.Detector)

	// Outermost first
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(RateLimitMiddleware(cfg.TrustedProxies, detector))
	r.Use(AuthMiddleware(cfg.APIKey, cfg.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(cfg.DBPool))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	miningHandler := handler.NewMiningHandler(cfg.MiningService)
	playerHandler := handler.NewPlayerHandler(cfg.PlayerService)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/mining/mines", miningHandler.ListMines)

		r.Post("/players", playerHandler.Register)
		r.Route("/players/{"+handler.PlayerIDParam+"}", func(r chi.Router) {
			r.Get("/", playerHandler.Profile)

			r.Route("/inventory", func(r chi.Router) {
				r.Get("/", playerHandler.Inventory)
				r.Post("/sort", playerHandler.SortInventory)
				r.Post("/merge-temp", playerHandler.MergeTempInventory)
			})
			r.Post("/equip", playerHandler.Equip)
			r.Post("/unequip", playerHandler.Unequip)

			r.Route("/mining", func(r chi.Router) {
				r.Get("/status", miningHandler.Status)
				r.Post("/mine", miningHandler.MineOnce)

				r.Route("/continuous", func(r chi.Router) {
					r.Post("/start", miningHandler.StartContinuous)
					r.Post("/stop", miningHandler.StopContinuous)
					r.Post("/settle", miningHandler.SettleContinuous)
				})

				r.Put("/offline", miningHandler.ConfigureOffline)
				r.Post("/offline/settle", miningHandler.SettleOffline)
			})
		})
	})

	return r
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// responseWriter records the status code for request logging
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if rw.written {
		return
	}
	rw.statusCode = statusCode
	rw.written = true
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	for _, prefix := range quietPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// loggingMiddleware tags each request with an ID and logs its start and end.
// Secret headers are redacted.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)

		if log.Enabled(ctx, slog.LevelDebug) {
			log.Debug(LogMsgRequestHeaders, "headers", redactHeaders(r.Header))
		}

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

func redactHeaders(in http.Header) http.Header {
	out := make(http.Header, len(in))
	for k, v := range in {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			out[k] = []string{RedactedValue}
			continue
		}
		out[k] = v
	}
	return out
}

// Start blocks serving HTTP until the server is stopped. A clean shutdown
// returns nil.
func (s *Server) Start() error {
	slog.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop drains in-flight requests until ctx expires.
func (s *Server) Stop(ctx context.Context) error {
	slog.Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
