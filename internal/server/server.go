package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/MinesBot_Go/internal/cases"
	"github.com/osse101/MinesBot_Go/internal/economy"
	"github.com/osse101/MinesBot_Go/internal/handler"
	"github.com/osse101/MinesBot_Go/internal/ladder"
	"github.com/osse101/MinesBot_Go/internal/logger"
	"github.com/osse101/MinesBot_Go/internal/metrics"
	"github.com/osse101/MinesBot_Go/internal/mining"
	"github.com/osse101/MinesBot_Go/internal/player"
	"github.com/osse101/MinesBot_Go/internal/tables"
)

// Options configures the HTTP surface
type Options struct {
	Port            int
	APIKey          string
	TrustedProxies  []string
	MaxRequestBytes int64
	ServiceName     string
	Version         string
	Environment     string
}

// Services are the game services the routes call into
type Services struct {
	Player  player.Service
	Mining  mining.Service
	Economy economy.Service
	Ladder  ladder.Service
	Cases   cases.Service
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer builds the router and the HTTP server around it
func NewServer(opts Options, db handler.Pinger, tb *tables.Tables, svc Services) *Server {
	r := NewRouter(opts, db, tb, svc)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: DefaultReadHeaderTimeout,
		},
		router: r,
	}
}

// NewRouter wires middleware and routes. Chi middleware executes in the
// order defined, outermost first.
func NewRouter(opts Options, db handler.Pinger, tb *tables.Tables, svc Services) chi.Router {
	maxBytes := opts.MaxRequestBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxRequestBytes
	}
	detector := NewSuspiciousActivityDetector()

	r := chi.NewRouter()
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(metrics.Middleware)
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(maxBytes))

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(db))
	r.Get("/version", handler.HandleVersion(opts.ServiceName, opts.Version, opts.Environment))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/config/economy", handler.HandleEconomyConfig(tb))

		r.Group(func(r chi.Router) {
			r.Use(IdentityMiddleware(svc.Player))

			r.Get("/profile", handler.HandleGetProfile(svc.Player))

			r.Route("/mine", func(r chi.Router) {
				r.Post("/dig", handler.HandleDig(svc.Mining))
				r.Post("/sell", handler.HandleSell(svc.Economy))
			})

			r.Route("/shop", func(r chi.Router) {
				r.Post("/exchange", handler.HandleExchange(svc.Economy))
				r.Get("/upgrade", handler.HandleUpgradeQuote(svc.Player, svc.Economy))
				r.Post("/upgrade", handler.HandleUpgrade(svc.Economy))
			})

			r.Route("/cases", func(r chi.Router) {
				r.Post("/open", handler.HandleOpenCase(svc.Cases))
				r.Get("/collectibles", handler.HandleListCollectibles(svc.Cases))
			})

			r.Route("/ladder", func(r chi.Router) {
				r.Post("/start", handler.HandleLadderStart(svc.Ladder))
				r.Post("/pick", handler.HandleLadderPick(svc.Ladder))
				r.Post("/cashout", handler.HandleLadderCashout(svc.Ladder))
				r.Get("/session", handler.HandleLadderSession(svc.Ladder))
			})
		})
	})

	return r
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

func isProbePath(path string) bool {
	return strings.HasPrefix(path, "/healthz") ||
		strings.HasPrefix(path, "/readyz") ||
		strings.HasPrefix(path, "/metrics")
}

// loggingMiddleware assigns a request id (reusing the gateway's when sent)
// and logs start and completion of every non-probe request
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isProbePath(r.URL.Path) {
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
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		headers := r.Header.Clone()
		for _, secret := range []string{HeaderAPIKey, HeaderAuthorization} {
			if headers.Get(secret) != "" {
				headers.Set(secret, RedactedValue)
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", headers)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
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
