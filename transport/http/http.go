package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"roombook/config"
	"roombook/infras/otel"
	"roombook/infras/postgres"
	"roombook/shared/constant"
	"roombook/transport/http/middleware"
	"roombook/transport/http/response"
	"roombook/transport/http/router"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	// swagger docs
	_ "roombook/docs"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type HTTP struct {
	Config     *config.Config
	Router     router.Router
	Middleware middleware.AppMiddleware
	Otel       otel.Otel
	DB         *postgres.Connection
	state      atomic.Int32
	mux        *chi.Mux
	server     *http.Server
	setupOnce  sync.Once
	done       chan struct{}
}

func New(cfg *config.Config, r router.Router, mw middleware.AppMiddleware, ot otel.Otel, db *postgres.Connection) *HTTP {
	return &HTTP{
		Config:     cfg,
		Router:     r,
		Middleware: mw,
		Otel:       ot,
		DB:         db,
		done:       make(chan struct{}),
	}
}

// Serve blocks until the server is stopped by SIGINT/SIGTERM.
func (h *HTTP) Serve() {
	h.setupOnce.Do(h.setupRoutes)

	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	h.setupGracefulShutdown()
	h.SetState(ServerStateReady)

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}

	<-h.done
}

// ServeHTTP lets the router run behind another server, such as a serverless entrypoint.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.setupOnce.Do(func() {
		h.setupRoutes()
		h.SetState(ServerStateReady)
	})

	h.mux.ServeHTTP(w, r)
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

func (h *HTTP) SetState(state ServerState) {
	h.state.Store(int32(state))
}

func (h *HTTP) setupRoutes() {
	h.mux = chi.NewRouter()

	h.mux.Use(chiMiddleware.RequestID)
	h.mux.Use(chiMiddleware.RealIP)
	h.mux.Use(chiMiddleware.Recoverer)
	h.mux.Use(h.Middleware.CORS())
	h.mux.Use(h.Middleware.Tracing)

	h.mux.Get("/health", h.health)
	h.mux.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	h.mux.Group(func(r chi.Router) {
		r.Use(h.Middleware.RateLimit())
		h.Router.SetupRoutes(r)
	})
}

// health reports 503 as soon as shutdown starts so load balancers stop routing here.
func (h *HTTP) health(w http.ResponseWriter, _ *http.Request) {
	switch h.State() {
	case ServerStateReady:
		response.WithMessage(w, http.StatusOK, constant.ResponseHealthy)
	case ServerStateInGracePeriod, ServerStateInCleanupPeriod:
		response.WithPreparingShutdown(w)
	default:
		response.WithUnhealthy(w)
	}
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	defer close(h.done)

	if h.Config.Server.Env != constant.ServerEnvDevelopment {
		shutdownConfig := h.Config.Server.Shutdown

		log.Info().Msg("Received SIGTERM.")
		log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

		h.SetState(ServerStateInGracePeriod)

		time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

		log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

		h.SetState(ServerStateInCleanupPeriod)

		time.Sleep(time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second)
	} else {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down HTTP server")
	}

	if err := h.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}

	h.DB.Close()

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}
