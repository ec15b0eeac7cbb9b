package mockapi

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-sync/config"
	"github.com/rs/zerolog/log"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

// NewServer builds the mock API server. The router is mounted under /api so
// the default client base URL points at it.
func NewServer(cfg config.MockServer, store *Store) (Server, error) {
	if cfg.JWTSecret == "" {
		return Server{}, fmt.Errorf("mock api: JWT secret must not be empty")
	}

	address := fmt.Sprintf("0.0.0.0:%s", cfg.Port)
	startupTime := time.Now()

	router := chi.NewRouter()
	router.Mount("/api", NewRouter(store, withConfig(cfg), withStartupTime(startupTime), withRequestLogging()))

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return Server{server, startupTime}, nil
}

// RouterOption configures NewRouter.
type RouterOption func(*router)

type router struct {
	config      config.MockServer
	startupTime time.Time
	logRequests bool
}

func withConfig(c config.MockServer) RouterOption {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) RouterOption {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func withRequestLogging() RouterOption {
	return func(r *router) {
		r.logRequests = true
	}
}

// NewRouter returns the API routes, unprefixed. Tests mount it directly on
// an httptest server.
func NewRouter(store *Store, opts ...RouterOption) *chi.Mux {
	router := router{config: config.LoadMockServer(nil), startupTime: time.Now()}
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(recoverPanics)
	chiRouter.Use(corsMiddleware(router.config.AcceptedOrigins))
	if router.logRequests {
		chiRouter.Use(requestLogger(os.Stderr))
	}

	tokens := newTokenIssuer(router.config.JWTSecret, router.config.TokenTTL)
	handlers := initializeHandlers(store, tokens)
	authMiddleware := newAuthMiddleware(tokens)

	if router.config.AdminEmail != "" && router.config.AdminPassword != "" {
		if _, created, err := store.Users.Add(router.config.AdminEmail, router.config.AdminPassword); err != nil {
			log.Error().Err(err).Msg("failed to seed admin account")
		} else if created {
			log.Info().Str("email", router.config.AdminEmail).Msg("seeded admin account")
		}
	}

	chiRouter.Get("/health", router.health())
	authLimiter := newRateLimiter(router.config.AuthRateLimit, router.config.AuthRatePeriod)
	setupRoutes(chiRouter, handlers, authMiddleware, authLimiter)
	return chiRouter
}

// WithConfig overrides the default mock server settings.
func WithConfig(c config.MockServer) RouterOption {
	return withConfig(c)
}

func (rt router) health() http.HandlerFunc {
	responder := NewResponder(log.Logger)
	return func(w http.ResponseWriter, r *http.Request) {
		responder.WriteJSON(w, map[string]any{
			"status":     "ok",
			"startedAt":  rt.startupTime.Format(time.RFC3339),
			"uptimeSecs": int(time.Since(rt.startupTime).Seconds()),
		})
	}
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Dur("uptime", time.Since(s.startupTime)).Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
