// Package apiserver provides the JSON API HTTP server
package apiserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/pantrychef/v2/internal/infrastructure/config"
	"github.com/pantrychef/v2/internal/infrastructure/http/handlers"
	"github.com/pantrychef/v2/internal/infrastructure/http/middleware"
	"github.com/pantrychef/v2/internal/infrastructure/monitoring"
	"github.com/pantrychef/v2/internal/ports/inbound"
	"github.com/pantrychef/v2/internal/ports/outbound"
)

// Server is the HTTP server exposing the API
type Server struct {
	config *config.Config
	logger *zap.Logger
	server *http.Server
	router *chi.Mux

	userService     inbound.UserService
	pantryService   inbound.PantryService
	trackingService inbound.TrackingService
	recipeService   inbound.RecipeService
	tokens          outbound.TokenService
	metrics         *monitoring.Metrics
}

// New creates a new API server instance
func New(
	cfg *config.Config,
	logger *zap.Logger,
	userService inbound.UserService,
	pantryService inbound.PantryService,
	trackingService inbound.TrackingService,
	recipeService inbound.RecipeService,
	tokens outbound.TokenService,
	metrics *monitoring.Metrics,
) *Server {
	s := &Server{
		config:          cfg,
		logger:          logger,
		userService:     userService,
		pantryService:   pantryService,
		trackingService: trackingService,
		recipeService:   recipeService,
		tokens:          tokens,
		metrics:         metrics,
	}

	s.router = s.setupRoutes()
	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return s
}

// Router returns the configured router, used directly in handler tests
func (s *Server) Router() *chi.Mux {
	return s.router
}

func (s *Server) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	if s.config.Server.EnableCORS {
		r.Use(middleware.CORS(s.config.Server.AllowedOrigins))
	}
	r.Use(chimiddleware.Timeout(90 * time.Second))
	r.Use(chimiddleware.Compress(5))
	r.Use(middleware.Metrics(s.metrics))
	r.Use(middleware.JSONOnly())

	r.Get("/health", s.handleHealthCheck)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		s.setupAPIV1Routes(r)
	})

	return r
}

func (s *Server) setupAPIV1Routes(r chi.Router) {
	authH := handlers.NewAuthHandlers(s.userService, s.logger)
	profileH := handlers.NewProfileHandlers(s.userService, s.logger)
	pantryH := handlers.NewPantryHandlers(s.pantryService, s.logger)
	trackingH := handlers.NewTrackingHandlers(s.trackingService, s.logger)
	recipeH := handlers.NewRecipeHandlers(s.recipeService, s.metrics, s.logger)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authH.Register)
		r.Post("/login", authH.Login)
	})

	// Everything below derives its user identity from the access token
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(s.tokens))

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", profileH.Get)
			r.Put("/", profileH.Update)
			r.Delete("/", profileH.Delete)
		})

		r.Get("/users", profileH.List)

		r.Route("/pantry", func(r chi.Router) {
			r.Get("/", pantryH.List)
			r.Post("/", pantryH.Add)
			r.Put("/", pantryH.Upsert)
			r.Delete("/{name}", pantryH.Remove)
		})

		r.Route("/tracking", func(r chi.Router) {
			r.Post("/", trackingH.Upsert)
			r.Get("/", trackingH.Get)
			r.Delete("/", trackingH.Remove)
		})

		r.Post("/recipes/generate", recipeH.Generate)
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting API server",
		zap.String("address", s.server.Addr),
	)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server...")
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"healthy","service":"%s","version":"%s","timestamp":%d}`,
		s.config.App.Name, s.config.App.Version, time.Now().Unix())
}
