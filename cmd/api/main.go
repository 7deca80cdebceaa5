// Command api runs the PantryChef HTTP API server.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	pantryapp "github.com/pantrychef/v2/internal/application/pantry"
	recipeapp "github.com/pantrychef/v2/internal/application/recipe"
	trackingapp "github.com/pantrychef/v2/internal/application/tracking"
	userapp "github.com/pantrychef/v2/internal/application/user"
	"github.com/pantrychef/v2/internal/infrastructure/ai/openrouter"
	"github.com/pantrychef/v2/internal/infrastructure/config"
	"github.com/pantrychef/v2/internal/infrastructure/http/apiserver"
	"github.com/pantrychef/v2/internal/infrastructure/monitoring"
	gormrepo "github.com/pantrychef/v2/internal/infrastructure/persistence/gorm"
	"github.com/pantrychef/v2/internal/infrastructure/persistence/memory"
	"github.com/pantrychef/v2/internal/infrastructure/persistence/postgres"
	"github.com/pantrychef/v2/internal/infrastructure/persistence/redis"
	"github.com/pantrychef/v2/internal/infrastructure/persistence/sqlite"
	"github.com/pantrychef/v2/internal/infrastructure/security"
	"github.com/pantrychef/v2/internal/ports/outbound"
	"github.com/pantrychef/v2/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.App.LogLevel,
		Format:      cfg.App.LogFormat,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync()

	log.Info("Starting PantryChef",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	db, err := openDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	cache, err := openCache(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to open cache: %w", err)
	}

	userRepo := gormrepo.NewUserRepository(db)
	hasher := security.NewBcryptHasher(cfg.Auth.BCryptCost)
	tokens := security.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiration)
	completion := openrouter.NewClient(openrouter.Config{
		BaseURL: cfg.AI.BaseURL,
		APIKey:  cfg.AI.APIKey,
		Model:   cfg.AI.Model,
		Timeout: time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
	}, log)

	userService := userapp.NewService(userRepo, hasher, tokens, log)
	pantryService := pantryapp.NewService(userRepo, log)
	trackingService := trackingapp.NewService(userRepo, log)
	recipeService := recipeapp.NewService(userRepo, cache, completion, log)

	metrics := monitoring.NewMetrics()

	server := apiserver.New(cfg, log,
		userService, pantryService, trackingService, recipeService,
		tokens, metrics,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	log.Info("Server stopped cleanly")
	return nil
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.Database.Driver {
	case "sqlite":
		logLevel := gormlogger.Warn
		if cfg.App.Debug {
			logLevel = gormlogger.Info
		}
		return sqlite.SetupDatabase(cfg.Database.Database, logLevel)
	default:
		return postgres.Connect(cfg)
	}
}

func openCache(cfg *config.Config, log *zap.Logger) (outbound.CacheRepository, error) {
	if cfg.Redis.Enabled {
		return redis.NewCacheRepository(cfg, log)
	}
	return memory.NewCacheRepository(), nil
}
