package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"

	_ "github.com/johnquangdev/meeting-summarizer/docs"
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/handler"
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/repository"
	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/database"
	httpmw "github.com/johnquangdev/meeting-summarizer/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-summarizer/internal/infrastructure/storage"
	meetingUsecase "github.com/johnquangdev/meeting-summarizer/internal/usecase/meeting"
	"github.com/johnquangdev/meeting-summarizer/pkg/ai"
	"github.com/johnquangdev/meeting-summarizer/pkg/config"
	"github.com/johnquangdev/meeting-summarizer/pkg/jwt"
	pkglogger "github.com/johnquangdev/meeting-summarizer/pkg/logger"
	"github.com/johnquangdev/meeting-summarizer/pkg/metrics"
	pkgvalidator "github.com/johnquangdev/meeting-summarizer/pkg/validator"
)

// @title           Meeting Summarizer API
// @version         1.0
// @description     Meeting transcription, summarization and action item tracking

// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := pkglogger.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	// Initialize Database
	logger.Info("connecting to database", zap.String("host", cfg.Database.Host))
	db, err := database.NewPostgresDB(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	if cfg.Database.AutoMigrate {
		n, err := database.Migrate(ctx, db, migrate.Up, 0)
		if err != nil {
			logger.Fatal("failed to apply migrations", zap.Error(err))
		}
		logger.Info("migrations applied", zap.Int("count", n))
	} else {
		logger.Info("skipping migrations; run meetingctl migrate up")
	}

	// Stats cache: Redis when enabled, in-process otherwise
	var statsCache cache.Cache
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(ctx, cfg)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		store := cache.NewRedisStore(redisClient)
		defer store.Close()
		statsCache = store
	} else {
		store := cache.NewMemoryStore()
		defer store.Close()
		statsCache = store
	}

	opts := []meetingUsecase.Option{meetingUsecase.WithCache(statsCache, cfg.Redis.StatsTTL)}

	if cfg.Storage.Enabled {
		archive, err := storage.NewMinIOArchive(ctx, &cfg.Storage)
		if err != nil {
			logger.Fatal("failed to initialize audio storage", zap.Error(err))
		}
		opts = append(opts, meetingUsecase.WithArchive(archive))
		logger.Info("audio archive enabled", zap.String("bucket", cfg.Storage.BucketName))
	}

	// Initialize provider
	provider, err := ai.New(cfg.Provider, logger)
	if err != nil {
		logger.Fatal("failed to initialize provider", zap.Error(err))
	}
	provider = ai.Instrument(provider, logger)
	logger.Info("provider selected",
		zap.String("provider", provider.Name()),
		zap.String("display_name", ai.DisplayName(provider.Name())),
	)

	// Initialize use case and handlers
	meetingService := meetingUsecase.NewMeetingService(
		repository.NewMeetingRepository(db),
		repository.NewTranscriptRepository(db),
		repository.NewSummaryRepository(db),
		repository.NewActionItemRepository(db),
		provider,
		logger,
		opts...,
	)

	meetingHandler := handler.NewMeetingHandler(meetingService, logger, cfg.MaxUploadBytes())
	systemHandler := handler.NewSystemHandler(cfg, provider.Name(), logger)

	var authMW echo.MiddlewareFunc
	if cfg.Auth.Enabled {
		authMW = httpmw.EchoAuth(jwt.NewManager(cfg.Auth.AccessSecret, cfg.Auth.AccessExpiry))
		logger.Info("api token auth enabled")
	}

	e := newServer(cfg, logger)
	handler.NewRouter(meetingHandler, systemHandler, authMW).Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		logger.Info("starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("server stopped gracefully")
}

func newServer(cfg *config.Config, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = pkgvalidator.New()
	e.HTTPErrorHandler = handler.ErrorHandler(logger)

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("request_id", v.RequestID),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				logger.Warn("http.request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Info("http.request", fields...)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		ExposeHeaders:    []string{echo.HeaderContentDisposition, echo.HeaderXRequestID},
		AllowCredentials: true,
	}))
	e.Use(middleware.BodyLimit(cfg.Server.MaxUploadSize))
	e.Use(metrics.Middleware())

	return e
}
