package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gobindapaudel/portfolio/adapters/event"
	httpAdapter "github.com/gobindapaudel/portfolio/adapters/http"
	"github.com/gobindapaudel/portfolio/adapters/persistence"
	"github.com/gobindapaudel/portfolio/internal/application/service"
	feedUC "github.com/gobindapaudel/portfolio/internal/application/usecase/feed"
	portfolioUC "github.com/gobindapaudel/portfolio/internal/application/usecase/portfolio"
	viewsUC "github.com/gobindapaudel/portfolio/internal/application/usecase/views"
	"github.com/gobindapaudel/portfolio/internal/config"
	"github.com/gobindapaudel/portfolio/pkg/logger"
	"github.com/gobindapaudel/portfolio/pkg/tracing"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()
	if err != nil {
		appLogger.Fatal("cannot load config", err)
	}
	appLogger.Info("Start portfolio server...", zap.String("env", cfg.App.Env))

	tp, err := tracing.NewTracerProvider(cfg.Jaeger, appLogger, "portfolio-server")
	if err != nil {
		appLogger.Warn("Tracing disabled", zap.Error(err))
	}
	if tp != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = tp.Shutdown(ctx)
		}()
	}

	// Database
	var db persistence.DBTX
	dbPool, err := persistence.NewPostgresPool(cfg.DB, appLogger)
	if err != nil {
		appLogger.Error("Database unusable, serving fallback content", err)
		db = persistence.NewUnavailableDB(err)
	} else {
		defer dbPool.Close()
		db = dbPool
	}

	// Redis is optional: without it the home page reads through and view
	// counts read as zero.
	var (
		homeCache   service.HomeSnapshotCache
		viewCounter service.ViewCounter
	)
	redisClient, err := persistence.NewRedisClient(cfg.Redis, appLogger)
	if err != nil {
		appLogger.Warn("Redis unavailable, continuing without cache", zap.Error(err))
	} else if redisClient != nil {
		defer redisClient.Close()
		homeCache = persistence.NewRedisHomeCache(redisClient)
		viewCounter = persistence.NewRedisViewCounter(redisClient)
	}

	publisher := event.NewViewEventPublisher(cfg.Kafka, appLogger)
	if closer, ok := publisher.(*event.KafkaProducerClient); ok {
		defer closer.Close()
	}

	// Repositories
	profileRepo := persistence.NewPostgresProfileRepo(db, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(db, appLogger)

	// Use Cases
	reader := portfolioUC.NewReader(profileRepo, projectRepo, appLogger)
	homeUseCase := portfolioUC.NewHomeUseCase(reader, homeCache, cfg.App.Revalidate, appLogger)
	rssUseCase := feedUC.NewRSSUseCase(reader, cfg.App.SiteURL, appLogger)
	recordViewUseCase := viewsUC.NewRecordViewUseCase(publisher, appLogger)
	countViewsUseCase := viewsUC.NewCountViewsUseCase(viewCounter, appLogger)

	// HTTP Handlers
	handlers := httpAdapter.Handlers{
		Page:    httpAdapter.NewPageHandler(homeUseCase, reader, recordViewUseCase, cfg.App.SiteURL, appLogger),
		Profile: httpAdapter.NewProfileHandler(reader, appLogger),
		Project: httpAdapter.NewProjectHandler(reader, countViewsUseCase, appLogger),
		RSS:     httpAdapter.NewRSSHandler(rssUseCase, appLogger),
		Theme:   httpAdapter.NewThemeHandler(appLogger),
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router, err := httpAdapter.NewRouter(handlers, appLogger)
	if err != nil {
		appLogger.Fatal("cannot build router", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Cannot run server", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server shutdown failed", err)
	}
	appLogger.Info("Server exited")
}
