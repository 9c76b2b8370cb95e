package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/morvy/kybernaut-ic-dic/internal/application/checkout"
	"github.com/morvy/kybernaut-ic-dic/internal/application/exemption"
	"github.com/morvy/kybernaut-ic-dic/internal/infrastructure/cache"
	"github.com/morvy/kybernaut-ic-dic/internal/infrastructure/config"
	"github.com/morvy/kybernaut-ic-dic/internal/infrastructure/logger"
	"github.com/morvy/kybernaut-ic-dic/internal/infrastructure/persistence"
	"github.com/morvy/kybernaut-ic-dic/internal/infrastructure/registry"
	"github.com/morvy/kybernaut-ic-dic/internal/infrastructure/telemetry"
	"github.com/morvy/kybernaut-ic-dic/internal/interfaces/http/handler"
	"github.com/morvy/kybernaut-ic-dic/internal/interfaces/http/middleware"
	"github.com/morvy/kybernaut-ic-dic/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting VAT Audit API",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize telemetry providers (no-ops when disabled)
	telemetryCfg := telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}

	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetryCfg, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	loggerProvider, err := telemetry.NewLoggerProvider(context.Background(), telemetryCfg, log)
	if err != nil {
		log.Fatal("Failed to initialize logger provider", zap.Error(err))
	}
	log = loggerProvider.BridgeLogger(log)

	// Initialize database connection
	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if err := telemetry.RegisterDBTracing(db.DB, cfg.Telemetry.Enabled, log); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	// Initialize the order lock backend
	orderLocker, err := cache.NewOrderLocker(cfg.Lock, cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to initialize order locker", zap.Error(err))
	}

	// Initialize repositories and registry adapters
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	viesAdapter := registry.NewViesAdapter(registry.ViesConfig{
		BaseURL:        cfg.Registry.ViesBaseURL,
		TimeoutSeconds: cfg.Registry.ViesTimeoutSeconds,
	}, log)
	aresAdapter := registry.NewAresAdapter(registry.AresConfig{
		BaseURL:        cfg.Registry.AresBaseURL,
		TimeoutSeconds: cfg.Registry.AresTimeoutSeconds,
	}, log)

	// Initialize application services
	auditor := exemption.NewAuditor(orderRepo, viesAdapter, orderLocker, log)
	fieldService := checkout.NewFieldService(aresAdapter, checkout.Config{
		AresCheck: cfg.Checkout.AresCheck,
		AresFill:  cfg.Checkout.AresFill,
	}, log)

	// Setup gin engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))
	engine.Use(middleware.SpanErrorMarker())

	// Register routes
	router.NewRouter(engine).
		Register(handler.NewIdentifierHandler()).
		Register(handler.NewCheckoutHandler(fieldService)).
		Register(handler.NewExemptionHandler(auditor)).
		Register(handler.NewSystemHandler(db.Ping)).
		Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := tracerProvider.Shutdown(ctx); err != nil {
		log.Error("Error shutting down tracer provider", zap.Error(err))
	}
	if err := loggerProvider.Shutdown(ctx); err != nil {
		log.Error("Error shutting down logger provider", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
