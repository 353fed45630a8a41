package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"fincalc/config"
	httpLayer "fincalc/http"
	"fincalc/repository"
	"fincalc/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	logger := newLogger(cfg.Logging)
	defer func() { _ = logger.Sync() }()

	cache := newCache(cfg.Redis, logger)

	calcRepo := repository.NewMemoryCalculationRepository()

	loanService := service.NewLoanService(calcRepo, logger.Named("loan"))
	loanHandler := httpLayer.NewLoanHandler(loanService, logger.Named("loan-handler"))

	payoffService := service.NewDebtPayoffService(cache, logger.Named("payoff"))
	payoffHandler := httpLayer.NewDebtPayoffHandler(payoffService, logger.Named("payoff-handler"))

	calculationHandler := httpLayer.NewCalculationHandler(calcRepo, logger.Named("history-handler"))

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.RefillWindow)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()

	route := func(path string, handler http.HandlerFunc) {
		mux.Handle(path, httpLayer.MetricsMiddleware(path,
			httpLayer.RateLimitMiddleware(rateLimiter, handler)))
	}

	route("/loan/calculate", loanHandler.Calculate)
	route("/loan/affordability", loanHandler.Affordability)
	route("/loan/amortization-schedule", loanHandler.Schedule)
	route("/debt/payoff-plan", payoffHandler.PayoffPlan)
	route("/calculations", calculationHandler.List)
	route("/calculations/", calculationHandler.ByID)

	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("address", cfg.Server.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("server failed", zap.Error(err))
		return
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}

	logger.Info("server exited")
}

func newLogger(cfg config.LoggingConfig) *zap.Logger {
	level := zapcore.InfoLevel
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapCfg.Build()
	if err != nil {
		panic("failed to build logger: " + err.Error())
	}
	return logger
}

// newCache picks redis when configured and a process-local cache otherwise,
// so a missing redis never blocks a deployment.
func newCache(cfg config.RedisConfig, logger *zap.Logger) repository.CacheRepository {
	if cfg.Address == "" {
		logger.Info("no redis configured, using in-process cache")
		return repository.NewMockCache()
	}

	cache := repository.NewRedisCache(cfg.Address, cfg.Password, cfg.DB, cfg.TTL)
	if err := cache.Ping(context.Background()); err != nil {
		logger.Warn("redis unreachable, falling back to in-process cache",
			zap.String("address", cfg.Address), zap.Error(err))
		return repository.NewMockCache()
	}

	logger.Info("redis cache connected", zap.String("address", cfg.Address))
	return cache
}
