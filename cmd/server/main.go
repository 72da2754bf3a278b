package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bankist/internal/app"
	"bankist/internal/config"
	"bankist/internal/handlers"
	"bankist/internal/middleware"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load(".env")
	logger := newLogger(cfg)
	slog.SetDefault(logger)

	a, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	for _, c := range a.Credentials {
		logger.Info("demo account available", "owner", c.Owner, "short_id", c.ShortID)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loginLimiter := middleware.NewRateLimiter(cfg.Security.LoginRatePerSecond, cfg.Security.LoginRateBurst)
	go loginLimiter.Run(ctx, middleware.DefaultCleanupInterval, middleware.DefaultVisitorTTL)

	e := newServer(cfg, a, loginLimiter, logger)

	go func() {
		logger.Info("bankist server listening", "address", cfg.Address(), "environment", cfg.Server.Environment)
		if err := e.Start(cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped unexpectedly", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

func newServer(cfg *config.Config, a *app.App, loginLimiter *middleware.RateLimiter, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewErrorHandler(a.Registry, logger).Handle

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
	}))

	handlers.RegisterRoutes(e, handlers.Handlers{
		Health:  handlers.NewHealthCheckHandler(a.Accounts),
		Session: handlers.NewSessionHandler(a.Sessions),
		Account: handlers.NewAccountHandler(a.Sessions),
	}, loginLimiter.Middleware())

	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(a.Registry, promhttp.HandlerOpts{})))

	return e
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
