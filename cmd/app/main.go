package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"supplychain/cmd"
	httpadapter "supplychain/internal/adapters/in/http"
	"supplychain/internal/adapters/out/postgres"
	"supplychain/internal/pkg/logger"
	"supplychain/internal/pkg/tracing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configs, err := cmd.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	zapLogger, err := logger.New(configs.Log)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	shutdownTracing, err := tracing.Init(ctx, configs.Tracing)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			zapLogger.Warn("flush traces", zap.Error(err))
		}
	}()

	gormDB, err := postgres.Open(configs.DB.DSN(),
		logger.NewGormLogger(zapLogger, logger.GormLevel(configs.DBLogLevel), 200*time.Millisecond))
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	if configs.DBMigrate {
		if err = postgres.Migrate(gormDB); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
	}

	app := cmd.NewCompositionRoot(configs, gormDB, zapLogger)

	if configs.ArchiveEnabled {
		jobManager := app.CreateJobManager()
		if err = jobManager.StartAll(); err != nil {
			return err
		}
		defer jobManager.StopAll()
	}

	return startWebServer(ctx, app, configs, zapLogger)
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, configs cmd.Config, zapLogger *zap.Logger) error {
	e, err := httpadapter.NewRouter(ctx, app.CreateHTTPServer(), httpadapter.RouterConfig{
		Verifier: app.CreateTokenVerifier(),
		Logger:   zapLogger,
		Swagger:  configs.Swagger,
	})
	if err != nil {
		return err
	}
	e.Logger.SetLevel(log.WARN)

	errCh := make(chan error, 1)
	go func() {
		zapLogger.Info("http server listening", zap.String("port", configs.HTTPPort))
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.ShutdownTimeout)
	defer cancel()
	zapLogger.Info("shutting down")
	return shutdown(shutdownCtx, e)
}

func shutdown(ctx context.Context, e *echo.Echo) error {
	if err := e.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
