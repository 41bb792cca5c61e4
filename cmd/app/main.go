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

	"tms/cmd"
	httpin "tms/internal/adapters/in/http"
	"tms/internal/adapters/out/postgres"
	"tms/internal/logger"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/sirupsen/logrus"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}

	configs, err := cmd.ConfigFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logrusLogger, closer := logger.New(configs.Log)
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, configs, logrusLogger); err != nil {
		logrusLogger.WithError(err).Error("service stopped with error")
		closer.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, configs cmd.Config, logrusLogger *logrus.Logger) error {
	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{
		Logger: logger.NewGormLogger(logrusLogger, configs.DBSlowQuery),
	})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	seeded, err := postgres.Migrate(ctx, gormDB)
	if err != nil {
		return err
	}
	logrusLogger.WithField("order_number_sequence", seeded).Info("database migrated")

	err = postgres.Seed(ctx, gormDB, postgres.SeedOptions{
		AdminName:     configs.AdminName,
		AdminEmail:    configs.AdminEmail,
		AdminPassword: configs.AdminPassword,
		Demo:          configs.SeedDemo,
	}, logrusLogger)
	if err != nil {
		return err
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logrusLogger)
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := newWebServer(ctx, app, configs, logrusLogger)
	if err != nil {
		return err
	}
	return serve(ctx, e, configs.HTTPPort, logrusLogger)
}

func newWebServer(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config, logrusLogger *logrus.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(echoLogLevel(logrusLogger.GetLevel()))
	e.HTTPErrorHandler = httpin.ErrorHandler(logrusLogger)

	e.Use(middleware.Recover())
	e.Use(logger.RequestLogger(logrusLogger))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: configs.CORSAllowOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	if err := httpin.Register(ctx, e, app.CreateHTTPServer(), app.AuthService()); err != nil {
		return nil, err
	}
	return e, nil
}

func serve(ctx context.Context, e *echo.Echo, port string, logrusLogger *logrus.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logrusLogger.WithField("port", port).Info("http server listening")
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logrusLogger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func echoLogLevel(level logrus.Level) log.Lvl {
	switch level {
	case logrus.TraceLevel, logrus.DebugLevel:
		return log.DEBUG
	case logrus.InfoLevel:
		return log.INFO
	case logrus.WarnLevel:
		return log.WARN
	default:
		return log.ERROR
	}
}
