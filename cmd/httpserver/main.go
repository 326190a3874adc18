// @title Movie Catalog API
// @version 1.0
// @description Read-only movie catalog with paginated list and detail endpoints.
// @BasePath /
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moviecatalog/database"
	"moviecatalog/httpserver"
	"moviecatalog/movie"
	"moviecatalog/pkg/config"
	"moviecatalog/pkg/sentry"
	"moviecatalog/seed"

	sentrygo "github.com/getsentry/sentry-go"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Cannot load config", "error", err)
		os.Exit(1)
	}

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		slog.Error("Cannot init sentry", "error", err)
		os.Exit(1)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	if err := run(cfg, logger); err != nil {
		sentry.Error(err)
		slog.Error("server stopped with error", "error", err)
		sentrygo.Flush(sentry.FlushTime)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewConnection(database.OptionsFromConfig(cfg))
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error("cannot close database", "error", err)
		}
	}()

	applied, err := database.Migrate(db, cfg.DB.Driver)
	if err != nil {
		return err
	}
	logger.Info("applied migrations", "total", applied)

	repo := database.NewMovieRepository(db)
	if cfg.SeedOnStartup {
		seeder := seed.NewSeeder(cfg.MoviesCSVPath, repo, logger)
		// the API stays up on a failed seed; the store is left empty
		if _, _, err := seeder.SeedIfEmpty(ctx); err != nil {
			sentry.WithTags(map[string]string{"component": "seed"}).
				WithContextValues(map[string]sentrygo.Context{"seed": {"csv": cfg.MoviesCSVPath}}).
				Error(err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	server := httpserver.Default(cfg)
	server.Logger = logger
	server.DB = sqlDB
	server.MovieService = movie.NewUsecase(repo)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server started!", "addr", server.Addr)
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
