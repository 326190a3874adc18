package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"moviecatalog/database"
	"moviecatalog/pkg/config"
	"moviecatalog/pkg/sentry"
	"moviecatalog/seed"

	sentrygo "github.com/getsentry/sentry-go"
)

func main() {
	var csvPath string
	flag.StringVar(&csvPath, "csv", "", "Path to imdb_movies.csv (defaults to MOVIES_CSV_PATH)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("load config failed", "error", err)
		os.Exit(1)
	}
	if csvPath == "" {
		csvPath = cfg.MoviesCSVPath
	}

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.AppEnv,
	})
	if err != nil {
		slog.Error("cannot init sentry", "error", err)
		os.Exit(1)
	}

	if err := run(context.Background(), cfg, csvPath, logger); err != nil {
		slog.Error("import failed", "error", err)
		sentry.WithTags(map[string]string{"component": "movieseed"}).Fatal(err)
		os.Exit(1)
	}
	sentrygo.Flush(sentry.FlushTime)
}

func run(ctx context.Context, cfg *config.Config, csvPath string, logger *slog.Logger) error {
	db, err := database.NewConnection(database.OptionsFromConfig(cfg))
	if err != nil {
		return err
	}
	defer database.Close(db)

	if _, err := database.Migrate(db, cfg.DB.Driver); err != nil {
		return err
	}

	seeder := seed.NewSeeder(csvPath, database.NewMovieRepository(db), logger)
	report, seeded, err := seeder.SeedIfEmpty(ctx)
	if err != nil {
		return err
	}
	if !seeded {
		return nil
	}

	if report.InvalidDates > 0 {
		sentry.WithExtras(map[string]interface{}{
			"csv":           csvPath,
			"checksum":      report.Checksum,
			"invalid_dates": report.InvalidDates,
		}).Warning("dropped rows with unparseable dates")
	}
	slog.Info("import completed", "rows", report.Inserted)
	return nil
}
