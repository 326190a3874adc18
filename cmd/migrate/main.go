package main

import (
	"flag"
	"log/slog"
	"os"

	"moviecatalog/database"
	"moviecatalog/pkg/config"
	"moviecatalog/pkg/sentry"

	sentrygo "github.com/getsentry/sentry-go"
)

func main() {
	var down bool
	flag.BoolVar(&down, "down", false, "Drop and recreate the schema (all movies are lost)")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("cannot load config", "error", err)
		os.Exit(1)
	}

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:         cfg.SentryDSN,
		Environment: cfg.AppEnv,
	})
	if err != nil {
		logger.Error("cannot init sentry", "error", err)
		os.Exit(1)
	}

	db, err := database.NewConnection(database.OptionsFromConfig(cfg))
	if err != nil {
		logger.Error("cannot connecting to db", "error", err)
		sentry.Fatal(err)
		os.Exit(1)
	}
	defer database.Close(db)

	if down {
		if err := database.Reset(db, cfg.DB.Driver); err != nil {
			logger.Error("cannot reset schema", "error", err)
			sentry.Fatal(err)
			os.Exit(1)
		}
		logger.Info("schema reset")
		return
	}

	total, err := database.Migrate(db, cfg.DB.Driver)
	if err != nil {
		logger.Error("cannot execute migration", "error", err)
		sentry.Fatal(err)
		os.Exit(1)
	}

	logger.Info("applied migrations", "total", total)
}
