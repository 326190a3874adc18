package config

import (
	"fmt"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvTesting routes the store to an isolated in-memory database.
const EnvTesting = "testing"

type Config struct {
	AppEnv       string  `envconfig:"APP_ENV" default:"developing"`
	Port         int     `envconfig:"PORT" default:"8080"`
	SentryDSN    string  `envconfig:"SENTRY_DSN"`
	AllowOrigins string  `envconfig:"ALLOW_ORIGINS" default:"*"`
	RateLimit    float64 `envconfig:"RATE_LIMIT" default:"20"`

	MoviesCSVPath string `envconfig:"MOVIES_CSV_PATH" default:"data/seed/imdb_movies.csv"`
	SeedOnStartup bool   `envconfig:"SEED_ON_STARTUP"`

	DB struct {
		Driver    string `envconfig:"DB_DRIVER" default:"sqlite"`
		Path      string `envconfig:"DB_PATH" default:"data/source/movies.db"`
		Name      string `envconfig:"DB_NAME"`
		Host      string `envconfig:"DB_HOST"`
		Port      int    `envconfig:"DB_PORT" default:"5432"`
		User      string `envconfig:"DB_USER"`
		Pass      string `envconfig:"DB_PASS"`
		EnableSSL bool   `envconfig:"ENABLE_SSL"`
	}
}

func LoadConfig() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	if cfg.IsTesting() {
		cfg.DB.Driver = "sqlite"
		cfg.DB.Path = ":memory:"
	}

	return cfg, nil
}

func (c *Config) IsTesting() bool {
	return c.AppEnv == EnvTesting
}

// DBPort is DB.Port in the string form the database options expect.
func (c *Config) DBPort() string {
	return strconv.Itoa(c.DB.Port)
}
