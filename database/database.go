package database

import (
	"fmt"
	"os"
	"path/filepath"

	"moviecatalog/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	// MemoryPath selects a private in-memory SQLite store.
	MemoryPath = ":memory:"
)

type Options struct {
	Driver string

	// Path is the SQLite database file, or MemoryPath.
	Path string

	DBName   string
	DBUser   string
	Password string
	Host     string
	Port     string
	SSLMode  bool
}

func NewConnection(opts Options) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	}

	switch opts.Driver {
	case DriverPostgres:
		return gorm.Open(postgres.Open(postgresDSN(opts)), cfg)
	case DriverSQLite, "":
		return openSQLite(opts.Path, cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", opts.Driver)
	}
}

func openSQLite(path string, cfg *gorm.Config) (*gorm.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite database path is empty")
	}
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), cfg)
	if err != nil {
		return nil, err
	}

	// every connection to :memory: opens a fresh database
	if path == MemoryPath {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetConnMaxLifetime(0)
		sqlDB.SetConnMaxIdleTime(0)
	}

	return db, nil
}

func postgresDSN(opts Options) string {
	sslmode := "disable"
	if opts.SSLMode {
		sslmode = "require"
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		opts.Host, opts.Port, opts.DBUser, opts.Password, opts.DBName, sslmode,
	)
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// OptionsFromConfig builds connection options from the environment config.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Driver:   cfg.DB.Driver,
		Path:     cfg.DB.Path,
		DBName:   cfg.DB.Name,
		DBUser:   cfg.DB.User,
		Password: cfg.DB.Pass,
		Host:     cfg.DB.Host,
		Port:     cfg.DBPort(),
		SSLMode:  cfg.DB.EnableSSL,
	}
}
