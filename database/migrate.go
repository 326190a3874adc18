package database

import (
	"embed"
	"fmt"

	migrate "github.com/rubenv/sql-migrate"
	"gorm.io/gorm"
)

//go:embed migrations
var migrationsFS embed.FS

func migrationSource(driver string) (migrate.MigrationSource, string, error) {
	switch driver {
	case DriverPostgres:
		return &migrate.EmbedFileSystemMigrationSource{FileSystem: migrationsFS, Root: "migrations/postgres"}, "postgres", nil
	case DriverSQLite, "":
		return &migrate.EmbedFileSystemMigrationSource{FileSystem: migrationsFS, Root: "migrations/sqlite"}, "sqlite3", nil
	default:
		return nil, "", fmt.Errorf("no migrations for driver %q", driver)
	}
}

// Migrate applies pending migrations and returns how many ran.
func Migrate(db *gorm.DB, driver string) (int, error) {
	return execMigrations(db, driver, migrate.Up)
}

// Rollback reverts every applied migration.
func Rollback(db *gorm.DB, driver string) (int, error) {
	return execMigrations(db, driver, migrate.Down)
}

// Reset drops and recreates the schema. All stored movies are lost.
func Reset(db *gorm.DB, driver string) error {
	if _, err := Rollback(db, driver); err != nil {
		return err
	}
	_, err := Migrate(db, driver)
	return err
}

func execMigrations(db *gorm.DB, driver string, dir migrate.MigrationDirection) (int, error) {
	source, dialect, err := migrationSource(driver)
	if err != nil {
		return 0, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("get db instance: %w", err)
	}

	n, err := migrate.Exec(sqlDB, dialect, source, dir)
	if err != nil {
		return n, fmt.Errorf("execute migrations: %w", err)
	}
	return n, nil
}
