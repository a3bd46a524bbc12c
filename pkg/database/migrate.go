package database

import (
	"database/sql"
	"errors"
	"fmt"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Direction selects which way migrations are applied.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// RunMigrations applies the migrations found at migrationsPath (e.g. "file://migrations").
// It reports whether anything changed.
func RunMigrations(databaseURL, migrationsPath string, dir Direction) (changed bool, err error) {
	if databaseURL == "" {
		return false, fmt.Errorf("database URL cannot be empty")
	}

	// A plain sql.DB over the pgx stdlib driver for migrate
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return false, fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	defer migrationDB.Close()

	if err := migrationDB.Ping(); err != nil {
		return false, fmt.Errorf("failed to ping database for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return false, fmt.Errorf("could not create postgres driver instance for migrations: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(migrationsPath, "postgres", driver)
	if err != nil {
		return false, fmt.Errorf("could not create migrate instance: %w", err)
	}

	switch dir {
	case Up:
		err = m.Up()
	case Down:
		err = m.Steps(-1)
	default:
		return false, fmt.Errorf("unknown migration direction '%s'", dir)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return false, fmt.Errorf("failed to apply migrations: %w", err)
	}
	changed = !errors.Is(err, migrate.ErrNoChange)

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return changed, fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return changed, fmt.Errorf("migration database error: %w", dbErr)
	}
	return changed, nil
}
