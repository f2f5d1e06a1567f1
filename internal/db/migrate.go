package db

import (
	migrate "github.com/golang-migrate/migrate/v4"
	// The following blank imports register the database drivers and file
	// source for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// runSQLMigrations executes migrations in ./migrations using the
// golang-migrate file source. AutoMigrate remains the dev-convenience
// fallback when MIGRATIONS is unset.
func runSQLMigrations(dsn string) error {
	dbURL := dsn
	if !IsPostgresDSN(dsn) {
		dbURL = "sqlite3://" + dsn
	}
	m, err := migrate.New("file://migrations", dbURL)
	if err != nil {
		return err
	}
	if err = m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
