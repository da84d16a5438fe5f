package database

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Direction selects which way Migrate moves the schema.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// Migrate applies the migrations found in dir. No pending change is not an error.
func Migrate(svc Service, dir string, direction Direction) error {
	var (
		driver migratedb.Driver
		err    error
	)
	switch svc.Dialect() {
	case Postgres:
		driver, err = postgres.WithInstance(svc.DB(), &postgres.Config{})
	case SQLite:
		driver, err = sqlite.WithInstance(svc.DB(), &sqlite.Config{})
	default:
		return fmt.Errorf("unsupported dialect %q", svc.Dialect())
	}
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+dir, string(svc.Dialect()), driver)
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	switch direction {
	case Up:
		err = m.Up()
	case Down:
		err = m.Down()
	default:
		return fmt.Errorf("unknown direction %q", direction)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate %s: %w", direction, err)
	}
	return nil
}
