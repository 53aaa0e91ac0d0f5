// Package migrations embeds the schema of every supported store.
package migrations

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/clickhouse"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed clickhouse/*.sql postgres/*.sql
var files embed.FS

// Store names a supported persistence backend.
type Store string

const (
	ClickHouse Store = "clickhouse"
	Postgres   Store = "postgres"
)

// Valid reports whether s is a supported store.
func (s Store) Valid() bool {
	return s == ClickHouse || s == Postgres
}

// New returns a migrator for the store at dsn.
func New(store Store, dsn string) (*migrate.Migrate, error) {
	if !store.Valid() {
		return nil, fmt.Errorf("unsupported store %q", store)
	}
	if dsn == "" {
		return nil, errors.New("dsn is required")
	}

	src, err := iofs.New(files, string(store))
	if err != nil {
		return nil, fmt.Errorf("open %s migrations: %w", store, err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, DatabaseURL(store, dsn))
	if err != nil {
		return nil, fmt.Errorf("init migrate: %w", err)
	}
	return m, nil
}

// Up applies all pending migrations.
func Up(store Store, dsn string) error {
	return withMigrator(store, dsn, func(m *migrate.Migrate) error {
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migrate up: %w", err)
		}
		return nil
	})
}

// Down reverts all migrations, dropping every table.
func Down(store Store, dsn string) error {
	return withMigrator(store, dsn, func(m *migrate.Migrate) error {
		if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migrate down: %w", err)
		}
		return nil
	})
}

// Recreate drops and recreates the whole schema.
func Recreate(store Store, dsn string) error {
	if err := Down(store, dsn); err != nil {
		return err
	}
	return Up(store, dsn)
}

// DatabaseURL rewrites dsn into the scheme the migrate driver registers for store.
func DatabaseURL(store Store, dsn string) string {
	if store != Postgres {
		return dsn
	}
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(dsn, prefix) {
			return "pgx5://" + strings.TrimPrefix(dsn, prefix)
		}
	}
	return dsn
}

func withMigrator(store Store, dsn string, fn func(m *migrate.Migrate) error) (err error) {
	m, err := New(store, dsn)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeMigrator(m); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	return fn(m)
}

func closeMigrator(m *migrate.Migrate) error {
	sourceErr, dbErr := m.Close()
	if sourceErr != nil && dbErr != nil {
		return fmt.Errorf("close migrator: source: %v; database: %v", sourceErr, dbErr)
	}
	if sourceErr != nil {
		return fmt.Errorf("close migrator: source: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("close migrator: database: %w", dbErr)
	}
	return nil
}
