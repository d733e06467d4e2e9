package pg

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/logger"
	sharedpg "github.com/itchan-dev/forum/shared/storage/pg"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrateUp applies all pending schema migrations.
func MigrateUp(cfg config.Pg) error {
	return runMigrations(cfg, "up", func(m *migrate.Migrate) error { return m.Up() })
}

// MigrateDown reverts every applied migration.
func MigrateDown(cfg config.Pg) error {
	return runMigrations(cfg, "down", func(m *migrate.Migrate) error { return m.Down() })
}

// runMigrations uses its own connection because closing a migrate instance
// also closes the database handle it was given.
func runMigrations(cfg config.Pg, direction string, run func(*migrate.Migrate) error) error {
	db, err := sql.Open("postgres", sharedpg.DSN(cfg))
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to read embedded migrations: %w", err)
	}
	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to create migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer m.Close()

	if err := run(m); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Log.Info("schema is up to date", "direction", direction)
			return nil
		}
		return fmt.Errorf("failed to migrate %s: %w", direction, err)
	}

	version, dirty, _ := m.Version()
	logger.Log.Info("migrations applied", "direction", direction, "version", version, "dirty", dirty)
	return nil
}
