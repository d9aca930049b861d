package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"adpulse/db/migrations"
)

// ErrDirtySchema is returned when a previous migration stopped halfway.
// The schema has to be repaired by hand before the service can start.
var ErrDirtySchema = errors.New("database schema is dirty")

// Migrate brings the database at addr to migrations.Version and returns
// the version the schema was at before.
func Migrate(addr string) (from uint, err error) {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return 0, fmt.Errorf("open embedded migrations: %w", err)
	}
	defer src.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		return 0, fmt.Errorf("init migrate: %w", err)
	}
	defer func() {
		srcErr, dbErr := mg.Close()
		if err == nil {
			err = errors.Join(srcErr, dbErr)
		}
	}()

	from, dirty, err := mg.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		from = 0
	case err != nil:
		return 0, fmt.Errorf("read schema version: %w", err)
	case dirty:
		return from, fmt.Errorf("%w at version %d", ErrDirtySchema, from)
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return from, fmt.Errorf("migrate %d -> %d: %w", from, migrations.Version, err)
	}
	return from, nil
}
