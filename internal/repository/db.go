package repository

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"

	"github.com/devdiary/devdiary-go/internal/repository/migrations"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite3"
)

// Open connects to the database, verifies the connection and applies all
// pending migrations for the driver's dialect.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	switch driver {
	case DriverSQLite:
		// SQLite serialises writers; one connection avoids SQLITE_BUSY.
		db.SetMaxOpenConns(1)
	default:
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s database: %w", driver, err)
	}

	if err := Migrate(ctx, db, driver); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate applies the embedded migrations for driver.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	var dialect goose.Dialect
	switch driver {
	case DriverMySQL:
		dialect = goose.DialectMySQL
	case DriverSQLite:
		dialect = goose.DialectSQLite3
	default:
		return fmt.Errorf("no migrations for driver %q", driver)
	}

	fsys, err := fs.Sub(migrations.FS, driver)
	if err != nil {
		return fmt.Errorf("load %s migrations: %w", driver, err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("create migration provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}
