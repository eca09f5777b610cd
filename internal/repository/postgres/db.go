package postgres

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/jwalitptl/clinic-cli/internal/config"
	apperrors "github.com/jwalitptl/clinic-cli/pkg/errors"
)

const driverName = "postgres"

// DriverAvailable reports whether the PostgreSQL driver is registered.
func DriverAvailable() bool {
	for _, d := range sql.Drivers() {
		if d == driverName {
			return true
		}
	}
	return false
}

// NewDB opens the session's single connection.
func NewDB(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := sqlx.Connect(driverName, cfg.DSN())
	if err != nil {
		return nil, apperrors.Connection(fmt.Errorf("failed to connect to database: %w", err))
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, apperrors.Connection(fmt.Errorf("failed to ping database: %w", err))
	}

	return db, nil
}
