// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/dbx"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/server/migrations"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/server/repositories/bookings"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/server/repositories/cars"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// Cars returns a cars.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Cars(db dbx.DBTX) cars.Repository {
	return cars.NewPostgresRepository(db)
}

// Bookings returns a bookings.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Bookings(db dbx.DBTX) bookings.Repository {
	return bookings.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetDialect("pgx")
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
