package repomanager

import (
	"context"
	"database/sql"

	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/dbx"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/server/repositories/bookings"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/server/repositories/cars"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Cars(db dbx.DBTX) cars.Repository
	Bookings(db dbx.DBTX) bookings.Repository
}
