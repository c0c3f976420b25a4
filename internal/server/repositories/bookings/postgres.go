// Package bookings provides PostgreSQL-backed booking persistence and the
// owner-scoped read queries.
package bookings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/common"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/dbx"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/server/models"
)

const foreignKeyViolation = "23503"

// PostgresRepository implements booking storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a booking and returns it with the assigned id. The foreign
// keys on user_id and car_id make an orphaned booking structurally
// impossible; a violated reference surfaces as ErrorNotFound.
func (r *PostgresRepository) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {

	query :=
		`INSERT INTO bookings (user_id, car_id, travel_date)
         VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		booking.UserID, booking.CarID, booking.TravelDate).Scan(&booking.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return booking, nil
}

// ListForUser returns the bookings owned by userID, joined with the car name.
// Ownership is filtered in SQL, not in application code.
func (r *PostgresRepository) ListForUser(ctx context.Context, userID int64) ([]*models.Booking, error) {
	query :=
		`SELECT b.id, b.user_id, b.car_id, b.travel_date, c.name
		 FROM bookings b
		 JOIN cars c ON c.id = b.car_id
		 WHERE b.user_id = $1
		 ORDER BY b.id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select bookings: %w", err)
	}
	defer rows.Close()

	var result []*models.Booking
	for rows.Next() {
		var item models.Booking
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.CarID, &item.TravelDate, &item.CarName,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID returns the booking only if it is owned by userID. A booking that
// exists but belongs to another user scans as no rows, so it is
// indistinguishable from an absent id.
func (r *PostgresRepository) GetByID(ctx context.Context, userID int64, bookingID int64) (*models.Booking, error) {
	query :=
		`SELECT b.id, b.user_id, b.car_id, b.travel_date, c.name, u.name
		 FROM bookings b
		 JOIN cars c ON c.id = b.car_id
		 JOIN users u ON u.id = b.user_id
		 WHERE b.id = $1 AND b.user_id = $2
		 `

	booking := &models.Booking{}
	err := r.db.QueryRowContext(ctx, query, bookingID, userID).Scan(
		&booking.ID, &booking.UserID, &booking.CarID, &booking.TravelDate, &booking.CarName, &booking.UserName)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return booking, nil
}
