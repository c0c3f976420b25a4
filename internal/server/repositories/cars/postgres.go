// Package cars provides the PostgreSQL-backed car catalog.
package cars

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/common"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/dbx"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/server/models"
)

// PostgresRepository implements catalog storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, car *models.Car) (*models.Car, error) {

	query :=
		`INSERT INTO cars (name, details, price)
         VALUES ($1, $2, $3)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		car.Name, car.Details, car.Price).Scan(&car.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return car, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Car, error) {
	query :=
		`SELECT id, name, details, price FROM cars
		 WHERE id = $1
		 `

	car := &models.Car{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&car.ID, &car.Name, &car.Details, &car.Price)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return car, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Car, error) {
	query := `SELECT id, name, details, price FROM cars ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select cars: %w", err)
	}
	defer rows.Close()

	var result []*models.Car
	for rows.Next() {
		var item models.Car
		if err := rows.Scan(&item.ID, &item.Name, &item.Details, &item.Price); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
