package cars

import (
	"context"

	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, car *models.Car) (*models.Car, error)
	GetByID(ctx context.Context, id int64) (*models.Car, error)
	List(ctx context.Context) ([]*models.Car, error)
}
