package users

import (
	"context"

	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
