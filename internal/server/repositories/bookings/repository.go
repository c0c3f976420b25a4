package bookings

import (
	"context"

	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	ListForUser(ctx context.Context, userID int64) ([]*models.Booking, error)
	GetByID(ctx context.Context, userID int64, bookingID int64) (*models.Booking, error)
}
