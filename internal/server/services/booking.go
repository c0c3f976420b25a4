package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/common"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/dbx"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/server/config"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/server/models"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/server/repositories/repomanager"
)

// TravelDateLayout is the wire format for booking dates. Bookings are
// calendar dates only; no time-of-day or zone semantics.
const TravelDateLayout = "2006-01-02"

// BookingService implements the booking-creation transaction and the
// owner-scoped reads.
type BookingService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewBookingService constructs a BookingService using repositories and server config.
func NewBookingService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *BookingService {
	return &BookingService{db: db, repomanager: m}
}

// Create books carID for userID on travelDate. userID is always the
// authenticated caller's id; it is never taken from client input.
//
// The car lookup and the booking insert run inside one transaction so the
// car cannot disappear between check and insert; the foreign key on car_id
// backstops the same invariant at the schema level. There is no uniqueness
// constraint on (car_id, travel_date): double booking is allowed.
func (s *BookingService) Create(ctx context.Context, userID int64, carID int64, travelDate string) (*models.Booking, error) {
	if carID <= 0 {
		return nil, common.ErrValidation
	}
	date, err := time.Parse(TravelDateLayout, travelDate)
	if err != nil {
		return nil, common.ErrValidation
	}

	booking := &models.Booking{UserID: userID, CarID: carID, TravelDate: date}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		carRepo := s.repomanager.Cars(tx)
		if _, err := carRepo.GetByID(ctx, carID); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorNotFound
			}
			return fmt.Errorf("error looking up car: %w", err)
		}

		bookingRepo := s.repomanager.Bookings(tx)
		if _, err := bookingRepo.Create(ctx, booking); err != nil {
			return err
		}
		return nil
	}); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}

	return booking, nil
}

// ListForUser returns the caller's bookings, car names included. An account
// with no bookings gets an empty list, not an error.
func (s *BookingService) ListForUser(ctx context.Context, userID int64) ([]*models.Booking, error) {
	repo := s.repomanager.Bookings(s.db)
	result, err := repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return result, nil
}

// GetByID returns one of the caller's bookings. A booking owned by another
// user reports common.ErrorNotFound, same as a nonexistent id, so existence
// is never confirmed to an unauthorized caller.
func (s *BookingService) GetByID(ctx context.Context, userID int64, bookingID int64) (*models.Booking, error) {
	repo := s.repomanager.Bookings(s.db)
	booking, err := repo.GetByID(ctx, userID, bookingID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, common.ErrorInternal
	}
	return booking, nil
}
