package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/common"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/server/config"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/server/models"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/server/repositories/repomanager"
)

// CarService provides catalog operations. Reads are plain pass-throughs to
// the store; no caching or pagination.
type CarService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewCarService constructs a CarService using repositories and server config.
func NewCarService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *CarService {
	return &CarService{db: db, repomanager: m}
}

// Create adds a car to the catalog. Name must be present and price
// non-negative; violations yield common.ErrValidation.
func (s *CarService) Create(ctx context.Context, name, details string, price float64) (*models.Car, error) {
	if name == "" || price < 0 {
		return nil, common.ErrValidation
	}

	car := &models.Car{Name: name, Details: details, Price: price}
	repo := s.repomanager.Cars(s.db)
	c, err := repo.Create(ctx, car)
	if err != nil {
		return nil, fmt.Errorf("error creating car: %w", err)
	}
	return c, nil
}

// GetByID returns a single car, or common.ErrorNotFound.
func (s *CarService) GetByID(ctx context.Context, id int64) (*models.Car, error) {
	repo := s.repomanager.Cars(s.db)
	car, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, common.ErrorInternal
	}
	return car, nil
}

// List returns the whole catalog.
func (s *CarService) List(ctx context.Context) ([]*models.Car, error) {
	repo := s.repomanager.Cars(s.db)
	cars, err := repo.List(ctx)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return cars, nil
}
