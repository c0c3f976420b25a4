package httpapi

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/common"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/dbx"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/logging"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/server/config"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/server/models"
	bookingsrepo "github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/server/repositories/bookings"
	carsrepo "github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/server/repositories/cars"
	usersrepo "github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/server/repositories/users"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/server/services"
	"golang.org/x/crypto/bcrypt"
)

// In-memory repositories backing the handler tests. They honor the same
// sentinel-error contracts as the Postgres implementations.

type memUsersRepo struct {
	byEmail map[string]*models.User
	nextID  int64
}

func newMemUsersRepo() *memUsersRepo {
	return &memUsersRepo{byEmail: map[string]*models.User{}, nextID: 1}
}

func (r *memUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if _, ok := r.byEmail[u.Email]; ok {
		return nil, common.ErrAlreadyExists
	}
	u.ID = r.nextID
	r.nextID++
	cp := *u
	r.byEmail[u.Email] = &cp
	return u, nil
}

func (r *memUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

type memCarsRepo struct {
	byID   map[int64]*models.Car
	nextID int64
}

func newMemCarsRepo() *memCarsRepo {
	return &memCarsRepo{byID: map[int64]*models.Car{}, nextID: 1}
}

func (r *memCarsRepo) Create(ctx context.Context, c *models.Car) (*models.Car, error) {
	c.ID = r.nextID
	r.nextID++
	cp := *c
	r.byID[c.ID] = &cp
	return c, nil
}

func (r *memCarsRepo) GetByID(ctx context.Context, id int64) (*models.Car, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *memCarsRepo) List(ctx context.Context) ([]*models.Car, error) {
	var result []*models.Car
	for id := int64(1); id < r.nextID; id++ {
		if c, ok := r.byID[id]; ok {
			cp := *c
			result = append(result, &cp)
		}
	}
	return result, nil
}

type memBookingsRepo struct {
	cars   *memCarsRepo
	users  *memUsersRepo
	rows   []*models.Booking
	nextID int64
}

func newMemBookingsRepo(cars *memCarsRepo, users *memUsersRepo) *memBookingsRepo {
	return &memBookingsRepo{cars: cars, users: users, nextID: 1}
}

func (r *memBookingsRepo) Create(ctx context.Context, b *models.Booking) (*models.Booking, error) {
	if _, ok := r.cars.byID[b.CarID]; !ok {
		return nil, common.ErrorNotFound
	}
	b.ID = r.nextID
	r.nextID++
	cp := *b
	r.rows = append(r.rows, &cp)
	return b, nil
}

func (r *memBookingsRepo) ListForUser(ctx context.Context, userID int64) ([]*models.Booking, error) {
	var result []*models.Booking
	for _, b := range r.rows {
		if b.UserID != userID {
			continue
		}
		cp := *b
		if c, ok := r.cars.byID[b.CarID]; ok {
			cp.CarName = c.Name
		}
		result = append(result, &cp)
	}
	return result, nil
}

func (r *memBookingsRepo) GetByID(ctx context.Context, userID int64, bookingID int64) (*models.Booking, error) {
	for _, b := range r.rows {
		if b.ID != bookingID || b.UserID != userID {
			continue
		}
		cp := *b
		if c, ok := r.cars.byID[b.CarID]; ok {
			cp.CarName = c.Name
		}
		return &cp, nil
	}
	return nil, common.ErrorNotFound
}

type memRepoManager struct {
	u *memUsersRepo
	c *memCarsRepo
	b *memBookingsRepo
}

func (m *memRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *memRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return m.u }
func (m *memRepoManager) Cars(db dbx.DBTX) carsrepo.Repository         { return m.c }
func (m *memRepoManager) Bookings(db dbx.DBTX) bookingsrepo.Repository { return m.b }

const testSecret = "test-secret"

type testEnv struct {
	server *Server
	mock   sqlmock.Sqlmock
	users  *memUsersRepo
	cars   *memCarsRepo
	books  *memBookingsRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	cfg := &config.Config{
		SecretKey:             testSecret,
		TokenValidityDuration: time.Hour,
		BcryptCost:            bcrypt.MinCost,
	}

	u := newMemUsersRepo()
	c := newMemCarsRepo()
	b := newMemBookingsRepo(c, u)
	rm := &memRepoManager{u: u, c: c, b: b}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	srv, err := NewServer(":0", logger,
		services.NewUserService(db, rm, cfg),
		services.NewCarService(db, rm, cfg),
		services.NewBookingService(db, rm, cfg),
		testSecret)
	if err != nil {
		t.Fatalf("NewServer error: %v", err)
	}

	return &testEnv{server: srv, mock: mock, users: u, cars: c, books: b}
}
