// Package httpapi exposes the booking service over HTTP: routing, the
// bearer-token auth gate, JSON handlers, and the single place where the
// error taxonomy is mapped to status codes.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/logging"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/server/services"
)

type Server struct {
	address   string
	logger    logging.Logger
	users     *services.UserService
	cars      *services.CarService
	bookings  *services.BookingService
	jwtSecret []byte
}

func NewServer(a string, l logging.Logger, us *services.UserService, cs *services.CarService, bs *services.BookingService, secretKey string) (*Server, error) {
	return &Server{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		cars:      cs,
		bookings:  bs,
		jwtSecret: []byte(secretKey),
	}, nil
}

// Router builds the route table. Registration, login and the catalog are
// open; everything under /bookings sits behind the auth gate.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.requestLogMiddleware)

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	r.HandleFunc("/register", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)

	r.HandleFunc("/cars", s.handleListCars).Methods(http.MethodGet)
	r.HandleFunc("/cars", s.handleAddCar).Methods(http.MethodPost)
	r.HandleFunc("/cars/{id}", s.handleGetCar).Methods(http.MethodGet)

	protected := r.PathPrefix("/bookings").Subrouter()
	protected.Use(s.authMiddleware)
	protected.HandleFunc("", s.handleListBookings).Methods(http.MethodGet)
	protected.HandleFunc("", s.handleCreateBooking).Methods(http.MethodPost)
	protected.HandleFunc("/{id}", s.handleGetBooking).Methods(http.MethodGet)

	return r
}

// Run starts the HTTP server and shuts it down gracefully when ctx is
// cancelled.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
