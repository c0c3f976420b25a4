package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/common"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/server/models"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/server/services"
)

type errorBody struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type addCarRequest struct {
	Name    string  `json:"name"`
	Details string  `json:"details"`
	Price   float64 `json:"price"`
}

type createBookingRequest struct {
	CarID      int64  `json:"car_id"`
	TravelDate string `json:"travel_date"`
}

type idResponse struct {
	ID int64 `json:"id"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type carResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Details string  `json:"details"`
	Price   float64 `json:"price"`
}

type bookingResponse struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"user_id"`
	CarID      int64  `json:"car_id"`
	TravelDate string `json:"travel_date"`
	CarName    string `json:"car_name"`
	UserName   string `json:"user_name,omitempty"`
}

func carToResponse(c *models.Car) carResponse {
	return carResponse{ID: c.ID, Name: c.Name, Details: c.Details, Price: c.Price}
}

func bookingToResponse(b *models.Booking) bookingResponse {
	return bookingResponse{
		ID:         b.ID,
		UserID:     b.UserID,
		CarID:      b.CarID,
		TravelDate: b.TravelDate.Format(services.TravelDateLayout),
		CarName:    b.CarName,
		UserName:   b.UserName,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError maps the error taxonomy to status codes in one place. Store
// failures (including duplicate email on registration) surface as a generic
// 500; the detail is logged, never sent to the client.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request"})
	case errors.Is(err, common.ErrInvalidCredentials):
		writeJSON(w, http.StatusForbidden, errorBody{Error: "invalid credentials"})
	case errors.Is(err, common.ErrorNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
	default:
		s.logger.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, common.ErrValidation)
		return
	}

	user, err := s.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "registered", "user_id", user.ID)
	writeJSON(w, http.StatusCreated, idResponse{ID: user.ID})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, common.ErrValidation)
		return
	}

	token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

func (s *Server) handleListCars(w http.ResponseWriter, r *http.Request) {
	list, err := s.cars.List(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := make([]carResponse, 0, len(list))
	for _, c := range list {
		resp = append(resp, carToResponse(c))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetCar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		s.writeError(w, r, common.ErrorNotFound)
		return
	}

	car, err := s.cars.GetByID(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, carToResponse(car))
}

func (s *Server) handleAddCar(w http.ResponseWriter, r *http.Request) {
	var req addCarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, common.ErrValidation)
		return
	}

	car, err := s.cars.Create(r.Context(), req.Name, req.Details, req.Price)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, carToResponse(car))
}

func (s *Server) handleListBookings(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "authorization required"})
		return
	}

	list, err := s.bookings.ListForUser(r.Context(), claims.UserID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := make([]bookingResponse, 0, len(list))
	for _, b := range list {
		resp = append(resp, bookingToResponse(b))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetBooking(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "authorization required"})
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		s.writeError(w, r, common.ErrorNotFound)
		return
	}

	booking, err := s.bookings.GetByID(r.Context(), claims.UserID, id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, bookingToResponse(booking))
}

func (s *Server) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "authorization required"})
		return
	}

	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, common.ErrValidation)
		return
	}

	booking, err := s.bookings.Create(r.Context(), claims.UserID, req.CarID, req.TravelDate)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "booking created", "booking_id", booking.ID, "user_id", claims.UserID)
	writeJSON(w, http.StatusCreated, idResponse{ID: booking.ID})
}
