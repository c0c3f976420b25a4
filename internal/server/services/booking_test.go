package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/common"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/server/models"
)

func TestBookingCreate_Success(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := &fakeRepoManager{
		c: &fakeCarsRepo{getOut: &models.Car{ID: 2, Name: "Civic"}},
		b: &fakeBookingsRepo{},
	}
	s := NewBookingService(db, rm, testConfig())

	b, err := s.Create(context.Background(), 1, 2, "2025-01-01")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if b.ID != 7 || b.UserID != 1 || b.CarID != 2 {
		t.Fatalf("unexpected booking: %+v", b)
	}
	want := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if !b.TravelDate.Equal(want) {
		t.Fatalf("unexpected travel date: %v", b.TravelDate)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("tx expectations: %v", err)
	}
}

func TestBookingCreate_InvalidInput(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewBookingService(db, &fakeRepoManager{}, testConfig())

	cases := []struct {
		name       string
		carID      int64
		travelDate string
	}{
		{"zero car id", 0, "2025-01-01"},
		{"negative car id", -1, "2025-01-01"},
		{"empty date", 2, ""},
		{"malformed date", 2, "01/01/2025"},
		{"impossible date", 2, "2025-13-45"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Create(context.Background(), 1, tc.carID, tc.travelDate)
			if !errors.Is(err, common.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestBookingCreate_CarAbsent_NothingPersisted(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	bookings := &fakeBookingsRepo{}
	rm := &fakeRepoManager{
		c: &fakeCarsRepo{getErr: common.ErrorNotFound},
		b: bookings,
	}
	s := NewBookingService(db, rm, testConfig())

	_, err := s.Create(context.Background(), 1, 9999, "2025-01-01")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound for absent car, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expected rollback, got: %v", err)
	}
}

func TestBookingCreate_InsertErrorRollsBack(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := &fakeRepoManager{
		c: &fakeCarsRepo{getOut: &models.Car{ID: 2}},
		b: &fakeBookingsRepo{createErr: errors.New("db down")},
	}
	s := NewBookingService(db, rm, testConfig())

	_, err := s.Create(context.Background(), 1, 2, "2025-01-01")
	if err == nil {
		t.Fatalf("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expected rollback, got: %v", err)
	}
}

func TestListForUser_EmptyIsNotAnError(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewBookingService(db, &fakeRepoManager{b: &fakeBookingsRepo{}}, testConfig())

	got, err := s.ListForUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListForUser error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %+v", got)
	}
}

func TestGetByID_NotOwnedReportsNotFound(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewBookingService(db, &fakeRepoManager{b: &fakeBookingsRepo{getErr: common.ErrorNotFound}}, testConfig())

	_, err := s.GetByID(context.Background(), 2, 7)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestGetByID_StoreErrorIsInternal(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewBookingService(db, &fakeRepoManager{b: &fakeBookingsRepo{getErr: errors.New("db down")}}, testConfig())

	_, err := s.GetByID(context.Background(), 1, 7)
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("expected ErrorInternal, got %v", err)
	}
}
