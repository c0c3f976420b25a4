package models

import "time"

// Booking ties a user to a car on a calendar date. TravelDate carries no
// time-of-day or zone semantics; only the date part is meaningful.
type Booking struct {
	ID         int64
	UserID     int64
	CarID      int64
	TravelDate time.Time

	// Joined fields, populated by read queries only.
	CarName  string
	UserName string
}
