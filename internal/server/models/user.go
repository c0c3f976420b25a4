package models

import "time"

// User is a registered account. PasswordHash is a bcrypt digest and is never
// serialized back to clients.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
