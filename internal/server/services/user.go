// Package services contains server-side business logic. This file implements
// UserService, which handles account registration and login with session
// token issuance.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/common"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/server/auth"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/server/config"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/server/models"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: create accounts with a bcrypt-hashed password
// - Login: verify credentials and mint a session token
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	jwtSecret   []byte
	bcryptCost  int
	cfg         *config.Config
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		jwtSecret:   []byte(cfg.SecretKey),
		bcryptCost:  cfg.BcryptCost,
		cfg:         cfg,
	}
}

// Register creates a new user. The plaintext password is hashed before it
// reaches the store; the hash is never returned to callers. A duplicate
// email yields common.ErrAlreadyExists, missing fields common.ErrValidation.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, common.ErrValidation
	}

	digest, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{Name: name, Email: email, PasswordHash: digest}
	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login verifies the credentials and, on success, returns a signed session
// token. Unknown email and wrong password are deliberately merged into
// common.ErrInvalidCredentials so callers cannot tell which one failed.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", common.ErrValidation
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrInvalidCredentials
		}
		return "", common.ErrorInternal
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.cfg.TokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}
