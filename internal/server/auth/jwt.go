// Package auth implements session-token issuance/verification and password
// hashing for the booking service.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/common"
)

// Claims is the signed claim set carried by a session token: the standard
// registered claims plus the account identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
}

// GenerateToken mints an HS256 token for the given account, expiring
// validityDuration after issuance.
func GenerateToken(userID int64, email string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: userID,
		Email:  email,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetClaimsFromToken parses and verifies a token string. Malformed tokens,
// bad signatures and expired tokens all collapse to common.ErrInvalidToken
// so the caller cannot tell which check failed.
func GetClaimsFromToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
