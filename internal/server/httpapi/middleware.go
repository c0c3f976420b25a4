package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/common"
	"github.com/niyomugenga22rp09033/car-ticket-booking-api/internal/server/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

const bearerPrefix = "Bearer "

// bearerToken extracts the bearer credential from the Authorization header.
// Returns common.ErrNoCredential when no usable credential was presented.
func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, bearerPrefix) {
		return "", common.ErrNoCredential
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return "", common.ErrNoCredential
	}
	return token, nil
}

// authMiddleware is the auth gate for protected routes. A missing credential
// is 401; a credential that is present but does not verify is 403. The 403
// for bad tokens mirrors the existing client contract and must not be
// changed to 401. Verified claims are attached to the request context;
// handlers never re-derive identity from the request body.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r)
		if err != nil {
			writeJSON(w, http.StatusUnauthorized, errorBody{Error: "authorization required"})
			return
		}

		claims, err := auth.GetClaimsFromToken(token, s.jwtSecret)
		if err != nil {
			writeJSON(w, http.StatusForbidden, errorBody{Error: "invalid or expired token"})
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// claimsFromContext returns the verified claims attached by the auth gate.
func claimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}

// requestLogMiddleware tags every request with an id and logs it.
func (s *Server) requestLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		s.logger.Info(r.Context(), "request",
			"request_id", requestID, "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
