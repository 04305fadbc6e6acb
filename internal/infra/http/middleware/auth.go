package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/muraalee/almalead/internal/entity"
)

type contextKey string

const userContextKey contextKey = "user"

// TokenVerifier validates a bearer token and resolves the account behind it.
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
}

// UserFromContext extracts the authenticated attorney from the request
// context. Returns nil if the request is unauthenticated.
func UserFromContext(ctx context.Context) *entity.User {
	user, _ := ctx.Value(userContextKey).(*entity.User)
	return user
}

// RequireAuth protects routes behind bearer authentication. It reads the
// Authorization header, validates the token, loads the user, and injects it
// into the request context. Absent, malformed, tampered, and expired tokens
// are all rejected with the same 401.
func RequireAuth(auth TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := authenticateRequest(r, auth)
			if err != nil {
				w.Header().Set("WWW-Authenticate", "Bearer")
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func authenticateRequest(r *http.Request, auth TokenVerifier) (*entity.User, error) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return nil, entity.ErrInvalidCredentials
	}

	userID, err := auth.VerifyToken(token)
	if err != nil {
		return nil, err
	}

	user, err := auth.GetUserByID(r.Context(), userID)
	if err != nil {
		return nil, err
	}

	return user, nil
}
