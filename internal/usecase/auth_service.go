package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/muraalee/almalead/internal/entity"
)

// AuthService verifies attorney credentials and issues bearer tokens.
type AuthService struct {
	Users      UserRepositoryInterface
	jwtSecret  []byte
	expiration time.Duration
}

func NewAuthService(users UserRepositoryInterface, jwtSecret string, expiration time.Duration) *AuthService {
	return &AuthService{
		Users:      users,
		jwtSecret:  []byte(jwtSecret),
		expiration: expiration,
	}
}

// Authenticate verifies email and password. An unknown email and a wrong
// password fail with the same error so a caller cannot enumerate accounts.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, entity.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, entity.ErrInvalidCredentials
	}

	return user, nil
}

// IssueToken signs a time-limited HS256 token carrying the user's identity.
func (s *AuthService) IssueToken(user *entity.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.expiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// VerifyToken parses and validates a bearer token and returns the user ID
// from the sub claim. Every failure mode is reported as the same error.
func (s *AuthService) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", entity.ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", entity.ErrInvalidCredentials
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", entity.ErrInvalidCredentials
	}

	return sub, nil
}

// GetUserByID loads a user for the authentication guard.
func (s *AuthService) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	return s.Users.FindByID(ctx, id)
}

// SeedAttorney provisions the configured attorney account if the email does
// not exist yet. It runs at startup and stands in for an admin signup flow.
func (s *AuthService) SeedAttorney(ctx context.Context, email, password, firstName, lastName string) (*entity.User, error) {
	if email == "" || password == "" {
		return nil, nil
	}

	existing, err := s.Users.FindByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, entity.ErrNotFound) {
		return nil, fmt.Errorf("lookup attorney: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := entity.NewUser(email, string(hash), firstName, lastName)
	if err := s.Users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create attorney: %w", err)
	}

	return user, nil
}
