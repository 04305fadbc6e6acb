package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/muraalee/almalead/internal/entity"
)

// MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthenticateSuccess(t *testing.T) {
	ctx := context.Background()

	user := &entity.User{
		ID:             "user-1",
		Email:          "attorney@firm.example",
		HashedPassword: hashPassword(t, "s3cret"),
	}

	repo := new(MockUserRepository)
	repo.On("FindByEmail", ctx, "attorney@firm.example").Return(user, nil)

	svc := NewAuthService(repo, "signing-secret", time.Hour)

	got, err := svc.Authenticate(ctx, "attorney@firm.example", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.ID)
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()

	user := &entity.User{
		ID:             "user-1",
		Email:          "attorney@firm.example",
		HashedPassword: hashPassword(t, "s3cret"),
	}

	repo := new(MockUserRepository)
	repo.On("FindByEmail", ctx, "attorney@firm.example").Return(user, nil)
	repo.On("FindByEmail", ctx, "nobody@firm.example").Return(nil, entity.ErrNotFound)

	svc := NewAuthService(repo, "signing-secret", time.Hour)

	_, wrongPassword := svc.Authenticate(ctx, "attorney@firm.example", "wrong")
	_, unknownEmail := svc.Authenticate(ctx, "nobody@firm.example", "s3cret")

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.Equal(t, wrongPassword, unknownEmail, "both failures must look identical")
	assert.ErrorIs(t, wrongPassword, entity.ErrInvalidCredentials)
}

func TestIssueAndVerifyTokenRoundTrip(t *testing.T) {
	svc := NewAuthService(new(MockUserRepository), "signing-secret", time.Hour)

	user := &entity.User{ID: "user-1", Email: "attorney@firm.example"}

	token, err := svc.IssueToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sub, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)
}

func TestVerifyTokenRejectsTampering(t *testing.T) {
	svc := NewAuthService(new(MockUserRepository), "signing-secret", time.Hour)

	token, err := svc.IssueToken(&entity.User{ID: "user-1", Email: "a@b.c"})
	require.NoError(t, err)

	_, err = svc.VerifyToken(token + "x")
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)

	other := NewAuthService(new(MockUserRepository), "different-secret", time.Hour)
	_, err = other.VerifyToken(token)
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	svc := NewAuthService(new(MockUserRepository), "signing-secret", -time.Minute)

	token, err := svc.IssueToken(&entity.User{ID: "user-1", Email: "a@b.c"})
	require.NoError(t, err)

	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestSeedAttorneyCreatesOnce(t *testing.T) {
	ctx := context.Background()

	repo := new(MockUserRepository)
	repo.On("FindByEmail", ctx, "attorney@firm.example").Return(nil, entity.ErrNotFound)
	repo.On("Create", ctx, mock.Anything).Return(nil)

	svc := NewAuthService(repo, "signing-secret", time.Hour)

	user, err := svc.SeedAttorney(ctx, "attorney@firm.example", "s3cret", "John", "Attorney")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte("s3cret")))
	repo.AssertExpectations(t)
}

func TestSeedAttorneySkipsExisting(t *testing.T) {
	ctx := context.Background()

	existing := &entity.User{ID: "user-1", Email: "attorney@firm.example"}
	repo := new(MockUserRepository)
	repo.On("FindByEmail", ctx, "attorney@firm.example").Return(existing, nil)

	svc := NewAuthService(repo, "signing-secret", time.Hour)

	user, err := svc.SeedAttorney(ctx, "attorney@firm.example", "s3cret", "John", "Attorney")
	require.NoError(t, err)
	assert.Equal(t, existing, user)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
