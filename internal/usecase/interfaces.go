package usecase

import (
	"context"
	"io"

	"github.com/muraalee/almalead/internal/entity"
)

type CreateLeadInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	FindAll(ctx context.Context, skip, limit int, state *entity.LeadState) ([]*entity.Lead, int, error)
	UpdateState(ctx context.Context, id string, state entity.LeadState) (*entity.Lead, error)
}

type UserRepositoryInterface interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// FileStorage is the object-storage capability the lead service depends on.
// Upload must size the stream itself; Delete is best-effort and reports
// failure as false rather than an error.
type FileStorage interface {
	Upload(ctx context.Context, r io.Reader, key string) (string, error)
	FileURL(key string) string
	Delete(ctx context.Context, key string) bool
}

// EmailNotifier sends the two lead-intake notifications. Callers treat every
// send as best-effort.
type EmailNotifier interface {
	SendProspectConfirmation(to, firstName string) error
	SendAttorneyNotification(to, prospectFirstName, prospectLastName, prospectEmail, leadID string) error
}
