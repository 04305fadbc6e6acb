package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an attorney account. Accounts are provisioned by seeding only;
// there is no self-service signup.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func NewUser(email, hashedPassword, firstName, lastName string) *User {
	now := time.Now().UTC()
	return &User{
		ID:             uuid.New().String(),
		Email:          email,
		HashedPassword: hashedPassword,
		FirstName:      firstName,
		LastName:       lastName,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
