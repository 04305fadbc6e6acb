package entity

import (
	"time"

	"github.com/google/uuid"
)

// LeadState is the lifecycle state of a lead. Any enumerated value may be
// set from any other value; there is no forward-only workflow.
type LeadState string

const (
	LeadStatePending    LeadState = "PENDING"
	LeadStateReachedOut LeadState = "REACHED_OUT"
)

// ParseLeadState validates a raw state value against the enum.
func ParseLeadState(s string) (LeadState, bool) {
	switch LeadState(s) {
	case LeadStatePending, LeadStateReachedOut:
		return LeadState(s), true
	}
	return "", false
}

type Lead struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	ResumeURL string    `json:"resume_url"`
	State     LeadState `json:"state"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewLead builds a freshly submitted lead in state PENDING.
func NewLead(firstName, lastName, email, resumeURL string) *Lead {
	now := time.Now().UTC()
	return &Lead{
		ID:        uuid.New().String(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		ResumeURL: resumeURL,
		State:     LeadStatePending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
