package usecase

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/muraalee/almalead/internal/entity"
)

// LeadService orchestrates object storage, the lead store, and the email
// notifier for lead intake and the attorney-facing read/update operations.
type LeadService struct {
	Leads         LeadRepositoryInterface
	Storage       FileStorage
	Notifier      EmailNotifier
	AttorneyEmail string
}

func NewLeadService(
	leads LeadRepositoryInterface,
	storage FileStorage,
	notifier EmailNotifier,
	attorneyEmail string,
) *LeadService {
	return &LeadService{
		Leads:         leads,
		Storage:       storage,
		Notifier:      notifier,
		AttorneyEmail: attorneyEmail,
	}
}

// CreateLead uploads the resume, persists the lead in state PENDING, and
// sends the prospect and attorney notifications. The upload and the insert
// are hard dependencies; notification failures are logged and swallowed, so
// a persisted lead is always returned once the insert commits.
func (s *LeadService) CreateLead(ctx context.Context, input CreateLeadInput, resume io.Reader, filename string) (*entity.Lead, error) {
	if errs := ValidateCreateLeadInput(input); len(errs) > 0 {
		return nil, errs
	}

	// A fresh UUID plus the original extension; filename reuse can never
	// collide with an existing object.
	key := uuid.New().String() + strings.ToLower(filepath.Ext(filename))

	resumeURL, err := s.Storage.Upload(ctx, resume, key)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "STORAGE_ERROR",
			Message: "failed to store resume: " + err.Error(),
			Err:     err,
		}
	}

	lead := entity.NewLead(input.FirstName, input.LastName, input.Email, resumeURL)

	if err := s.Leads.Create(ctx, lead); err != nil {
		// The orphaned object is useless without a row; removal is
		// best-effort and the insert failure is what gets reported.
		s.Storage.Delete(ctx, key)
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist lead: " + err.Error(),
			Err:     err,
		}
	}

	if err := s.Notifier.SendProspectConfirmation(lead.Email, lead.FirstName); err != nil {
		logrus.WithFields(logrus.Fields{
			"lead_id":   lead.ID,
			"recipient": "prospect",
		}).WithError(err).Warn("notification failed")
	}

	if err := s.Notifier.SendAttorneyNotification(
		s.AttorneyEmail, lead.FirstName, lead.LastName, lead.Email, lead.ID,
	); err != nil {
		logrus.WithFields(logrus.Fields{
			"lead_id":   lead.ID,
			"recipient": "attorney",
		}).WithError(err).Warn("notification failed")
	}

	return lead, nil
}

// GetLead returns the lead or entity.ErrNotFound.
func (s *LeadService) GetLead(ctx context.Context, id string) (*entity.Lead, error) {
	return s.Leads.FindByID(ctx, id)
}

// ListLeads returns one page of leads ordered by creation time descending,
// optionally filtered to a single state, plus the total count of the whole
// filtered set.
func (s *LeadService) ListLeads(ctx context.Context, skip, limit int, state *entity.LeadState) ([]*entity.Lead, int, error) {
	return s.Leads.FindAll(ctx, skip, limit, state)
}

// UpdateLeadState overwrites the state and refreshes updated_at. Any
// enumerated value is reachable from any other; there is no transition
// validation beyond enum membership, which the caller checks.
func (s *LeadService) UpdateLeadState(ctx context.Context, id string, state entity.LeadState) (*entity.Lead, error) {
	return s.Leads.UpdateState(ctx, id, state)
}
