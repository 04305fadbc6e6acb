package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/muraalee/almalead/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, first_name, last_name, email, resume_url, state, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.FirstName,
		lead.LastName,
		lead.Email,
		lead.ResumeURL,
		lead.State,
		lead.CreatedAt,
		lead.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}

	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `
		SELECT id, first_name, last_name, email, resume_url, state, created_at, updated_at
		FROM leads
		WHERE id = $1
	`

	lead := &entity.Lead{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&lead.ID,
		&lead.FirstName,
		&lead.LastName,
		&lead.Email,
		&lead.ResumeURL,
		&lead.State,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("select lead: %w", err)
	}

	return lead, nil
}

// FindAll returns one page ordered by created_at descending plus the total
// count of the whole filtered set, independent of the page window.
func (r *LeadRepository) FindAll(ctx context.Context, skip, limit int, state *entity.LeadState) ([]*entity.Lead, int, error) {
	countQuery := `SELECT COUNT(*) FROM leads`
	listQuery := `
		SELECT id, first_name, last_name, email, resume_url, state, created_at, updated_at
		FROM leads
	`

	var countArgs, listArgs []any
	if state != nil {
		countQuery += ` WHERE state = $1`
		listQuery += ` WHERE state = $1`
		countArgs = append(countArgs, *state)
		listArgs = append(listArgs, *state)
	}
	listQuery += fmt.Sprintf(" ORDER BY created_at DESC OFFSET $%d LIMIT $%d", len(listArgs)+1, len(listArgs)+2)
	listArgs = append(listArgs, skip, limit)

	var total int
	if err := r.DB.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count leads: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("select leads: %w", err)
	}
	defer rows.Close()

	leads := []*entity.Lead{}
	for rows.Next() {
		lead := &entity.Lead{}
		if err := rows.Scan(
			&lead.ID,
			&lead.FirstName,
			&lead.LastName,
			&lead.Email,
			&lead.ResumeURL,
			&lead.State,
			&lead.CreatedAt,
			&lead.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("scan lead: %w", err)
		}
		leads = append(leads, lead)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate leads: %w", err)
	}

	return leads, total, nil
}

// UpdateState overwrites the state and refreshes updated_at in a single
// statement. Concurrent updates to the same lead are last-writer-wins.
func (r *LeadRepository) UpdateState(ctx context.Context, id string, state entity.LeadState) (*entity.Lead, error) {
	query := `
		UPDATE leads
		SET state = $2, updated_at = clock_timestamp()
		WHERE id = $1
		RETURNING id, first_name, last_name, email, resume_url, state, created_at, updated_at
	`

	lead := &entity.Lead{}
	err := r.DB.QueryRowContext(ctx, query, id, state).Scan(
		&lead.ID,
		&lead.FirstName,
		&lead.LastName,
		&lead.Email,
		&lead.ResumeURL,
		&lead.State,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrNotFound
		}
		return nil, fmt.Errorf("update lead state: %w", err)
	}

	return lead, nil
}
