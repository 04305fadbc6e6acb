package database

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muraalee/almalead/internal/entity"
)

var leadColumns = []string{"id", "first_name", "last_name", "email", "resume_url", "state", "created_at", "updated_at"}

func leadRow(lead *entity.Lead) *sqlmock.Rows {
	return sqlmock.NewRows(leadColumns).AddRow(
		lead.ID, lead.FirstName, lead.LastName, lead.Email,
		lead.ResumeURL, lead.State, lead.CreatedAt, lead.UpdatedAt,
	)
}

func newLeadRepo(t *testing.T) (*LeadRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewLeadRepository(db), mock
}

func TestLeadRepositoryCreate(t *testing.T) {
	repo, mock := newLeadRepo(t)

	lead := entity.NewLead("John", "Doe", "john@x.com", "http://minio.local/resumes/k.pdf")

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO leads")).
		WithArgs(lead.ID, "John", "Doe", "john@x.com", "http://minio.local/resumes/k.pdf",
			entity.LeadStatePending, lead.CreatedAt, lead.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), lead)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadRepositoryFindByID(t *testing.T) {
	repo, mock := newLeadRepo(t)

	want := entity.NewLead("John", "Doe", "john@x.com", "http://minio.local/resumes/k.pdf")

	mock.ExpectQuery(regexp.QuoteMeta("FROM leads")).
		WithArgs(want.ID).
		WillReturnRows(leadRow(want))

	got, err := repo.FindByID(context.Background(), want.ID)
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, entity.LeadStatePending, got.State)
}

func TestLeadRepositoryFindByIDNotFound(t *testing.T) {
	repo, mock := newLeadRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM leads")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestLeadRepositoryFindAllWithStateFilter(t *testing.T) {
	repo, mock := newLeadRepo(t)

	state := entity.LeadStateReachedOut
	lead := entity.NewLead("John", "Doe", "john@x.com", "http://minio.local/resumes/k.pdf")
	lead.State = state

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM leads WHERE state = $1")).
		WithArgs(state).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	mock.ExpectQuery(regexp.QuoteMeta("WHERE state = $1 ORDER BY created_at DESC OFFSET $2 LIMIT $3")).
		WithArgs(state, 10, 5).
		WillReturnRows(leadRow(lead))

	leads, total, err := repo.FindAll(context.Background(), 10, 5, &state)
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	require.Len(t, leads, 1)
	assert.Equal(t, state, leads[0].State)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLeadRepositoryFindAllUnfiltered(t *testing.T) {
	repo, mock := newLeadRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM leads")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC OFFSET $1 LIMIT $2")).
		WithArgs(0, 100).
		WillReturnRows(sqlmock.NewRows(leadColumns))

	leads, total, err := repo.FindAll(context.Background(), 0, 100, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, leads)
}

func TestLeadRepositoryUpdateState(t *testing.T) {
	repo, mock := newLeadRepo(t)

	created := time.Now().UTC().Add(-time.Hour)
	updated := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE leads")).
		WithArgs("lead-1", entity.LeadStateReachedOut).
		WillReturnRows(sqlmock.NewRows(leadColumns).AddRow(
			"lead-1", "John", "Doe", "john@x.com", "http://minio.local/resumes/k.pdf",
			entity.LeadStateReachedOut, created, updated,
		))

	lead, err := repo.UpdateState(context.Background(), "lead-1", entity.LeadStateReachedOut)
	require.NoError(t, err)
	assert.Equal(t, entity.LeadStateReachedOut, lead.State)
	assert.True(t, lead.UpdatedAt.After(lead.CreatedAt))
}

func TestLeadRepositoryUpdateStateNotFound(t *testing.T) {
	repo, mock := newLeadRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE leads")).
		WithArgs("missing", entity.LeadStatePending).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateState(context.Background(), "missing", entity.LeadStatePending)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}
