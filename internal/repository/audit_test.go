package repository

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

func TestLogEvent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO audit_events \(kind, subject, meta\)`).
		WithArgs("login", "admin", []byte(`{"outcome":"success"}`)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := NewAuditRepo(mock)
	err = repo.LogEvent(context.Background(), "login", "admin", map[string]any{"outcome": "success"})
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogEvent_NilMeta(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO audit_events \(kind, subject, meta\)`).
		WithArgs("patient_created", "P-7", []byte(`{}`)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := NewAuditRepo(mock)
	err = repo.LogEvent(context.Background(), "patient_created", "P-7", nil)
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
