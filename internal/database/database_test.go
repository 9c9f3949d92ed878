package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	return &Repository{Db: db}, mock
}

func TestRepository_Ping(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectPing()
	assert.NoError(t, repo.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	assert.Error(t, repo.Ping(context.Background()))
}

func TestRepository_MigrateFailure(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS doctor").WillReturnError(errors.New("permission denied"))

	_, err := NewDoctorStore(context.Background(), repo)
	assert.ErrorContains(t, err, "failed to create doctor table")
}
