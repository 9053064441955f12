package repository_test

import (
	"context"
	"lodging/infras/otel/mocks"
	"lodging/infras/postgres"
	"lodging/internal/domains/user/repository"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (repository.User, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	conn := sqlx.NewDb(db, "postgres")

	return repository.New(&postgres.Connection{Read: conn, Write: conn}, mocks.NewOtel()), mock
}

func TestUserRepository_GetByUsername(t *testing.T) {
	now := time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		repo, mock := setup(t)

		rows := sqlmock.NewRows([]string{
			"id", "username", "password", "last_login", "created_at", "modified_at", "created_by", "modified_by",
		}).AddRow("9f1c", "admin", "hash", nil, now, now, "system", "system")

		mock.ExpectPrepare(`SELECT (.+) FROM users`).
			ExpectQuery().
			WithArgs("admin").
			WillReturnRows(rows)

		user, err := repo.GetByUsername(context.Background(), "admin")

		require.NoError(t, err)
		assert.Equal(t, "9f1c", user.ID)
		assert.Equal(t, "hash", user.Password)
		assert.Nil(t, user.LastLogin)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := setup(t)

		mock.ExpectPrepare(`SELECT (.+) FROM users`).
			ExpectQuery().
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		user, err := repo.GetByUsername(context.Background(), "ghost")

		require.NoError(t, err)
		assert.Empty(t, user.ID)
	})
}

func TestUsernameFilter(t *testing.T) {
	group := repository.UsernameFilter("admin")

	where, args := group.GetWhereClause()

	assert.Equal(t, "(users.username = :username)", where)
	assert.Equal(t, map[string]any{"username": "admin"}, args)
}
