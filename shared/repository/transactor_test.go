package repository_test

import (
	"context"
	"errors"
	"lodging/infras/otel/mocks"
	"lodging/infras/postgres"
	"lodging/shared/repository"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	conn := sqlx.NewDb(db, "postgres")

	return &postgres.Connection{Read: conn, Write: conn}, mock
}

func TestTransactor_WithTx(t *testing.T) {
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		conn, mock := newConnection(t)
		tr := repository.NewTransactor(conn, mocks.NewOtel())

		mock.ExpectBegin()
		mock.ExpectExec("SAVEPOINT daily_receipt").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("ROLLBACK TO SAVEPOINT daily_receipt").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := tr.WithTx(ctx, func(tx *sqlx.Tx) error {
			require.NoError(t, tr.Savepoint(ctx, tx, "daily_receipt"))

			return tr.RollbackToSavepoint(ctx, tx, "daily_receipt")
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on error", func(t *testing.T) {
		conn, mock := newConnection(t)
		tr := repository.NewTransactor(conn, mocks.NewOtel())

		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := errors.New("boom")
		err := tr.WithTx(ctx, func(_ *sqlx.Tx) error { return boom })

		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects unsafe savepoint names", func(t *testing.T) {
		conn, mock := newConnection(t)
		tr := repository.NewTransactor(conn, mocks.NewOtel())

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := tr.WithTx(ctx, func(tx *sqlx.Tx) error {
			return tr.Savepoint(ctx, tx, "x; DROP TABLE tourists")
		})

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
