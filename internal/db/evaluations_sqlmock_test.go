package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guardiao/gestao/internal/db"
	"github.com/guardiao/gestao/internal/models"
)

// The ledger's atomicity contract drives these: insert and score update
// commit together or not at all.

func TestApplyEvaluation_CommitsBothWrites(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO evaluations").
		WithArgs(int64(1), "falta", nil, -10, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE employees SET score").
		WithArgs(-10, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	delta, err := db.ApplyEvaluation(context.Background(), conn, models.DefaultDeltas(), 1, "falta", nil)
	require.NoError(t, err)
	assert.Equal(t, -10, delta)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyEvaluation_RollsBackWhenUpdateFails(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	boom := errors.New("connection reset")
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO evaluations").
		WithArgs(int64(1), "elogio", nil, 5, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE employees SET score").
		WithArgs(5, int64(1)).
		WillReturnError(boom)
	mock.ExpectRollback()

	_, err = db.ApplyEvaluation(context.Background(), conn, models.DefaultDeltas(), 1, "elogio", nil)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyEvaluation_MissingEmployeeRollsBack(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO evaluations").
		WithArgs(int64(99), "falta", nil, -10, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE employees SET score").
		WithArgs(-10, int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err = db.ApplyEvaluation(context.Background(), conn, models.DefaultDeltas(), 99, "falta", nil)
	assert.ErrorIs(t, err, db.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyEvaluation_UnknownCategoryAppliesZero(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO evaluations").
		WithArgs(int64(1), "ferias", nil, 0, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("UPDATE employees SET score").
		WithArgs(0, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	delta, err := db.ApplyEvaluation(context.Background(), conn, models.DefaultDeltas(), 1, "ferias", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, delta)
	assert.NoError(t, mock.ExpectationsWereMet())
}
