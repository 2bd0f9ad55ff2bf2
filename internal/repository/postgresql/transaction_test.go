package postgresql

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxManager_CommitsOnSuccess(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	tm := NewTxManager(mock)

	var sawTx bool
	err = tm.WithinTransaction(context.Background(), func(txCtx context.Context) error {
		_, sawTx = txCtx.Value(txCtxKey{}).(pgx.Tx)
		return nil
	})

	assert.NoError(t, err)
	assert.True(t, sawTx, "transaction should be on the callback context")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTxManager_RollsBackOnError(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	tm := NewTxManager(mock)

	wantErr := errors.New("write failed")
	err = tm.WithinTransaction(context.Background(), func(txCtx context.Context) error {
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetQuerier_FallsBackToPool(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	q := GetQuerier(context.Background(), mock)

	assert.Equal(t, mock, q)
}
