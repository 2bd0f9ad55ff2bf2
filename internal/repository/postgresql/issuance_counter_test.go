package postgresql

import (
	"context"
	"regexp"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterRepository_NextSerial_UpsertsAtomically(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCounterRepository(mock)

	query := regexp.QuoteMeta("ON CONFLICT (year) DO UPDATE SET current_serial = issuance_counters.current_serial + 1")

	mock.ExpectQuery(query).WithArgs(2025).
		WillReturnRows(pgxmock.NewRows([]string{"current_serial"}).AddRow(1))
	mock.ExpectQuery(query).WithArgs(2025).
		WillReturnRows(pgxmock.NewRows([]string{"current_serial"}).AddRow(2))

	first, err := repo.NextSerial(context.Background(), 2025)
	require.NoError(t, err)

	second, err := repo.NextSerial(context.Background(), 2025)
	require.NoError(t, err)

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCounterRepository_CurrentSerial_ZeroWhenUnseen(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCounterRepository(mock)

	mock.ExpectQuery("SELECT COALESCE").WithArgs(2031).
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(0))

	serial, err := repo.CurrentSerial(context.Background(), 2031)

	require.NoError(t, err)
	assert.Equal(t, 0, serial)
	assert.NoError(t, mock.ExpectationsWereMet())
}
