package postgresql

import (
	"context"
	"fmt"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/identifier"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/database"
)

type counterRepositoryImpl struct {
	q database.Querier
}

func NewCounterRepository(q database.Querier) identifier.CounterRepository {
	return &counterRepositoryImpl{q: q}
}

// NextSerial implements identifier.CounterRepository. The upsert is a
// single statement, so concurrent callers each receive a distinct serial
// without an explicit lock.
func (c *counterRepositoryImpl) NextSerial(ctx context.Context, year int) (int, error) {
	q := GetQuerier(ctx, c.q)

	query := `
		INSERT INTO issuance_counters (year, current_serial)
		VALUES ($1, 1)
		ON CONFLICT (year)
		DO UPDATE SET current_serial = issuance_counters.current_serial + 1
		RETURNING current_serial
	`

	var serial int
	if err := q.QueryRow(ctx, query, year).Scan(&serial); err != nil {
		return 0, fmt.Errorf("failed to advance issuance counter: %w", err)
	}

	return serial, nil
}

// CurrentSerial implements identifier.CounterRepository. Years with no
// issuances yet report zero.
func (c *counterRepositoryImpl) CurrentSerial(ctx context.Context, year int) (int, error) {
	q := GetQuerier(ctx, c.q)

	query := `
		SELECT COALESCE(
			(SELECT current_serial FROM issuance_counters WHERE year = $1),
			0
		)
	`

	var serial int
	if err := q.QueryRow(ctx, query, year).Scan(&serial); err != nil {
		return 0, fmt.Errorf("failed to read issuance counter: %w", err)
	}

	return serial, nil
}
