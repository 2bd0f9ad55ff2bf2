package postgresql

import (
	"context"
	"fmt"

	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type txCtxKey struct{}

// txStarter begins transactions. *database.DB satisfies it through the
// embedded pool.
type txStarter interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TxManager runs functions inside database transactions. Repositories
// pick the transaction up from the context, so callers compose
// multi-step writes without threading tx handles around.
type TxManager struct {
	db txStarter
}

func NewTxManager(db txStarter) *TxManager {
	return &TxManager{db: db}
}

// WithinTransaction executes fn inside a transaction. The transaction
// commits when fn returns nil and rolls back otherwise, so either every
// write in fn lands or none do.
func (m *TxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				fmt.Printf("rollback error during panic recovery: %v\n", rbErr)
			}
			panic(p)
		}
	}()

	// Execute function with the transaction on the context
	txCtx := context.WithValue(ctx, txCtxKey{}, tx)
	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback error: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// GetQuerier returns either transaction or pool
// Used in repositories to support both transactional and non-transactional operations
func GetQuerier(ctx context.Context, q database.Querier) database.Querier {
	if tx, ok := ctx.Value(txCtxKey{}).(pgx.Tx); ok {
		return tx
	}
	return q
}
