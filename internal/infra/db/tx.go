package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TxManager manages database transactions
type TxManager interface {
	// WithTx executes fn within a transaction
	// If fn returns an error, the transaction is rolled back
	// Otherwise, the transaction is committed
	WithTx(ctx context.Context, fn func(context.Context) error) error

	// WithAdvisoryLock executes fn within a transaction that first takes
	// a PostgreSQL transaction-scoped advisory lock on lockKey. The lock
	// is released automatically at commit or rollback, implementing the
	// "at most one in-flight generation per team" contract: a concurrent
	// caller blocks on pg_advisory_xact_lock rather than racing on ledger
	// deltas.
	WithAdvisoryLock(ctx context.Context, lockKey int64, fn func(context.Context) error) error
}

// PgxTxManager is a PostgreSQL transaction manager using pgx
type PgxTxManager struct {
	pool *pgxpool.Pool
}

// NewPgxTxManager creates a new PgxTxManager
func NewPgxTxManager(pool *pgxpool.Pool) *PgxTxManager {
	return &PgxTxManager{pool: pool}
}

// txKey is the context key for storing the transaction
type txKeyType struct{}

var txKey = txKeyType{}

// WithTx executes fn within a transaction
func (m *PgxTxManager) WithTx(ctx context.Context, fn func(context.Context) error) error {
	// Begin transaction
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return err
	}

	// Store transaction in context
	txCtx := context.WithValue(ctx, txKey, tx)

	// Execute function
	err = fn(txCtx)
	if err != nil {
		// Rollback on error
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return rbErr
		}
		return err
	}

	// Commit on success
	return tx.Commit(ctx)
}

// WithAdvisoryLock begins a transaction, takes a transaction-scoped
// advisory lock on lockKey, then runs fn. pg_advisory_xact_lock blocks
// until the lock is free rather than failing immediately, so a caller
// that wants ConcurrentGeneration's "retryable" semantics should apply
// its own statement_timeout; the lock itself always releases at
// commit/rollback with no explicit unlock path needed.
func (m *PgxTxManager) WithAdvisoryLock(ctx context.Context, lockKey int64, fn func(context.Context) error) error {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", lockKey); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	txCtx := context.WithValue(ctx, txKey, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return rbErr
		}
		return err
	}

	return tx.Commit(ctx)
}

// GetTx retrieves the transaction from context, or returns the pool if no transaction exists
// This is a helper for Repository implementations
func GetTx(ctx context.Context, pool *pgxpool.Pool) pgxQuery {
	if tx, ok := ctx.Value(txKey).(pgx.Tx); ok {
		return tx
	}
	return pool
}

// pgxQuery is an interface that both pgxpool.Pool and pgx.Tx implement
// This allows repositories to work with either a pool or a transaction
type pgxQuery interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}
