package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// UnitOfWork runs a use case's writes in one transaction. The callback
// receives a DBTX backed by a *sql.Tx; callers build tx-scoped repositories
// from it (repository.NewSQLiteGoalRepo(tx) and friends).
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error
}

type txNameKey struct{}

// WithTxName labels transactions started under ctx. Begin, commit and
// rollback failures are prefixed with the label.
func WithTxName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, txNameKey{}, name)
}

// TxName returns the label set by WithTxName, or "tx".
func TxName(ctx context.Context) string {
	if name, ok := ctx.Value(txNameKey{}).(string); ok && name != "" {
		return name
	}
	return "tx"
}

// SQLiteUnitOfWork implements UnitOfWork using database/sql transactions.
type SQLiteUnitOfWork struct {
	db *sql.DB
}

func NewSQLiteUnitOfWork(db *sql.DB) *SQLiteUnitOfWork {
	return &SQLiteUnitOfWork{db: db}
}

func (u *SQLiteUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	return RunTx(ctx, u.db, func(tx *sql.Tx) DBTX { return tx }, fn)
}

// RunTx begins a transaction on conn, hands fn the DBTX produced by wrap and
// commits when fn succeeds. A failed rollback is joined to fn's error so both
// stay reachable through errors.Is. A panic in fn rolls back and re-panics.
func RunTx(ctx context.Context, conn *sql.DB, wrap func(*sql.Tx) DBTX, fn func(ctx context.Context, tx DBTX) error) error {
	name := TxName(ctx)
	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: beginning transaction: %w", name, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(ctx, wrap(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("%s: rolling back: %w", name, rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: committing transaction: %w", name, err)
	}
	return nil
}
