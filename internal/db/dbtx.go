package db

import (
	"context"
	"database/sql"
)

// DBTX is what every SQLite*Repo constructor takes: the shared *sql.DB for
// single statements, or the *sql.Tx handed out by WithinTx.
//
// In-memory databases are pinned to one connection, so a repo must close its
// rows before issuing the next statement on the same DBTX.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)
