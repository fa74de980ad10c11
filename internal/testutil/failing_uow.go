package testutil

import (
	"context"
	"database/sql"
	"strings"
	"sync/atomic"

	"github.com/alexanderramin/pathwise/internal/db"
)

// Statement prefixes for the multi-write use cases, for FailOnNthExecUoW.Match.
const (
	StmtDeleteAnswers = "DELETE FROM assessment_answers"
	StmtInsertAnswer  = "INSERT INTO assessment_answers"
	StmtUpdateGoal    = "UPDATE goals"
	StmtUpsertStats   = "INSERT INTO user_stats"
	StmtInsertStep    = "INSERT INTO roadmap_steps"
)

// FailOnNthExecUoW is a UnitOfWork that fails the Nth ExecContext call of a
// transaction with Err, counting from 1. Reads are never counted.
//
// With Match set only statements starting with Match count, so a test can
// fail "the first UPDATE goals" instead of "the third write". Names records
// the WithTxName label of every transaction it ran.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Match  string
	Err    error
	Names  []string
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	u.Names = append(u.Names, db.TxName(ctx))
	wrap := func(tx *sql.Tx) db.DBTX {
		return &failOnNthExec{DBTX: tx, failOn: u.FailOn, match: u.Match, err: u.Err}
	}
	return db.RunTx(ctx, u.DB, wrap, fn)
}

type failOnNthExec struct {
	db.DBTX
	count  atomic.Int32
	failOn int32
	match  string
	err    error
}

func (f *failOnNthExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if f.match == "" || strings.HasPrefix(strings.TrimSpace(query), f.match) {
		if f.count.Add(1) == f.failOn {
			return nil, f.err
		}
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
