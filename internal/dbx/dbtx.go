// Package dbx holds the small database plumbing the repositories share: the
// DBTX interface that lets the same query code run on a connection pool or
// inside a transaction, and a transaction wrapper.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is the slice of database/sql the repositories need. *sql.DB and
// *sql.Tx both implement it, so a repository bound to a DBTX works unchanged
// inside WithTx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx opens a transaction and hands it to fn as a DBTX. The transaction
// commits when fn returns nil and rolls back when it returns an error or
// panics; a panic is rolled back and then rethrown.
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}
