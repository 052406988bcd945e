// Package sqlite implements storage.Storage on a single SQLite file for
// deployments without a PostgreSQL server. Statements are built with goqu's
// sqlite3 dialect, except the upserts that read a counter back: the dialect
// cannot render RETURNING, so those are written out by hand.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"numberbot/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	_ "github.com/mattn/go-sqlite3"
)

const dialect = "sqlite3"

// DB is the subset of database/sql satisfied by both *sql.DB and *sql.Tx.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Builder is satisfied by goqu's database and transaction handles.
type Builder interface {
	From(table ...interface{}) *goqu.SelectDataset
	Insert(table interface{}) *goqu.InsertDataset
	Update(table interface{}) *goqu.UpdateDataset
	Delete(table interface{}) *goqu.DeleteDataset
}

// SQLite implements storage.Storage. DB is a *sql.DB, or a *sql.Tx for
// handles returned by Begin. Builder runs on the same handle.
type SQLite struct {
	DB      DB
	Builder Builder
}

// New opens (creating if needed) the database at path. The connection runs in
// WAL mode with a busy timeout so concurrent handlers wait instead of failing
// with "database is locked", and write transactions take the lock up front.
func New(path string) (*SQLite, error) {
	params := url.Values{}
	params.Set("_journal_mode", "WAL")
	params.Set("_synchronous", "NORMAL")
	params.Set("_busy_timeout", "5000")
	params.Set("_foreign_keys", "on")
	params.Set("_txlock", "immediate")

	db, err := sql.Open("sqlite3", "file:"+path+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("could not connect to sqlite database: %w", err)
	}

	return &SQLite{DB: db, Builder: goqu.Dialect(dialect).DB(db)}, nil
}

// Ping checks that the database file is usable.
func (s *SQLite) Ping(ctx context.Context) error {
	db, ok := s.DB.(*sql.DB)
	if !ok {
		return storage.ErrAlreadyInTx
	}

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("could not ping sqlite: %w", err)
	}

	return nil
}

func (s *SQLite) Close() error {
	if db, ok := s.DB.(*sql.DB); ok {
		if err := db.Close(); err != nil {
			return fmt.Errorf("could not close sqlite database: %w", err)
		}
	}

	return nil
}

func (s *SQLite) Begin(ctx context.Context) (storage.TxStorage, error) {
	db, ok := s.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &SQLite{DB: tx, Builder: goqu.NewTx(dialect, tx)}, nil
}

func (s *SQLite) Commit() error {
	tx, ok := s.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

func (s *SQLite) Rollback() error {
	tx, ok := s.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}

	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("could not rollback tx: %w", err)
	}

	return nil
}

func (s *SQLite) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := s.Begin(ctx)
	if err != nil {
		return err
	}

	if err := cb(tx); err != nil {
		_ = tx.Rollback()

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

var (
	_ storage.Storage   = (*SQLite)(nil)
	_ storage.TxStorage = (*SQLite)(nil)
)
