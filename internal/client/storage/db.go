// Package storage opens the persistent record store selected by configuration.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/gophdiary/internal/client/migrations"
	"github.com/dmitrijs2005/gophdiary/internal/client/repositories/kv"
	"github.com/dmitrijs2005/gophdiary/internal/filex"
	"github.com/pressly/goose/v3"
	"github.com/spf13/afero"

	_ "modernc.org/sqlite"
)

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

// Store bundles the record repository with whatever needs closing.
type Store struct {
	Records kv.Repository
	closer  io.Closer
}

func (s *Store) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the SQLite file at dsn and
// brings its schema up to date.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	if err := filex.EnsureParentDir(dsn); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// single writer; sqlite serialises anyway
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Open returns the store for backend: a migrated SQLite database at dsn,
// or a directory of JSON records at dataDir on the OS filesystem.
func Open(ctx context.Context, backend, dsn, dataDir string) (*Store, error) {
	switch backend {
	case BackendSQLite, "":
		db, err := InitDatabase(ctx, dsn)
		if err != nil {
			return nil, fmt.Errorf("error initializing database: %w", err)
		}
		return &Store{Records: kv.NewSQLiteRepository(db), closer: db}, nil
	case BackendFile:
		root, err := filex.EnsureDir(dataDir)
		if err != nil {
			return nil, fmt.Errorf("error preparing data directory: %w", err)
		}
		return &Store{Records: kv.NewFileRepository(afero.NewOsFs(), root)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
