// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/migrations"
)

// DB is a database handle together with the dialect specific pieces every
// repository needs: a squirrel statement builder with the right placeholder
// format and an error classifier for constraint violations.
type DB struct {
	*sql.DB
	builder         sq.StatementBuilderType
	errorClassifier ErrorClassifier
	dialect         string
	logger          *logger.Logger
}

// NewConnect opens the backend named by cfg.DSN. "postgres://" and
// "postgresql://" URLs open PostgreSQL through pgx; anything else is an
// SQLite database file.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case cfg.DSN == "":
		return nil, ErrUnsupportedDSN
	case strings.HasPrefix(cfg.DSN, "postgres://"), strings.HasPrefix(cfg.DSN, "postgresql://"):
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return NewConnectSQLite(ctx, cfg, log)
	}
}

// Migrate applies the embedded schema of the DB's dialect.
func (db *DB) Migrate() error {
	var l goose.Logger
	if db.logger != nil {
		l = db.logger
	}
	return migrations.Migrate(db.DB, db.dialect, l)
}

// WithTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise. Errors the dialect classifies as
// [Transient] are additionally wrapped with [ErrDatabaseBusy].
func (db *DB) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return db.markBusy(fmt.Errorf("%w: %w", ErrBeginningTransaction, err))
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return db.markBusy(err)
	}

	if err = tx.Commit(); err != nil {
		return db.markBusy(fmt.Errorf("%w: %w", ErrCommitingTransaction, err))
	}

	return nil
}

func (db *DB) markBusy(err error) error {
	if db.classify(err) == Transient {
		return fmt.Errorf("%w: %w", ErrDatabaseBusy, err)
	}
	return err
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassifier == nil {
		return Unclassified
	}
	return db.errorClassifier.Classify(err)
}
