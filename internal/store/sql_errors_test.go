// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, Unclassified},
		{"plain error", errors.New("boom"), Unclassified},
		{"unique", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, UniqueViolation},
		{"wrapped unique", fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation}), UniqueViolation},
		{"foreign key", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, ForeignKeyViolation},
		{"deadlock", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, Transient},
		{"serialization", &pgconn.PgError{Code: pgerrcode.SerializationFailure}, Transient},
		{"syntax", &pgconn.PgError{Code: pgerrcode.SyntaxError}, Unclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, Unclassified},
		{"plain error", errors.New("boom"), Unclassified},
		{"unique", sqliteConstraintError(sqlite3.ErrConstraintUnique), UniqueViolation},
		{"primary key", sqliteConstraintError(sqlite3.ErrConstraintPrimaryKey), UniqueViolation},
		{"foreign key", sqliteConstraintError(sqlite3.ErrConstraintForeignKey), ForeignKeyViolation},
		{"wrapped foreign key", fmt.Errorf("x: %w", sqliteConstraintError(sqlite3.ErrConstraintForeignKey)), ForeignKeyViolation},
		{"not null", sqliteConstraintError(sqlite3.ErrConstraintNotNull), Unclassified},
		{"busy", sqlite3.Error{Code: sqlite3.ErrBusy}, Transient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestDB_ClassifyWithoutClassifier(t *testing.T) {
	db := &DB{}
	assert.Equal(t, Unclassified, db.classify(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{"blog.db", "blog.db?_foreign_keys=on&_busy_timeout=5000&_txlock=immediate"},
		{"file:blog.db?cache=shared", "file:blog.db?cache=shared&_foreign_keys=on&_busy_timeout=5000&_txlock=immediate"},
		{"blog.db?_busy_timeout=100", "blog.db?_busy_timeout=100&_foreign_keys=on&_txlock=immediate"},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			assert.Equal(t, tt.want, sqliteDSN(tt.dsn))
		})
	}
}

func TestDB_WithTx_BusyErrors(t *testing.T) {
	busy := sqlite3.Error{Code: sqlite3.ErrBusy}

	t.Run("statement", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		err := db.WithTx(context.Background(), func(*sql.Tx) error {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, busy)
		})

		require.ErrorIs(t, err, ErrDatabaseBusy)
		assert.ErrorIs(t, err, ErrExecutingStatement)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin().WillReturnError(busy)

		err := db.WithTx(context.Background(), func(*sql.Tx) error { return nil })

		require.ErrorIs(t, err, ErrDatabaseBusy)
		assert.ErrorIs(t, err, ErrBeginningTransaction)
	})

	t.Run("commit", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(busy)

		err := db.WithTx(context.Background(), func(*sql.Tx) error { return nil })

		require.ErrorIs(t, err, ErrDatabaseBusy)
		assert.ErrorIs(t, err, ErrCommitingTransaction)
	})

	t.Run("domain errors pass through", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		err := db.WithTx(context.Background(), func(*sql.Tx) error { return ErrPostNotFound })

		assert.Equal(t, ErrPostNotFound, err)
	})
}
