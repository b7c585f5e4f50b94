// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when registering an account whose
	// email is already taken, either by the pre-insert check or by the
	// UNIQUE index.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when a lookup by email or ID matches no
	// account, or when a post references a user that does not exist.
	ErrUserNotFound = errors.New("user was not found")

	// ErrPostNotFound is returned when a post lookup, update or delete
	// targets an ID that does not exist, and when a comment is added to a
	// missing post.
	ErrPostNotFound = errors.New("post was not found")

	// ErrSessionNotFound is returned when a session ID has no row.
	ErrSessionNotFound = errors.New("session was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrDatabaseBusy wraps lock contention, serialization and connection
	// failures of a transaction. The request is not retried.
	ErrDatabaseBusy = errors.New("database is busy")

	// ErrUnsupportedDSN is returned when the storage DSN names no known backend.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)
