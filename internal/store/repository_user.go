// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

// userRepository is the SQL implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateUser checks that the email is free and inserts the account in one
// transaction, returning user with its assigned ID.
//
// Error handling:
//   - email already present → [ErrEmailAlreadyExists].
//   - UNIQUE violation on insert (concurrent registration) → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped low-level sentinel.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountUsersByEmailQuery(r.builder, user.Email)
	if err != nil {
		return models.User{}, err
	}
	insertQuery, insertArgs, err := buildInsertUserQuery(r.builder, user)
	if err != nil {
		return models.User{}, err
	}

	err = r.WithTx(ctx, func(tx *sql.Tx) error {
		var count int
		if err := tx.QueryRowContext(ctx, countQuery, countArgs...).Scan(&count); err != nil {
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to check email")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if count > 0 {
			return ErrEmailAlreadyExists
		}

		if err := tx.QueryRowContext(ctx, insertQuery, insertArgs...).Scan(&user.ID); err != nil {
			if r.classify(err) == UniqueViolation {
				return ErrEmailAlreadyExists
			}
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to insert user")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
	if err != nil {
		return models.User{}, err
	}

	log.Info().Str("func", "*userRepository.CreateUser").Int64("user_id", user.ID).Msg("user created")
	return user, nil
}

// FindUserByEmail retrieves the account whose email matches exactly.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"email": email})
}

// FindUserByID retrieves the account with the given ID.
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"id": id})
}

func (r *userRepository) findUser(ctx context.Context, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(r.builder, where)
	if err != nil {
		return models.User{}, err
	}

	var found models.User
	err = r.QueryRowContext(ctx, query, args...).Scan(&found.ID, &found.Name, &found.Email, &found.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("failed to find user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}
