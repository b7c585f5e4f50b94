// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateSession stores session and drops the user's sessions that already
// expired at session.CreatedAt.
func (s *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	purgeQuery, purgeArgs, err := buildDeleteExpiredSessionsQuery(s.builder, session.UserID, session.CreatedAt)
	if err != nil {
		return err
	}
	insertQuery, insertArgs, err := buildInsertSessionQuery(s.builder, session)
	if err != nil {
		return err
	}

	return s.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, purgeQuery, purgeArgs...); err != nil {
			log.Err(err).Str("func", "sessionRepository.CreateSession").Int64("user_id", session.UserID).Msg("failed to purge expired sessions")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			if s.classify(err) == ForeignKeyViolation {
				return ErrUserNotFound
			}
			log.Err(err).Str("func", "sessionRepository.CreateSession").Int64("user_id", session.UserID).Msg("failed to insert session")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
}

// GetSession returns the session row or [ErrSessionNotFound]. Expiry is not
// checked here.
func (s *sessionRepository) GetSession(ctx context.Context, id string) (models.Session, error) {
	query, args, err := buildSelectSessionQuery(s.builder, id)
	if err != nil {
		return models.Session{}, err
	}

	var session models.Session
	err = s.QueryRowContext(ctx, query, args...).Scan(&session.ID, &session.UserID, &session.CreatedAt, &session.ExpiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionRepository.GetSession").Msg("failed to get session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return session, nil
}

func (s *sessionRepository) DeleteSession(ctx context.Context, id string) error {
	query, args, err := buildDeleteSessionQuery(s.builder, id)
	if err != nil {
		return err
	}

	if _, err = s.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionRepository.DeleteSession").Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
