// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
)

type commentRepository struct {
	*DB
	logger *logger.Logger
}

func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		DB:     db,
		logger: logger,
	}
}

// ListComments returns the comments of a post oldest first, each with its
// author's name.
func (c *commentRepository) ListComments(ctx context.Context, postID int64) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCommentsQuery(c.builder, postID)
	if err != nil {
		return nil, err
	}

	rows, err := c.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "commentRepository.ListComments").Int64("post_id", postID).Msg("failed to execute query for listing comments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0, 8)
	for rows.Next() {
		var comment models.Comment
		if scanErr := rows.Scan(&comment.ID, &comment.Text, &comment.PostID, &comment.AuthorID, &comment.AuthorName); scanErr != nil {
			log.Err(scanErr).Str("func", "commentRepository.ListComments").Int64("post_id", postID).Msg("failed to scan comment row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		comments = append(comments, comment)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "commentRepository.ListComments").Int64("post_id", postID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return comments, nil
}

// CreateComment verifies the post exists and inserts the comment within the
// same transaction. A post deleted concurrently surfaces as a foreign key
// violation and is reported as [ErrPostNotFound] as well.
func (c *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountPostsByIDQuery(c.builder, comment.PostID)
	if err != nil {
		return models.Comment{}, err
	}
	insertQuery, insertArgs, err := buildInsertCommentQuery(c.builder, comment)
	if err != nil {
		return models.Comment{}, err
	}

	err = c.WithTx(ctx, func(tx *sql.Tx) error {
		var count int
		if err := tx.QueryRowContext(ctx, countQuery, countArgs...).Scan(&count); err != nil {
			log.Err(err).Str("func", "commentRepository.CreateComment").Int64("post_id", comment.PostID).Msg("failed to check post")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if count == 0 {
			return ErrPostNotFound
		}

		if err := tx.QueryRowContext(ctx, insertQuery, insertArgs...).Scan(&comment.ID); err != nil {
			if c.classify(err) == ForeignKeyViolation {
				return ErrPostNotFound
			}
			log.Err(err).Str("func", "commentRepository.CreateComment").Int64("post_id", comment.PostID).Msg("failed to insert comment")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
	if err != nil {
		return models.Comment{}, err
	}

	log.Debug().Str("func", "commentRepository.CreateComment").Int64("comment_id", comment.ID).Msg("comment created")
	return comment, nil
}
