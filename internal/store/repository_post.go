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

// postRepository is the SQL implementation of [PostRepository] over the
// "blog_posts" table. Every read joins the author's name from "users".
type postRepository struct {
	*DB
	logger *logger.Logger
}

func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		DB:     db,
		logger: logger,
	}
}

// ListPosts returns every post in insertion (ID) order.
// Returns an empty slice when there are no posts.
func (p *postRepository) ListPosts(ctx context.Context) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPostsQuery(p.builder)
	if err != nil {
		return nil, err
	}

	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "postRepository.ListPosts").Msg("failed to execute query for listing posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, 16)
	for rows.Next() {
		post, scanErr := scanPost(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "postRepository.ListPosts").Msg("failed to scan post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		posts = append(posts, post)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "postRepository.ListPosts").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return posts, nil
}

// GetPost returns the post with the given ID or [ErrPostNotFound].
func (p *postRepository) GetPost(ctx context.Context, id int64) (models.Post, error) {
	return p.getPost(ctx, p.DB.DB, id)
}

// CreatePost inserts post and returns it with its assigned ID and the author
// name. A missing author yields [ErrUserNotFound].
func (p *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertPostQuery(p.builder, post)
	if err != nil {
		return models.Post{}, err
	}

	var created models.Post
	err = p.WithTx(ctx, func(tx *sql.Tx) error {
		var id int64
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			if p.classify(err) == ForeignKeyViolation {
				return ErrUserNotFound
			}
			log.Err(err).Str("func", "postRepository.CreatePost").Msg("failed to insert post")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		created, err = p.getPost(ctx, tx, id)
		return err
	})
	if err != nil {
		return models.Post{}, err
	}

	log.Info().Str("func", "postRepository.CreatePost").Int64("post_id", created.ID).Msg("post created")
	return created, nil
}

// UpdatePost overwrites the editable fields of post.ID and returns the stored
// post. Author and date are left untouched.
func (p *postRepository) UpdatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePostQuery(p.builder, post)
	if err != nil {
		return models.Post{}, err
	}

	var updated models.Post
	err = p.WithTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("func", "postRepository.UpdatePost").Int64("post_id", post.ID).Msg("failed to update post")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if err = requireAffected(result); err != nil {
			return err
		}

		updated, err = p.getPost(ctx, tx, post.ID)
		return err
	})
	if err != nil {
		return models.Post{}, err
	}

	return updated, nil
}

// DeletePost removes the comments of the post and the post itself in one
// transaction, so a failure leaves both in place.
func (p *postRepository) DeletePost(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	commentsQuery, commentsArgs, err := buildDeleteCommentsByPostQuery(p.builder, id)
	if err != nil {
		return err
	}
	postQuery, postArgs, err := buildDeletePostQuery(p.builder, id)
	if err != nil {
		return err
	}

	err = p.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, commentsQuery, commentsArgs...); err != nil {
			log.Err(err).Str("func", "postRepository.DeletePost").Int64("post_id", id).Msg("failed to delete comments")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		result, err := tx.ExecContext(ctx, postQuery, postArgs...)
		if err != nil {
			log.Err(err).Str("func", "postRepository.DeletePost").Int64("post_id", id).Msg("failed to delete post")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return requireAffected(result)
	})
	if err != nil {
		return err
	}

	log.Info().Str("func", "postRepository.DeletePost").Int64("post_id", id).Msg("post deleted")
	return nil
}

// queryRower is satisfied by *sql.DB and *sql.Tx.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (p *postRepository) getPost(ctx context.Context, q queryRower, id int64) (models.Post, error) {
	query, args, err := buildSelectPostQuery(p.builder, id)
	if err != nil {
		return models.Post{}, err
	}

	post, err := scanPost(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "postRepository.getPost").Int64("post_id", id).Msg("failed to get post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return post, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPost(s scanner) (models.Post, error) {
	var post models.Post
	err := s.Scan(&post.ID, &post.Title, &post.Subtitle, &post.Date, &post.Body, &post.ImgURL, &post.AuthorID, &post.AuthorName)
	return post, err
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPostNotFound
	}
	return nil
}
