// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

type commentService struct {
	commentRepository store.CommentRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewCommentService(commentRepository store.CommentRepository, validator validators.Validator, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		validator:         validator,
		logger:            logger,
	}
}

// ListComments returns the comments of a post in creation order.
func (c *commentService) ListComments(ctx context.Context, postID int64) ([]models.Comment, error) {
	comments, err := c.commentRepository.ListComments(ctx, postID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("post_id", postID).Msg("listing comments failed")
		return nil, fmt.Errorf("listing comments failed: %w", err)
	}

	return comments, nil
}

// AddComment stores a comment on postID.
//
// The form is validated first, so an anonymous visitor submitting an empty
// comment sees the field error rather than ErrUnauthenticated.
// A missing post yields a wrapped store.ErrPostNotFound.
func (c *commentService) AddComment(ctx context.Context, postID, authorID int64, form models.CommentForm) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if err := c.validator.Validate(ctx, form); err != nil {
		return models.Comment{}, err
	}

	if authorID <= 0 {
		return models.Comment{}, ErrUnauthenticated
	}

	created, err := c.commentRepository.CreateComment(ctx, models.Comment{
		Text:     form.Text,
		PostID:   postID,
		AuthorID: authorID,
	})
	if err != nil {
		log.Err(err).Int64("post_id", postID).Int64("author_id", authorID).Msg("comment creation failed")
		return models.Comment{}, fmt.Errorf("comment creation failed: %w", err)
	}

	return created, nil
}
