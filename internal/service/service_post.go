// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
)

type postService struct {
	postRepository store.PostRepository

	now func() time.Time

	logger *logger.Logger
}

// NewPostService returns a PostService backed by postRepository. Forms are
// not validated here; wrap the result with NewPostValidationService.
func NewPostService(postRepository store.PostRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		now:            time.Now,
		logger:         logger,
	}
}

func (p *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := p.postRepository.ListPosts(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "postService.ListPosts").Msg("listing posts failed")
		return nil, fmt.Errorf("listing posts failed: %w", err)
	}

	return posts, nil
}

func (p *postService) GetPost(ctx context.Context, id int64) (models.Post, error) {
	post, err := p.postRepository.GetPost(ctx, id)
	if err != nil {
		return models.Post{}, fmt.Errorf("getting post %d failed: %w", id, err)
	}

	return post, nil
}

// CreatePost stores a new post authored by authorID and dated today.
func (p *postService) CreatePost(ctx context.Context, form models.PostForm, authorID int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	if authorID <= 0 {
		return models.Post{}, ErrUnauthenticated
	}

	created, err := p.postRepository.CreatePost(ctx, models.Post{
		Title:    form.Title,
		Subtitle: form.Subtitle,
		Date:     p.now().Format(models.PostDateLayout),
		Body:     form.Body,
		ImgURL:   form.ImgURL,
		AuthorID: authorID,
	})
	if err != nil {
		log.Err(err).Int64("author_id", authorID).Msg("post creation failed")
		return models.Post{}, fmt.Errorf("post creation failed: %w", err)
	}

	log.Info().Int64("post_id", created.ID).Msg("post created")
	return created, nil
}

func (p *postService) UpdatePost(ctx context.Context, id int64, form models.PostForm) (models.Post, error) {
	updated, err := p.postRepository.UpdatePost(ctx, models.Post{
		ID:       id,
		Title:    form.Title,
		Subtitle: form.Subtitle,
		Body:     form.Body,
		ImgURL:   form.ImgURL,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("post_id", id).Msg("post update failed")
		return models.Post{}, fmt.Errorf("post update failed: %w", err)
	}

	return updated, nil
}

// DeletePost removes the post together with its comments.
func (p *postService) DeletePost(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if err := p.postRepository.DeletePost(ctx, id); err != nil {
		log.Err(err).Int64("post_id", id).Msg("post deletion failed")
		return fmt.Errorf("post deletion failed: %w", err)
	}

	log.Info().Int64("post_id", id).Msg("post deleted")
	return nil
}
