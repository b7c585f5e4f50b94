// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

// postValidationService is a PostService decorator that rejects invalid
// forms before they reach the wrapped service. Reads pass through.
type postValidationService struct {
	inner     PostService
	validator validators.Validator
}

// NewPostValidationService returns a PostServiceWrapper that validates
// PostForm values with validator.
func NewPostValidationService(validator validators.Validator) PostServiceWrapper {
	return &postValidationService{validator: validator}
}

// Wrap sets inner as the next service in the chain and returns the decorator.
func (v *postValidationService) Wrap(inner PostService) PostService {
	v.inner = inner
	return v
}

func (v *postValidationService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return v.inner.ListPosts(ctx)
}

func (v *postValidationService) GetPost(ctx context.Context, id int64) (models.Post, error) {
	return v.inner.GetPost(ctx, id)
}

func (v *postValidationService) CreatePost(ctx context.Context, form models.PostForm, authorID int64) (models.Post, error) {
	if err := v.validator.Validate(ctx, form); err != nil {
		return models.Post{}, err
	}

	return v.inner.CreatePost(ctx, form, authorID)
}

func (v *postValidationService) UpdatePost(ctx context.Context, id int64, form models.PostForm) (models.Post, error) {
	if err := v.validator.Validate(ctx, form); err != nil {
		return models.Post{}, err
	}

	return v.inner.UpdatePost(ctx, id, form)
}

func (v *postValidationService) DeletePost(ctx context.Context, id int64) error {
	return v.inner.DeletePost(ctx, id)
}
