// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists blog accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with its assigned ID.
	// Returns ErrEmailAlreadyExists when the email is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail matches the email exactly. Returns ErrUserNotFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns ErrUserNotFound when id matches no row.
	FindUserByID(ctx context.Context, id int64) (models.User, error)
}

// PostRepository persists blog posts. Reads join the author name.
type PostRepository interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id int64) (models.Post, error)
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	// UpdatePost overwrites title, subtitle, img_url and body only.
	UpdatePost(ctx context.Context, post models.Post) (models.Post, error)
	// DeletePost removes the post and all of its comments atomically.
	DeletePost(ctx context.Context, id int64) error
}

// CommentRepository persists comments. Comments are never updated.
type CommentRepository interface {
	ListComments(ctx context.Context, postID int64) ([]models.Comment, error)
	// CreateComment returns ErrPostNotFound when the post does not exist.
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
}

// SessionRepository persists server-side login sessions.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error
	GetSession(ctx context.Context, id string) (models.Session, error)
	// DeleteSession is a no-op when id matches no row.
	DeleteSession(ctx context.Context, id string) error
}

// ErrorClassifier maps driver specific errors to an ErrorClassification.
type ErrorClassifier interface {
	Classify(err error) ErrorClassification
}
