// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"image"

	"github.com/MKhiriev/go-blog/models"
)

// AuthService manages accounts, login sessions and the owner check.
type AuthService interface {
	// RegisterUser validates the form, hashes the password and stores the
	// account. A taken email yields store.ErrEmailAlreadyExists.
	RegisterUser(ctx context.Context, form models.RegisterForm) (models.User, error)

	// Login returns the account matching the credentials, ErrNoSuchAccount or
	// ErrWrongPassword.
	Login(ctx context.Context, form models.LoginForm) (models.User, error)

	// CreateSession starts a server-side session for user. The returned
	// Session carries the signed cookie value in Token.
	CreateSession(ctx context.Context, user models.User) (models.Session, error)

	// CurrentUser resolves a cookie value to its user. It never fails: any
	// invalid, expired or revoked token yields the anonymous (zero) user.
	CurrentUser(ctx context.Context, token string) models.User

	// Logout revokes the session named by token. Missing or invalid tokens
	// are ignored.
	Logout(ctx context.Context, token string) error

	// AuthorizeOwner returns ErrUnauthorized for anonymous users,
	// ErrForbidden for anyone but the owner, and nil for the owner.
	AuthorizeOwner(ctx context.Context, user models.User) error

	// Owner loads the owner account shown in page chrome.
	Owner(ctx context.Context) (models.User, error)
}

// PostService manages blog posts.
type PostService interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id int64) (models.Post, error)
	// CreatePost stamps the current date and stores the post.
	CreatePost(ctx context.Context, form models.PostForm, authorID int64) (models.Post, error)
	// UpdatePost changes title, subtitle, image URL and body only.
	UpdatePost(ctx context.Context, id int64, form models.PostForm) (models.Post, error)
	DeletePost(ctx context.Context, id int64) error
}

// CommentService manages comments on posts.
type CommentService interface {
	ListComments(ctx context.Context, postID int64) ([]models.Comment, error)
	// AddComment validates the form before checking authorID; an anonymous
	// author (0) yields ErrUnauthenticated.
	AddComment(ctx context.Context, postID, authorID int64, form models.CommentForm) (models.Comment, error)
}

// AvatarService draws random placeholder avatars.
type AvatarService interface {
	Generate(size int) image.Image
}

// AppInfoService describes the running binary.
type AppInfoService interface {
	GetAppBuildInfo(ctx context.Context) models.AppBuildInfo
}

// PostServiceWrapper defines middleware composition for PostService.
// Implementations wrap an existing PostService to add behavior such as
// validation.
type PostServiceWrapper interface {
	Wrap(PostService) PostService
}
