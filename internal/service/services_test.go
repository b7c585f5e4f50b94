// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteServices(t *testing.T) *Services {
	t.Helper()
	ctx := context.Background()

	storages, err := store.NewStorages(ctx, config.Storage{
		DB: config.DB{DSN: filepath.Join(t.TempDir(), "blog.db")},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	services, err := NewServices(storages, &config.StructuredConfig{App: testAppConfig()}, models.AppBuildInfo{Version: "test"}, logger.Nop())
	require.NoError(t, err)

	return services
}

func TestNewServices_EmptyVersion(t *testing.T) {
	_, err := NewServices(&store.Storages{}, &config.StructuredConfig{}, models.AppBuildInfo{}, logger.Nop())

	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestServices_BlogFlow(t *testing.T) {
	s := newSQLiteServices(t)
	ctx := context.Background()

	owner, err := s.AuthService.RegisterUser(ctx, models.RegisterForm{Name: "Owner", Email: "owner@example.com", Password: "pw"})
	require.NoError(t, err)
	require.Equal(t, testOwnerID, owner.ID)

	reader, err := s.AuthService.RegisterUser(ctx, models.RegisterForm{Name: "Reader", Email: "reader@example.com", Password: "pw2"})
	require.NoError(t, err)

	_, err = s.AuthService.RegisterUser(ctx, models.RegisterForm{Name: "Again", Email: "reader@example.com", Password: "x"})
	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)

	loggedIn, err := s.AuthService.Login(ctx, models.LoginForm{Email: "reader@example.com", Password: "pw2"})
	require.NoError(t, err)
	assert.Equal(t, reader.ID, loggedIn.ID)

	session, err := s.AuthService.CreateSession(ctx, loggedIn)
	require.NoError(t, err)
	assert.Equal(t, reader.ID, s.AuthService.CurrentUser(ctx, session.Token).ID)

	require.ErrorIs(t, s.AuthService.AuthorizeOwner(ctx, reader), ErrForbidden)
	require.NoError(t, s.AuthService.AuthorizeOwner(ctx, owner))

	post, err := s.PostService.CreatePost(ctx, validPostForm(), owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Owner", post.AuthorName)

	_, err = s.CommentService.AddComment(ctx, post.ID, reader.ID, models.CommentForm{Text: "first"})
	require.NoError(t, err)

	comments, err := s.CommentService.ListComments(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Reader", comments[0].AuthorName)

	require.NoError(t, s.PostService.DeletePost(ctx, post.ID))
	_, err = s.PostService.GetPost(ctx, post.ID)
	require.ErrorIs(t, err, store.ErrPostNotFound)

	comments, err = s.CommentService.ListComments(ctx, post.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)

	require.NoError(t, s.AuthService.Logout(ctx, session.Token))
	assert.False(t, s.AuthService.CurrentUser(ctx, session.Token).IsAuthenticated())
	require.NoError(t, s.AuthService.Logout(ctx, session.Token))
}
