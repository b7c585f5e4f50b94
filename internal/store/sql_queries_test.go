// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog/models"
)

var (
	questionBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	dollarBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
)

func Test_buildInsertUserQuery(t *testing.T) {
	user := models.User{Name: "Ann", Email: "ann@example.com", PasswordHash: "hash"}

	tests := []struct {
		name      string
		builder   sq.StatementBuilderType
		wantQuery string
	}{
		{
			name:      "sqlite placeholders",
			builder:   questionBuilder,
			wantQuery: "INSERT INTO users (name,email,password) VALUES (?,?,?) RETURNING id",
		},
		{
			name:      "postgres placeholders",
			builder:   dollarBuilder,
			wantQuery: "INSERT INTO users (name,email,password) VALUES ($1,$2,$3) RETURNING id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildInsertUserQuery(tt.builder, user)
			require.NoError(t, err)

			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, []any{"Ann", "ann@example.com", "hash"}, args)
		})
	}
}

func Test_buildSelectUserQuery(t *testing.T) {
	query, args, err := buildSelectUserQuery(dollarBuilder, sq.Eq{"email": "ann@example.com"})
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, name, email, password FROM users WHERE email = $1", query)
	assert.Equal(t, []any{"ann@example.com"}, args)
}

func Test_buildCountUsersByEmailQuery(t *testing.T) {
	query, args, err := buildCountUsersByEmailQuery(questionBuilder, "Ann@Example.com")
	require.NoError(t, err)

	assert.Equal(t, "SELECT COUNT(*) FROM users WHERE email = ?", query)
	// exact match, no case folding
	assert.Equal(t, []any{"Ann@Example.com"}, args)
}

func Test_buildSelectPostsQuery(t *testing.T) {
	query, args, err := buildSelectPostsQuery(questionBuilder)
	require.NoError(t, err)

	assert.Contains(t, query, "FROM blog_posts p JOIN users u ON u.id = p.author_id")
	assert.Contains(t, query, "ORDER BY p.id")
	assert.Contains(t, query, "u.name")
	assert.Empty(t, args)
}

func Test_buildSelectPostQuery(t *testing.T) {
	query, args, err := buildSelectPostQuery(dollarBuilder, 7)
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE p.id = $1")
	assert.Equal(t, []any{int64(7)}, args)
}

func Test_buildUpdatePostQuery(t *testing.T) {
	post := models.Post{ID: 3, Title: "t", Subtitle: "s", ImgURL: "https://example.com/i.png", Body: "b", AuthorID: 9, Date: "never"}

	query, args, err := buildUpdatePostQuery(questionBuilder, post)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE blog_posts SET title = ?, subtitle = ?, img_url = ?, body = ? WHERE id = ?", query)
	assert.Equal(t, []any{"t", "s", "https://example.com/i.png", "b", int64(3)}, args)
	assert.NotContains(t, query, "author_id")
	assert.NotContains(t, query, "date")
}

func Test_buildDeleteQueries(t *testing.T) {
	query, args, err := buildDeleteCommentsByPostQuery(questionBuilder, 5)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM comments WHERE post_id = ?", query)
	assert.Equal(t, []any{int64(5)}, args)

	query, args, err = buildDeletePostQuery(dollarBuilder, 5)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM blog_posts WHERE id = $1", query)
	assert.Equal(t, []any{int64(5)}, args)
}

func Test_buildSelectCommentsQuery(t *testing.T) {
	query, args, err := buildSelectCommentsQuery(questionBuilder, 2)
	require.NoError(t, err)

	assert.Contains(t, query, "FROM comments c JOIN users u ON u.id = c.author_id")
	assert.Contains(t, query, "WHERE c.post_id = ?")
	assert.Contains(t, query, "ORDER BY c.id")
	assert.Equal(t, []any{int64(2)}, args)
}

func Test_buildInsertSessionQuery_UsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, loc)
	session := models.Session{ID: "sid", UserID: 1, CreatedAt: created, ExpiresAt: created.Add(time.Hour)}

	query, args, err := buildInsertSessionQuery(dollarBuilder, session)
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO sessions (id,user_id,created_at,expires_at) VALUES ($1,$2,$3,$4)", query)
	require.Len(t, args, 4)
	assert.Equal(t, time.UTC, args[2].(time.Time).Location())
	assert.True(t, created.Equal(args[2].(time.Time)))
}

func Test_buildDeleteExpiredSessionsQuery(t *testing.T) {
	now := time.Now()

	query, args, err := buildDeleteExpiredSessionsQuery(questionBuilder, 4, now)
	require.NoError(t, err)

	assert.Contains(t, query, "DELETE FROM sessions WHERE")
	assert.Contains(t, query, "user_id = ?")
	assert.Contains(t, query, "expires_at <= ?")
	require.Len(t, args, 2)
	assert.Equal(t, int64(4), args[0])
}
