// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-blog/models"
)

var (
	userColumns    = []string{"id", "name", "email", "password"}
	postColumns    = []string{"p.id", "p.title", "p.subtitle", "p.date", "p.body", "p.img_url", "p.author_id", "u.name"}
	commentColumns = []string{"c.id", "c.text", "c.post_id", "c.author_id", "u.name"}
	sessionColumns = []string{"id", "user_id", "created_at", "expires_at"}
)

func toSQL(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// users

func buildCountUsersByEmailQuery(sb sq.StatementBuilderType, email string) (string, []any, error) {
	return toSQL(sb.Select("COUNT(*)").From("users").Where(sq.Eq{"email": email}))
}

func buildInsertUserQuery(sb sq.StatementBuilderType, user models.User) (string, []any, error) {
	return toSQL(sb.Insert("users").
		Columns("name", "email", "password").
		Values(user.Name, user.Email, user.PasswordHash).
		Suffix("RETURNING id"))
}

func buildSelectUserQuery(sb sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return toSQL(sb.Select(userColumns...).From("users").Where(where))
}

// posts

func selectPosts(sb sq.StatementBuilderType) sq.SelectBuilder {
	return sb.Select(postColumns...).
		From("blog_posts p").
		Join("users u ON u.id = p.author_id")
}

func buildSelectPostsQuery(sb sq.StatementBuilderType) (string, []any, error) {
	return toSQL(selectPosts(sb).OrderBy("p.id"))
}

func buildSelectPostQuery(sb sq.StatementBuilderType, id int64) (string, []any, error) {
	return toSQL(selectPosts(sb).Where(sq.Eq{"p.id": id}))
}

func buildInsertPostQuery(sb sq.StatementBuilderType, post models.Post) (string, []any, error) {
	return toSQL(sb.Insert("blog_posts").
		Columns("title", "subtitle", "date", "body", "author_id", "img_url").
		Values(post.Title, post.Subtitle, post.Date, post.Body, post.AuthorID, post.ImgURL).
		Suffix("RETURNING id"))
}

func buildUpdatePostQuery(sb sq.StatementBuilderType, post models.Post) (string, []any, error) {
	return toSQL(sb.Update("blog_posts").
		Set("title", post.Title).
		Set("subtitle", post.Subtitle).
		Set("img_url", post.ImgURL).
		Set("body", post.Body).
		Where(sq.Eq{"id": post.ID}))
}

func buildDeletePostQuery(sb sq.StatementBuilderType, id int64) (string, []any, error) {
	return toSQL(sb.Delete("blog_posts").Where(sq.Eq{"id": id}))
}

func buildCountPostsByIDQuery(sb sq.StatementBuilderType, id int64) (string, []any, error) {
	return toSQL(sb.Select("COUNT(*)").From("blog_posts").Where(sq.Eq{"id": id}))
}

// comments

func buildSelectCommentsQuery(sb sq.StatementBuilderType, postID int64) (string, []any, error) {
	return toSQL(sb.Select(commentColumns...).
		From("comments c").
		Join("users u ON u.id = c.author_id").
		Where(sq.Eq{"c.post_id": postID}).
		OrderBy("c.id"))
}

func buildInsertCommentQuery(sb sq.StatementBuilderType, comment models.Comment) (string, []any, error) {
	return toSQL(sb.Insert("comments").
		Columns("text", "post_id", "author_id").
		Values(comment.Text, comment.PostID, comment.AuthorID).
		Suffix("RETURNING id"))
}

func buildDeleteCommentsByPostQuery(sb sq.StatementBuilderType, postID int64) (string, []any, error) {
	return toSQL(sb.Delete("comments").Where(sq.Eq{"post_id": postID}))
}

// sessions

func buildInsertSessionQuery(sb sq.StatementBuilderType, session models.Session) (string, []any, error) {
	return toSQL(sb.Insert("sessions").
		Columns(sessionColumns...).
		Values(session.ID, session.UserID, session.CreatedAt.UTC(), session.ExpiresAt.UTC()))
}

func buildSelectSessionQuery(sb sq.StatementBuilderType, id string) (string, []any, error) {
	return toSQL(sb.Select(sessionColumns...).From("sessions").Where(sq.Eq{"id": id}))
}

func buildDeleteSessionQuery(sb sq.StatementBuilderType, id string) (string, []any, error) {
	return toSQL(sb.Delete("sessions").Where(sq.Eq{"id": id}))
}

func buildDeleteExpiredSessionsQuery(sb sq.StatementBuilderType, userID int64, now time.Time) (string, []any, error) {
	return toSQL(sb.Delete("sessions").Where(sq.And{
		sq.Eq{"user_id": userID},
		sq.LtOrEq{"expires_at": now.UTC()},
	}))
}
