// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Comment is a reply to a Post written by an authenticated user.
// Comments are never updated and only disappear together with their post.
type Comment struct {
	ID       int64  `json:"id"`
	Text     string `json:"text"`
	PostID   int64  `json:"post_id"`
	AuthorID int64  `json:"author_id"`

	// AuthorName is joined from users at query time.
	AuthorName string `json:"author_name,omitempty"`
}

func (c Comment) TableName() string {
	return "comments"
}
