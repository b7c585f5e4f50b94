// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PostDateLayout is the layout used to stamp the publication date of a post,
// e.g. "April 05, 2024".
const PostDateLayout = "January 02, 2006"

// Post is a blog article. Author and Date are fixed at creation time.
type Post struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`

	// Date is a human formatted string (see PostDateLayout), not a timestamp.
	Date string `json:"date"`

	// Body is trusted HTML written by the owner.
	Body   string `json:"body"`
	ImgURL string `json:"img_url"`

	AuthorID int64 `json:"author_id"`

	// AuthorName is joined from users at query time.
	AuthorName string `json:"author_name,omitempty"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "blog_posts"
}
