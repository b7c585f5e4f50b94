// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Form field names. They match the HTML input names and the keys of
// per-field validation errors.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldTitle    = "title"
	FieldSubtitle = "subtitle"
	FieldImgURL   = "img_url"
	FieldBody     = "body"
	FieldComment  = "comment"
)

// RegisterForm carries the submitted registration fields.
type RegisterForm struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// LoginForm carries the submitted login credentials.
type LoginForm struct {
	Email    string `json:"email"`
	Password string `json:"-"`
}

// PostForm carries the editable fields of a post.
type PostForm struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImgURL   string `json:"img_url"`
	Body     string `json:"body"`
}

// FromPost fills the form with the current values of a post, used to
// pre-populate the edit page.
func (f *PostForm) FromPost(p Post) {
	f.Title = p.Title
	f.Subtitle = p.Subtitle
	f.ImgURL = p.ImgURL
	f.Body = p.Body
}

// CommentForm carries a submitted comment.
type CommentForm struct {
	Text string `json:"comment"`
}
