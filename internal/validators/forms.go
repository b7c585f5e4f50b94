// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-blog/models"
)

// Column limits of the schema.
const (
	maxNameLength  = 100
	maxEmailLength = 100
	maxPostField   = 250
)

// FormValidator validates the forms submitted to the blog. Every invalid
// field is collected into one *ValidationError.
type FormValidator struct {
}

func NewFormValidator() Validator {
	return &FormValidator{}
}

// Validate checks obj, which must be one of the models form types (value or
// pointer). When fields are given only those fields are checked.
func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterForm:
		return v.validateRegisterForm(value, fields...)
	case *models.RegisterForm:
		return v.validateRegisterForm(*value, fields...)

	case models.LoginForm:
		return v.validateLoginForm(value, fields...)
	case *models.LoginForm:
		return v.validateLoginForm(*value, fields...)

	case models.PostForm:
		return v.validatePostForm(value, fields...)
	case *models.PostForm:
		return v.validatePostForm(*value, fields...)

	case models.CommentForm:
		return v.validateCommentForm(value, fields...)
	case *models.CommentForm:
		return v.validateCommentForm(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FormValidator) validateRegisterForm(form models.RegisterForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{models.FieldName, models.FieldEmail, models.FieldPassword}
	}

	c := newCollector()
	for _, f := range fields {
		switch f {
		case models.FieldName:
			c.check(f, required(form.Name), maxLength(form.Name, maxNameLength))
		case models.FieldEmail:
			c.check(f, required(form.Email), maxLength(form.Email, maxEmailLength), email(form.Email))
		case models.FieldPassword:
			c.check(f, required(form.Password))
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return c.err()
}

func (v *FormValidator) validateLoginForm(form models.LoginForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{models.FieldEmail, models.FieldPassword}
	}

	c := newCollector()
	for _, f := range fields {
		switch f {
		case models.FieldEmail:
			c.check(f, required(form.Email))
		case models.FieldPassword:
			c.check(f, required(form.Password))
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return c.err()
}

func (v *FormValidator) validatePostForm(form models.PostForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{models.FieldTitle, models.FieldSubtitle, models.FieldImgURL, models.FieldBody}
	}

	c := newCollector()
	for _, f := range fields {
		switch f {
		case models.FieldTitle:
			c.check(f, required(form.Title), maxLength(form.Title, maxPostField))
		case models.FieldSubtitle:
			c.check(f, required(form.Subtitle), maxLength(form.Subtitle, maxPostField))
		case models.FieldImgURL:
			c.check(f, required(form.ImgURL), maxLength(form.ImgURL, maxPostField), httpURL(form.ImgURL))
		case models.FieldBody:
			c.check(f, required(form.Body))
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return c.err()
}

func (v *FormValidator) validateCommentForm(form models.CommentForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{models.FieldComment}
	}

	c := newCollector()
	for _, f := range fields {
		switch f {
		case models.FieldComment:
			c.check(f, required(form.Text))
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return c.err()
}

// collector keeps the first failing message of every field.
type collector struct {
	fields map[string]string
}

func newCollector() *collector {
	return &collector{fields: make(map[string]string)}
}

// check records the first non-empty message.
func (c *collector) check(field string, messages ...string) {
	for _, msg := range messages {
		if msg != "" {
			c.fields[field] = msg
			return
		}
	}
}

func (c *collector) err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: c.fields}
}

func required(value string) string {
	if strings.TrimSpace(value) == "" {
		return MsgRequired
	}
	return ""
}

func maxLength(value string, limit int) string {
	if utf8.RuneCountInString(value) > limit {
		return fmt.Sprintf(msgTooLong, limit)
	}
	return ""
}

// email accepts a bare address ("user@host"), no display name or brackets.
func email(value string) string {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value || addr.Name != "" {
		return MsgInvalidEmail
	}
	return ""
}

// httpURL requires an absolute http or https URL with a host.
func httpURL(value string) string {
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return MsgInvalidURL
	}
	return ""
}
