// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package view renders the HTML pages of the blog.
//
// Every page template is parsed together with templates/layout.html and
// executed through its "layout" definition. Templates are embedded into the
// binary.
package view

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/MKhiriev/go-blog/models"
)

// Page names accepted by Renderer.Render.
const (
	PageIndex    = "index"
	PageLogin    = "login"
	PageRegister = "register"
	PagePost     = "post"
	PageMakePost = "make-post"
	PageAbout    = "about"
	PageContact  = "contact"
	PageError    = "error"
)

const layoutFile = "layout.html"

//go:embed templates/*.html
var templateFS embed.FS

var ErrUnknownPage = errors.New("unknown page")

// Page is the data passed to every template. Common chrome fields are always
// set by the handlers; the rest depends on the page.
type Page struct {
	CurrentUser models.User
	// IsOwner is set when CurrentUser may manage posts.
	IsOwner     bool
	Owner       models.User
	CurrentDate time.Time
	Flashes     []string

	Posts    []models.Post
	Post     models.Post
	Comments []models.Comment

	// Form holds the submitted values to re-render (RegisterForm, LoginForm,
	// PostForm or CommentForm) and Errors the per-field messages.
	Form   any
	Errors map[string]string
	IsEdit bool

	// Status and Message describe an error page.
	Status  int
	Message string
}

// Renderer holds one parsed template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	return newRenderer(templateFS, "templates")
}

func newRenderer(fsys fs.FS, dir string) (*Renderer, error) {
	files, err := fs.Glob(fsys, path.Join(dir, "*.html"))
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		base := path.Base(file)
		if base == layoutFile {
			continue
		}

		t, err := template.New(base).Funcs(funcs).ParseFS(fsys, path.Join(dir, layoutFile), file)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", base, err)
		}
		pages[strings.TrimSuffix(base, ".html")] = t
	}

	return &Renderer{pages: pages}, nil
}

// Render executes the named page into a buffer so that a failing template
// never produces a half written response.
func (r *Renderer) Render(name string, page Page) ([]byte, error) {
	t, ok := r.pages[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPage, name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", page); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", name, err)
	}

	return buf.Bytes(), nil
}

var funcs = template.FuncMap{
	// trustedHTML marks post bodies written by the owner as safe markup.
	// Comments are never passed through it.
	"trustedHTML": func(s string) template.HTML {
		return template.HTML(s) //nolint:gosec
	},
	"avatarURL": func(size int) string {
		return fmt.Sprintf("/random_avatar?size=%d", size)
	},
	"fieldValue": fieldValue,
}

// fieldValue returns the submitted value of a form field for re-rendering.
// Passwords are never echoed back.
func fieldValue(form any, field string) string {
	switch f := form.(type) {
	case models.RegisterForm:
		switch field {
		case models.FieldName:
			return f.Name
		case models.FieldEmail:
			return f.Email
		}
	case models.LoginForm:
		if field == models.FieldEmail {
			return f.Email
		}
	case models.PostForm:
		switch field {
		case models.FieldTitle:
			return f.Title
		case models.FieldSubtitle:
			return f.Subtitle
		case models.FieldImgURL:
			return f.ImgURL
		case models.FieldBody:
			return f.Body
		}
	case models.CommentForm:
		if field == models.FieldComment {
			return f.Text
		}
	}

	return ""
}
