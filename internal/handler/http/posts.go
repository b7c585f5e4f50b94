// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/internal/view"
	"github.com/MKhiriev/go-blog/models"
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PostService.ListPosts(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	page := h.page(w, r)
	page.Posts = posts
	h.render(w, r, http.StatusOK, view.PageIndex, page)
}

func (h *Handler) showPost(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.renderPost(w, r, id, http.StatusOK, models.CommentForm{}, nil)
}

// renderPost shows a post with its comments and the comment form.
func (h *Handler) renderPost(w http.ResponseWriter, r *http.Request, id int64, status int, form models.CommentForm, fieldErrors map[string]string) {
	ctx := r.Context()

	post, err := h.services.PostService.GetPost(ctx, id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	comments, err := h.services.CommentService.ListComments(ctx, id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	page := h.page(w, r)
	page.Post = post
	page.Comments = comments
	page.Form = form
	page.Errors = fieldErrors
	h.render(w, r, status, view.PagePost, page)
}

// addComment stores a comment of the current user. Anonymous visitors are
// sent to /login with a flash message, after the form itself validated.
func (h *Handler) addComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := postID(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	if err = parseForm(w, r); err != nil {
		h.renderError(w, r, err)
		return
	}
	form := models.CommentForm{Text: r.PostFormValue(models.FieldComment)}

	author := utils.CurrentUserFromContext(ctx)
	_, err = h.services.CommentService.AddComment(ctx, id, author.ID, form)
	if err != nil {
		if validationErr, ok := validators.AsValidationError(err); ok {
			h.renderPost(w, r, id, http.StatusUnprocessableEntity, form, validationErr.Fields)
			return
		}
		if errors.Is(err, service.ErrUnauthenticated) {
			h.addFlash(w, r, flashLoginToComment)
			redirect(w, r, "/login")
			return
		}
		h.renderError(w, r, err)
		return
	}

	redirect(w, r, fmt.Sprintf("/post/%d", id))
}

func (h *Handler) newPostPage(w http.ResponseWriter, r *http.Request) {
	page := h.page(w, r)
	page.Form = models.PostForm{}
	h.render(w, r, http.StatusOK, view.PageMakePost, page)
}

func (h *Handler) newPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := parseForm(w, r); err != nil {
		h.renderError(w, r, err)
		return
	}
	form := postFormFromRequest(r)

	_, err := h.services.PostService.CreatePost(ctx, form, utils.CurrentUserFromContext(ctx).ID)
	if err != nil {
		if validationErr, ok := validators.AsValidationError(err); ok {
			page := h.page(w, r)
			page.Form = form
			page.Errors = validationErr.Fields
			h.render(w, r, http.StatusUnprocessableEntity, view.PageMakePost, page)
			return
		}
		h.renderError(w, r, err)
		return
	}

	redirect(w, r, "/")
}

func (h *Handler) editPostPage(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	post, err := h.services.PostService.GetPost(r.Context(), id)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	var form models.PostForm
	form.FromPost(post)

	page := h.page(w, r)
	page.Post = post
	page.Form = form
	page.IsEdit = true
	h.render(w, r, http.StatusOK, view.PageMakePost, page)
}

func (h *Handler) editPost(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	if err = parseForm(w, r); err != nil {
		h.renderError(w, r, err)
		return
	}
	form := postFormFromRequest(r)

	post, err := h.services.PostService.UpdatePost(r.Context(), id, form)
	if err != nil {
		if validationErr, ok := validators.AsValidationError(err); ok {
			page := h.page(w, r)
			page.Post = models.Post{ID: id}
			page.Form = form
			page.Errors = validationErr.Fields
			page.IsEdit = true
			h.render(w, r, http.StatusUnprocessableEntity, view.PageMakePost, page)
			return
		}
		h.renderError(w, r, err)
		return
	}

	redirect(w, r, fmt.Sprintf("/post/%d", post.ID))
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	id, err := postID(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	if err = h.services.PostService.DeletePost(r.Context(), id); err != nil {
		h.renderError(w, r, err)
		return
	}

	redirect(w, r, "/")
}

func postFormFromRequest(r *http.Request) models.PostForm {
	return models.PostForm{
		Title:    r.PostFormValue(models.FieldTitle),
		Subtitle: r.PostFormValue(models.FieldSubtitle),
		ImgURL:   r.PostFormValue(models.FieldImgURL),
		Body:     r.PostFormValue(models.FieldBody),
	}
}
