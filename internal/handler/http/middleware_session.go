// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/rs/zerolog"
)

// withSession resolves the session cookie into the current user and stores
// it in the request context (see utils.CurrentUserFromContext). Visitors
// without a valid session continue as the anonymous user; a stale cookie is
// removed.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := h.loadUser(r)

		if sessionToken(r) != "" && !utils.CurrentUserFromContext(ctx).IsAuthenticated() {
			h.clearCookie(w, sessionCookieName)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// loadUser returns the request context extended with the current user. The
// request logger of an authenticated user also carries "user_id".
func (h *Handler) loadUser(r *http.Request) context.Context {
	ctx := r.Context()

	user := h.services.AuthService.CurrentUser(ctx, sessionToken(r))
	if user.IsAuthenticated() {
		log := logger.FromRequest(r).GetChildLogger()
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Int64("user_id", user.ID)
		})
		ctx = log.WithContext(ctx)
	}

	return utils.WithCurrentUser(ctx, user)
}

// requireLogin rejects anonymous visitors with 401.
func (h *Handler) requireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !utils.CurrentUserFromContext(r.Context()).IsAuthenticated() {
			h.renderError(w, r, service.ErrUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireOwner lets only the blog owner through: 401 for anonymous
// visitors, 403 for everyone else.
func (h *Handler) requireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := h.services.AuthService.AuthorizeOwner(ctx, utils.CurrentUserFromContext(ctx)); err != nil {
			h.renderError(w, r, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}
