// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// access is the guard applied to a route.
type access int

const (
	public access = iota
	loggedIn
	ownerOnly
)

type route struct {
	method  string
	pattern string
	handler http.HandlerFunc
	access  access
}

// routes is the declared route table of the blog.
func (h *Handler) routes() []route {
	return []route{
		{http.MethodGet, "/", h.index, public},

		{http.MethodGet, "/login", h.loginPage, public},
		{http.MethodPost, "/login", h.login, public},
		{http.MethodGet, "/register", h.registerPage, public},
		{http.MethodPost, "/register", h.register, public},
		{http.MethodGet, "/logout", h.logout, loggedIn},

		{http.MethodGet, "/post/{id}", h.showPost, public},
		{http.MethodPost, "/post/{id}", h.addComment, public},

		{http.MethodGet, "/new-post", h.newPostPage, ownerOnly},
		{http.MethodPost, "/new-post", h.newPost, ownerOnly},
		{http.MethodGet, "/edit-post/{id}", h.editPostPage, ownerOnly},
		{http.MethodPost, "/edit-post/{id}", h.editPost, ownerOnly},
		{http.MethodGet, "/delete/{id}", h.deletePost, ownerOnly},

		{http.MethodGet, "/about", h.about, public},
		{http.MethodGet, "/contact", h.contact, public},
		{http.MethodGet, "/random_avatar", h.randomAvatar, public},
		{http.MethodGet, "/api/version", h.getServerVersion, public},
	}
}

// guard wraps handler with the middleware enforcing a.
func (h *Handler) guard(a access, handler http.Handler) http.Handler {
	switch a {
	case loggedIn:
		return h.requireLogin(handler)
	case ownerOnly:
		return h.requireOwner(handler)
	default:
		return handler
	}
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		middleware.Recoverer,
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		withGZip,
	)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Method(http.MethodGet, metricsPath, h.metrics.handler())

	router.Group(func(r chi.Router) {
		r.Use(h.withSession)

		for _, rt := range h.routes() {
			r.Method(rt.method, rt.pattern, h.guard(rt.access, rt.handler))
		}
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router, h.notFound))

	return router
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	// unmatched requests skip the session middleware of the route group
	r = r.WithContext(h.loadUser(r))
	h.renderError(w, r, ErrRouteNotFound)
}
