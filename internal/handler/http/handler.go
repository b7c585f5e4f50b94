// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/view"
)

type Handler struct {
	services *service.Services
	renderer *view.Renderer
	metrics  *httpMetrics

	requestTimeout     time.Duration
	signKey            string
	secureCookies      bool
	unifiedLoginErrors bool

	now func() time.Time

	logger *logger.Logger
}

func NewHandler(services *service.Services, renderer *view.Renderer, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:           services,
		renderer:           renderer,
		metrics:            newHTTPMetrics(),
		requestTimeout:     cfg.Server.RequestTimeout,
		signKey:            cfg.App.SessionSignKey,
		secureCookies:      cfg.Server.SecureCookies,
		unifiedLoginErrors: cfg.App.UnifiedLoginErrors,
		now:                time.Now,
		logger:             logger,
	}
}

// page builds the data shared by every template: the visitor, the owner
// record and pending flash messages (which are consumed).
func (h *Handler) page(w http.ResponseWriter, r *http.Request) view.Page {
	ctx := r.Context()
	current := utils.CurrentUserFromContext(ctx)

	owner, err := h.services.AuthService.Owner(ctx)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("owner is not registered")
	}

	return view.Page{
		CurrentUser: current,
		IsOwner:     current.IsAuthenticated() && h.services.AuthService.AuthorizeOwner(ctx, current) == nil,
		Owner:       owner,
		CurrentDate: h.now(),
		Flashes:     h.popFlashes(w, r),
	}
}

// render writes the named page with status. Rendering failures fall back to
// a plain 500 response.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, page view.Page) {
	body, err := h.renderer.Render(name, page)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("page", name).Msg("template rendering failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}

// redirect answers a form submission with 303 See Other.
func redirect(w http.ResponseWriter, r *http.Request, url string) {
	http.Redirect(w, r, url, http.StatusSeeOther)
}
