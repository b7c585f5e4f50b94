// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/internal/view"
)

var errorStatusMap = map[error]int{
	service.ErrUnauthorized:    http.StatusUnauthorized,
	service.ErrUnauthenticated: http.StatusUnauthorized,
	service.ErrForbidden:       http.StatusForbidden,
	service.ErrNoSuchAccount:   http.StatusUnauthorized,
	service.ErrWrongPassword:   http.StatusUnauthorized,

	ErrInvalidPostID: http.StatusNotFound,
	ErrRouteNotFound: http.StatusNotFound,
	ErrInvalidForm:   http.StatusBadRequest,

	store.ErrPostNotFound:       http.StatusNotFound,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrEmailAlreadyExists: http.StatusConflict,

	store.ErrDatabaseBusy: http.StatusServiceUnavailable,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	if _, ok := validators.AsValidationError(err); ok {
		return http.StatusUnprocessableEntity
	}
	// busy errors also wrap a generic statement error
	if errors.Is(err, store.ErrDatabaseBusy) {
		return http.StatusServiceUnavailable
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// renderError answers with the error page matching err. Internal details are
// logged, never shown.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	page := h.page(w, r)
	page.Status = status
	page.Message = http.StatusText(status)
	h.render(w, r, status, view.PageError, page)
}
