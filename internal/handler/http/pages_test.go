// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/internal/view"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler(t *testing.T) {
	renderer, err := view.NewRenderer()
	require.NoError(t, err)
	svcs := &service.Services{}
	cfg := &config.StructuredConfig{
		App:    config.App{UnifiedLoginErrors: true},
		Server: config.Server{SecureCookies: true},
	}

	h := NewHandler(svcs, renderer, cfg, logger.Nop())

	require.NotNil(t, h)
	assert.Equal(t, svcs, h.services)
	assert.True(t, h.unifiedLoginErrors)
	assert.True(t, h.secureCookies)
	assert.NotNil(t, h.metrics)
}

func TestStaticPages(t *testing.T) {
	h := newTestHandler(t, newTestServices())

	for path, want := range map[string]string{"/about": "About Me", "/contact": "owner@example.com"} {
		t.Run(path, func(t *testing.T) {
			rec := serve(h, httptest.NewRequest(http.MethodGet, path, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), want)
			assert.Contains(t, rec.Body.String(), "Owner's Blog")
		})
	}
}

func TestUnknownRouteAndMethod(t *testing.T) {
	h := newTestHandler(t, newTestServices())

	unknown := serve(h, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, unknown.Code)
	assert.Contains(t, unknown.Body.String(), "Not Found")

	wrongMethod := serve(h, httptest.NewRequest(http.MethodPost, "/about", nil))
	assert.Equal(t, http.StatusNotFound, wrongMethod.Code)
}

func TestRandomAvatar(t *testing.T) {
	tests := []struct {
		query    string
		wantSize int
	}{
		{"", service.DefaultAvatarSize},
		{"?size=64", 64},
		{"?size=1", service.MinAvatarSize},
		{"?size=100000", service.MaxAvatarSize},
		{"?size=abc", service.DefaultAvatarSize},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			s := newTestServices()
			h := newTestHandler(t, s)

			req := httptest.NewRequest(http.MethodGet, "/random_avatar"+tt.query, nil)
			req.Header.Set("Accept-Encoding", "gzip")
			rec := serve(h, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
			assert.Empty(t, rec.Header().Get("Content-Encoding"))
			assert.Equal(t, []int{tt.wantSize}, s.avatars.sizes)

			img, err := png.Decode(rec.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSize, img.Bounds().Dx())
		})
	}
}

func TestGetServerVersion(t *testing.T) {
	h := newTestHandler(t, newTestServices())

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var info models.AppBuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, models.AppBuildInfo{Version: "1.2.3", Date: "2026-01-01", Commit: "abc"}, info)
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrUnauthorized, http.StatusUnauthorized},
		{service.ErrForbidden, http.StatusForbidden},
		{ErrInvalidPostID, http.StatusNotFound},
		{ErrInvalidForm, http.StatusBadRequest},
		{&validators.ValidationError{Fields: map[string]string{"title": validators.MsgRequired}}, http.StatusUnprocessableEntity},
		{store.ErrPostNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: %w", store.ErrDatabaseBusy, store.ErrExecutingStatement), http.StatusServiceUnavailable},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, statusFromError(tt.err), tt.err.Error())
	}
}
