// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/internal/view"
)

func (h *Handler) about(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageAbout, h.page(w, r))
}

func (h *Handler) contact(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageContact, h.page(w, r))
}

// randomAvatar streams a freshly generated PNG. The optional "size" query
// parameter is clamped to the supported range; garbage means the default.
func (h *Handler) randomAvatar(w http.ResponseWriter, r *http.Request) {
	size := service.DefaultAvatarSize
	if raw := r.URL.Query().Get("size"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			size = service.ClampAvatarSize(parsed)
		}
	}

	img := h.services.AvatarService.Generate(size)
	if _, err := utils.WritePNG(w, img); err != nil {
		logger.FromRequest(r).Err(err).Msg("avatar encoding failed")
	}
}
