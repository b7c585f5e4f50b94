// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
)

const (
	sessionCookieName = "session"
	flashCookieName   = "flash"
)

// setSessionCookie stores the signed session token. The cookie expires
// together with the server-side session.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// addFlash queues a message for the next rendered page. Messages already
// pending on the request are kept. The cookie is signed with the session key.
func (h *Handler) addFlash(w http.ResponseWriter, r *http.Request, message string) {
	messages := append(h.readFlashes(r), message)

	token, err := utils.GenerateFlashToken(messages, h.signKey)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("flash encoding failed")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlashes returns the pending messages and deletes the cookie so that
// each message is shown once.
func (h *Handler) popFlashes(w http.ResponseWriter, r *http.Request) []string {
	if _, err := r.Cookie(flashCookieName); err != nil {
		return nil
	}

	h.clearCookie(w, flashCookieName)
	return h.readFlashes(r)
}

// readFlashes drops cookies whose signature does not verify.
func (h *Handler) readFlashes(r *http.Request) []string {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	messages, err := utils.ParseFlashToken(cookie.Value, h.signKey)
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("flash cookie rejected")
		return nil
	}
	return messages
}
