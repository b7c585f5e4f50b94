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
	"github.com/MKhiriev/go-blog/models"
)

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	page := h.page(w, r)
	page.Form = models.LoginForm{}
	h.render(w, r, http.StatusOK, view.PageLogin, page)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := parseForm(w, r); err != nil {
		h.renderError(w, r, err)
		return
	}
	form := models.LoginForm{
		Email:    r.PostFormValue(models.FieldEmail),
		Password: r.PostFormValue(models.FieldPassword),
	}

	user, err := h.services.AuthService.Login(ctx, form)
	if err != nil {
		if validationErr, ok := validators.AsValidationError(err); ok {
			page := h.page(w, r)
			page.Form = form
			page.Errors = validationErr.Fields
			h.render(w, r, http.StatusUnprocessableEntity, view.PageLogin, page)
			return
		}

		switch {
		case errors.Is(err, service.ErrNoSuchAccount):
			h.addFlash(w, r, h.loginFailureMessage(flashNoSuchAccount))
		case errors.Is(err, service.ErrWrongPassword):
			h.addFlash(w, r, h.loginFailureMessage(flashWrongPassword))
		default:
			h.renderError(w, r, err)
			return
		}
		redirect(w, r, "/login")
		return
	}

	log.Debug().Int64("id", user.ID).Msg("user successfully logged in")

	h.startSession(w, r, user, "/")
}

// loginFailureMessage hides which credential was wrong when unified login
// errors are configured.
func (h *Handler) loginFailureMessage(message string) string {
	if h.unifiedLoginErrors {
		return flashBadCredentials
	}
	return message
}

func (h *Handler) registerPage(w http.ResponseWriter, r *http.Request) {
	page := h.page(w, r)
	page.Form = models.RegisterForm{}
	h.render(w, r, http.StatusOK, view.PageRegister, page)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := parseForm(w, r); err != nil {
		h.renderError(w, r, err)
		return
	}
	form := models.RegisterForm{
		Name:     r.PostFormValue(models.FieldName),
		Email:    r.PostFormValue(models.FieldEmail),
		Password: r.PostFormValue(models.FieldPassword),
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, form)
	if err != nil {
		if validationErr, ok := validators.AsValidationError(err); ok {
			page := h.page(w, r)
			page.Form = form
			page.Errors = validationErr.Fields
			h.render(w, r, http.StatusUnprocessableEntity, view.PageRegister, page)
			return
		}
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			h.addFlash(w, r, flashAccountExists)
			redirect(w, r, "/login")
			return
		}
		h.renderError(w, r, err)
		return
	}

	h.startSession(w, r, registeredUser, "/")
}

// startSession logs user in and redirects to target. If the session cannot
// be stored the account still exists, so the visitor is sent to /login.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, user models.User, target string) {
	session, err := h.services.AuthService.CreateSession(r.Context(), user)
	if err != nil {
		logger.FromRequest(r).Err(err).Int64("user_id", user.ID).Msg("creation of session failed")
		h.addFlash(w, r, flashSessionFailure)
		redirect(w, r, "/login")
		return
	}

	h.setSessionCookie(w, session.Token, session.ExpiresAt)
	redirect(w, r, target)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AuthService.Logout(r.Context(), sessionToken(r)); err != nil {
		logger.FromRequest(r).Err(err).Msg("session revocation failed")
	}

	h.clearCookie(w, sessionCookieName)
	redirect(w, r, "/login")
}
