// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	s := newTestServices()
	s.auth.loginFn = func(_ context.Context, form models.LoginForm) (models.User, error) {
		assert.Equal(t, "reader@example.com", form.Email)
		assert.Equal(t, "pw", form.Password)
		return testReader, nil
	}
	h := newTestHandler(t, s)

	rec := serve(h, formRequest("/login", url.Values{"email": {"reader@example.com"}, "password": {"pw"}}))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	cookie := findCookie(rec, sessionCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "token-of-Reader", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		unified   bool
		wantFlash string
	}{
		{name: "unknown email", err: service.ErrNoSuchAccount, wantFlash: flashNoSuchAccount},
		{name: "wrong password", err: service.ErrWrongPassword, wantFlash: flashWrongPassword},
		{name: "unknown email, unified", err: service.ErrNoSuchAccount, unified: true, wantFlash: flashBadCredentials},
		{name: "wrong password, unified", err: service.ErrWrongPassword, unified: true, wantFlash: flashBadCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServices()
			s.auth.loginFn = func(context.Context, models.LoginForm) (models.User, error) {
				return models.User{}, tt.err
			}
			h := newTestHandler(t, s)
			h.unifiedLoginErrors = tt.unified

			rec := serve(h, formRequest("/login", url.Values{"email": {"x@example.com"}, "password": {"pw"}}))

			require.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/login", rec.Header().Get("Location"))
			assert.Equal(t, []string{tt.wantFlash}, flashesOf(t, rec))
			assert.Nil(t, findCookie(rec, sessionCookieName))
		})
	}
}

func TestLogin_ValidationErrorRerendersForm(t *testing.T) {
	s := newTestServices()
	s.auth.loginFn = func(context.Context, models.LoginForm) (models.User, error) {
		return models.User{}, &validators.ValidationError{Fields: map[string]string{models.FieldPassword: validators.MsgRequired}}
	}
	h := newTestHandler(t, s)

	rec := serve(h, formRequest("/login", url.Values{"email": {"typed@example.com"}}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), validators.MsgRequired)
	assert.Contains(t, rec.Body.String(), `value="typed@example.com"`)
}

func TestLogin_SessionFailure(t *testing.T) {
	s := newTestServices()
	s.auth.loginFn = func(context.Context, models.LoginForm) (models.User, error) {
		return testReader, nil
	}
	s.auth.createSessionFn = func(context.Context, models.User) (models.Session, error) {
		return models.Session{}, service.ErrSessionCreationFailed
	}
	h := newTestHandler(t, s)

	rec := serve(h, formRequest("/login", url.Values{"email": {"reader@example.com"}, "password": {"pw"}}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Equal(t, []string{flashSessionFailure}, flashesOf(t, rec))
}

func TestLoginPage_ShowsPendingFlash(t *testing.T) {
	h := newTestHandler(t, newTestServices())

	first := httptest.NewRecorder()
	h.addFlash(first, httptest.NewRequest(http.MethodGet, "/", nil), flashWrongPassword)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(findCookie(first, flashCookieName))
	rec := serve(h, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), flashWrongPassword)
	consumed := findCookie(rec, flashCookieName)
	require.NotNil(t, consumed)
	assert.Negative(t, consumed.MaxAge)
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_AutoLogin(t *testing.T) {
	s := newTestServices()
	s.auth.registerUserFn = func(_ context.Context, form models.RegisterForm) (models.User, error) {
		assert.Equal(t, models.RegisterForm{Name: "Ann", Email: "ann@example.com", Password: "pw"}, form)
		return models.User{ID: 9, Name: "Ann", Email: form.Email}, nil
	}
	h := newTestHandler(t, s)

	rec := serve(h, formRequest("/register", url.Values{"name": {"Ann"}, "email": {"ann@example.com"}, "password": {"pw"}}))

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	cookie := findCookie(rec, sessionCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "token-of-Ann", cookie.Value)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s := newTestServices()
	s.auth.registerUserFn = func(context.Context, models.RegisterForm) (models.User, error) {
		return models.User{}, errors.Join(errors.New("user creation ended with error"), store.ErrEmailAlreadyExists)
	}
	h := newTestHandler(t, s)

	rec := serve(h, formRequest("/register", url.Values{"name": {"Ann"}, "email": {"ann@example.com"}, "password": {"pw"}}))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Equal(t, []string{flashAccountExists}, flashesOf(t, rec))
	assert.Nil(t, findCookie(rec, sessionCookieName))
}

func TestRegister_ValidationError(t *testing.T) {
	s := newTestServices()
	s.auth.registerUserFn = func(context.Context, models.RegisterForm) (models.User, error) {
		return models.User{}, &validators.ValidationError{Fields: map[string]string{models.FieldEmail: validators.MsgInvalidEmail}}
	}
	h := newTestHandler(t, s)

	rec := serve(h, formRequest("/register", url.Values{"name": {"Ann"}, "email": {"nope"}, "password": {"secret-pw"}}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `value="Ann"`)
	assert.NotContains(t, body, "secret-pw")
}

func TestRegister_UnexpectedError(t *testing.T) {
	s := newTestServices()
	s.auth.registerUserFn = func(context.Context, models.RegisterForm) (models.User, error) {
		return models.User{}, store.ErrExecutingQuery
	}
	h := newTestHandler(t, s)

	rec := serve(h, formRequest("/register", url.Values{"name": {"Ann"}, "email": {"a@b.c"}, "password": {"pw"}}))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), store.ErrExecutingQuery.Error())
}

// ─────────────────────────────────────────────
// logout
// ─────────────────────────────────────────────

func TestLogout(t *testing.T) {
	s := newTestServices()
	var revoked string
	s.auth.logoutFn = func(_ context.Context, token string) error {
		revoked = token
		return nil
	}
	h := newTestHandler(t, s)

	rec := serve(h, withSessionCookie(httptest.NewRequest(http.MethodGet, "/logout", nil), "reader"))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Equal(t, "reader", revoked)
	cookie := findCookie(rec, sessionCookieName)
	require.NotNil(t, cookie)
	assert.Negative(t, cookie.MaxAge)
}

func TestLogout_Anonymous(t *testing.T) {
	h := newTestHandler(t, newTestServices())

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/logout", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
