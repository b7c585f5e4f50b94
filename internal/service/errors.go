// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Authentication errors returned by AuthService.Login.
var (
	ErrNoSuchAccount = errors.New("no account with that email")
	ErrWrongPassword = errors.New("wrong password")
)

// Authorization errors.
var (
	// ErrUnauthenticated is returned when an anonymous visitor attempts an
	// action that needs a logged in user (e.g. commenting).
	ErrUnauthenticated = errors.New("authentication required")

	// ErrUnauthorized is returned by AuthorizeOwner for anonymous visitors.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned by AuthorizeOwner for logged in users that are
	// not the blog owner.
	ErrForbidden = errors.New("forbidden")
)

var (
	ErrSessionCreationFailed = errors.New("session creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
