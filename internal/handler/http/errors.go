// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidPostID is returned when the {id} path segment is not a
	// positive integer. It is answered like an unknown post.
	ErrInvalidPostID = errors.New("invalid post id")

	// ErrInvalidForm wraps body parsing failures, including oversized
	// submissions.
	ErrInvalidForm = errors.New("invalid form submission")

	// ErrRouteNotFound backs the 404 page of unknown paths and methods.
	ErrRouteNotFound = errors.New("page not found")
)

// User facing flash messages.
const (
	flashNoSuchAccount  = "That email does not exist, please try again."
	flashWrongPassword  = "Password incorrect, please try again."
	flashBadCredentials = "Invalid email or password, please try again."
	flashAccountExists  = "You already have an account with that email, log in instead"
	flashLoginToComment = "You need to login or register to comment."
	flashSessionFailure = "Could not start your session, please log in."
)
