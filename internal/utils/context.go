// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across the blog
// server: typed context keys, session token signing, password hashing,
// id generation and small HTTP response writers.
package utils

import (
	"context"

	"github.com/MKhiriev/go-blog/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// CurrentUserCtxKey is the key under which the session loader stores the
// resolved models.User of the request.
var CurrentUserCtxKey = contextKey("currentUser")

// WithCurrentUser returns a copy of ctx carrying user.
func WithCurrentUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, CurrentUserCtxKey, user)
}

// CurrentUserFromContext returns the user stored in ctx.
// When nothing is stored the anonymous (zero) user is returned.
func CurrentUserFromContext(ctx context.Context) models.User {
	user, _ := ctx.Value(CurrentUserCtxKey).(models.User)
	return user
}
