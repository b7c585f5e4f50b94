// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the server-side record of a successful login.
// The cookie only carries a signed reference to it (see SessionToken), so
// deleting the row invalidates the cookie immediately.
type Session struct {
	// ID is a random UUID, also used as the "jti" claim of the token.
	ID string `json:"id"`

	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`

	// Token is the signed cookie value. It is never persisted.
	Token string `json:"-"`
}

// Expired reports whether the session is no longer valid at the given moment.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

func (s Session) TableName() string {
	return "sessions"
}
