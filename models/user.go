// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents a registered blog account.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user.
	// A zero ID denotes an anonymous visitor.
	ID int64 `json:"id"`

	// Name is the display name shown next to posts and comments.
	Name string `json:"name"`

	// Email is the unique login identifier. Comparison is exact (case-sensitive)
	// both in the UNIQUE index and in lookups.
	Email string `json:"email"`

	// PasswordHash stores the salted PBKDF2 hash in the
	// "pbkdf2:<digest>:<iterations>$<salt>$<hex>" format. Never plaintext.
	PasswordHash string `json:"-"`
}

// IsAuthenticated reports whether the user is a real account and not the
// anonymous placeholder.
func (u User) IsAuthenticated() bool {
	return u.ID != 0
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
