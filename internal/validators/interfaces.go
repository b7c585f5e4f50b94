// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the blog's submitted forms: registration, login,
// post editing and comments.
//
// Every failing field is reported at once in a [ValidationError], keyed by
// the form field name, so the page can be re-rendered with the messages next
// to the inputs.
package validators

import "context"

// Validator checks a form value. fields limits the check to the named form
// fields; no fields means all of them.
type Validator interface {
	Validate(ctx context.Context, form any, fields ...string) error
}
