// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// Messages attached to invalid fields. They are shown next to the form inputs.
const (
	MsgRequired     = "This field is required."
	MsgInvalidURL   = "Invalid URL."
	MsgInvalidEmail = "Invalid email address."
	msgTooLong      = "Field cannot be longer than %d characters."
)

// ValidationError reports every invalid field of a submitted form.
// Fields maps a form field name (see models.Field*) to its message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:")
	for _, field := range slices.Sorted(maps.Keys(e.Fields)) {
		sb.WriteString(" ")
		sb.WriteString(field)
		sb.WriteString(": ")
		sb.WriteString(e.Fields[field])
	}
	return sb.String()
}

// AsValidationError unwraps err to a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
