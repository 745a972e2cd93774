// Package pkg holds utilities shared across the project.
// This file defines the domain-level errors.
//
// Errors are plain sentinel values; callers compare them by reference
// through the wrap chain:
//
//	if errors.Is(err, pkg.ErrNotFound) { ... }
package pkg

import "errors"

// Domain-level errors.
// The service layer returns them (wrapped with context), the handler layer
// maps them to HTTP status codes in response.go.
var (
	ErrNotFound        = errors.New("not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrConflict        = errors.New("conflict")
	ErrBadRequest      = errors.New("bad request")
	ErrInternal        = errors.New("internal error")
	ErrTooManyRequests = errors.New("too many requests")

	// ErrDependencyUnavailable is returned when the media backend cannot be
	// reached (or refuses) while resources are being provisioned.
	ErrDependencyUnavailable = errors.New("media backend unavailable")
)
