// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrForbidden indicates that the current user is not
// authorized to touch a row scoped to another recruiter, while
// ErrConflict signals that a delete is blocked by existing dependent
// records (e.g. removing a client that still has vacancies).
package repository

import "errors"

// ErrForbidden is returned when the caller attempts an operation on a
// row outside their scope. Handlers should translate this into an
// HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when a delete cannot be performed because of
// referential integrity, such as deleting a recruiter who still has
// applications. Handlers should translate this into an HTTP 409
// response.
var ErrConflict = errors.New("conflict")

// ErrNameExists is returned when creating or renaming a client or
// recruiter would violate the unique name constraint.
var ErrNameExists = errors.New("name already exists")

// ErrValidation is returned when an input value fails a field-level
// check, such as a non-positive payment amount or an out-of-range
// month. Handlers should translate this into an HTTP 400 response.
var ErrValidation = errors.New("validation failed")
