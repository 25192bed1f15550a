package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness conflict (e.g. duplicate email).
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidReference indicates a foreign key pointing at a missing row.
	ErrInvalidReference = errors.New("invalid reference")
	// ErrValidation marks caller mistakes surfaced as 400s by the HTTP layer.
	ErrValidation = errors.New("validation")
)
