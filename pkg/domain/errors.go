package domain

import "errors"

var (
	// requested record does not exist.
	ErrMissing = errors.New("missing")

	// a record with the same identity already exists.
	ErrConflict = errors.New("conflict")
)
