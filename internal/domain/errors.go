package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists signals a duplicate resource.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidParams signals search parameters the backend cannot run.
	ErrInvalidParams = errors.New("invalid search parameters")
	// ErrInvalidName signals a malformed collection or preset name.
	ErrInvalidName = errors.New("invalid name")
	// ErrInvalidDocument signals an edited document that cannot be stored.
	ErrInvalidDocument = errors.New("invalid document")
	// ErrLimitReached signals that a configured capacity is exhausted.
	ErrLimitReached = errors.New("limit reached")
	// ErrBackendUnavailable signals that the search cluster did not answer.
	ErrBackendUnavailable = errors.New("search backend unavailable")
)
