package domain

import "errors"

var (
	// ErrInternalServerError is returned when an unexpected failure happens.
	// The detail is logged server side; clients only see the generic message.
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound is returned when the requested item does not exist. It is also
	// returned for bookmarks the caller does not own, so existence never leaks.
	ErrNotFound = errors.New("your requested item is not found")
	// ErrConflict is returned when a uniqueness constraint is violated
	ErrConflict = errors.New("your item already exists")
	// ErrBadParamInput is returned when the given request parameters are invalid
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrForbidden is returned when an authenticated caller is not allowed to act
	ErrForbidden = errors.New("you are not allowed to perform this action")
	// ErrUnauthorized is returned when no valid credential is presented
	ErrUnauthorized = errors.New("authentication required")
)
