package domain

import "errors"

var (
	ErrNotFound        = errors.New("entity not found")
	ErrForbidden       = errors.New("operation not allowed for this role")
	ErrBadRequest      = errors.New("malformed request payload")
	ErrUnauthenticated = errors.New("missing or invalid credentials")
)
