package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailExists      = errors.New("email already registered")
	ErrLoginIDExists    = errors.New("login ID already exists")
	ErrNotAuthorized    = errors.New("not authorized")
	ErrFieldNotAllowed  = errors.New("field not allowed for self-service update")
)
