package identifier

import "errors"

var (
	ErrNameTooShort = errors.New("first and last names must be at least 2 characters")
)
