package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrInvalidOldPassword = errors.New("invalid old password")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenExpired       = errors.New("token has expired")
)
