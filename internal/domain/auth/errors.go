package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrAccountInactive    = errors.New("employee account is deactivated")

	// ErrForbidden is the generic authorization failure: the caller's role
	// lacks the capability, or the target is outside the caller's scope.
	ErrForbidden = errors.New("caller is not allowed to perform this action")
)
