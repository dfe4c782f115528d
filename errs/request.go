package errs

import (
	"errors"
	"net/http"
)

// Authentication & Authorization Errors
var (
	ErrMissingToken       = errors.New("Access denied")
	ErrInvalidToken       = errors.New("Invalid or expired token")
	ErrInvalidCredentials = errors.New("Invalid credentials")
)

func BadRequest(message string) *ApiErr {
	return NewApiErr(http.StatusBadRequest, message)
}

// NewMissingTokenError is returned when no bearer token accompanies a
// request to an admin-only route. 401, matching the original API contract.
func NewMissingTokenError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrMissingToken,
		Field:      "authorization",
	}
}

// NewInvalidTokenError covers both bad signatures and expired tokens. 403,
// matching the original API contract.
func NewInvalidTokenError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusForbidden,
		err:        ErrInvalidToken,
		Field:      "authorization",
	}
}

// NewInvalidCredentialsError is deliberately identical for an unknown
// username and a wrong password so responses cannot be used to enumerate
// usernames.
func NewInvalidCredentialsError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrInvalidCredentials,
	}
}

func IsMissingTokenError(err error) bool {
	return errors.Is(err, ErrMissingToken)
}

func IsInvalidTokenError(err error) bool {
	return errors.Is(err, ErrInvalidToken)
}

func IsInvalidCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}
