package model

import "errors"

var (
	// Business rule errors
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateNationID = errors.New("user with this nation_id already exists")
)

// ToErrorCode converts a domain error to a stable API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return "USER_NOT_FOUND"
	case errors.Is(err, ErrDuplicateNationID):
		return "DUPLICATE_NATION_ID"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts a domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return 404
	case errors.Is(err, ErrDuplicateNationID):
		return 409
	default:
		return 500
	}
}
