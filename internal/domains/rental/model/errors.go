package model

import (
	"errors"
	"net/http"
)

// Rental engine errors.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrBookNotFound     = errors.New("book not found")
	ErrBookNotAvailable = errors.New("book is not available for rent")
)

// ToErrorCode maps rental errors to API error codes.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return "USER_NOT_FOUND"
	case errors.Is(err, ErrBookNotFound):
		return "BOOK_NOT_FOUND"
	case errors.Is(err, ErrBookNotAvailable):
		return "BOOK_NOT_AVAILABLE"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus maps rental errors to HTTP status codes.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrBookNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBookNotAvailable):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
