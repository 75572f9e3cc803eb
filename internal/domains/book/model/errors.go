package model

import "errors"

var (
	// Validation errors
	ErrInvalidStatus = errors.New("book status is invalid")
	ErrInvalidYear   = errors.New("book year is invalid")

	// Business rule errors
	ErrBookNotFound   = errors.New("book not found")
	ErrDuplicateName  = errors.New("book with this name already exists")
	ErrAuthorNotFound = errors.New("referenced author does not exist")
)

// ToErrorCode converts a domain error to a stable API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return "BOOK_NOT_FOUND"
	case errors.Is(err, ErrDuplicateName):
		return "DUPLICATE_BOOK_NAME"
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidYear):
		return "VALIDATION_FAILED"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts a domain error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound), errors.Is(err, ErrAuthorNotFound):
		return 404
	case errors.Is(err, ErrDuplicateName):
		return 409
	case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidYear):
		return 400
	default:
		return 500
	}
}
