package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateBookRequest - POST /api/book/create
type CreateBookRequest struct {
	Name     string `json:"name"`
	Year     int    `json:"year"`
	Category string `json:"category"`
	Status   Status `json:"status"` // optional, defaults to available
	Author   string `json:"author"`
}

// Validate validates CreateBookRequest.
func (req CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Year, validation.Required, validation.Min(1), validation.Max(9999)),
		validation.Field(&req.Category, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Status, validation.In(StatusAvailable, StatusNotAvailable, StatusRented)),
		validation.Field(&req.Author, validation.Required, validation.Length(1, 255)),
	)
}

// ToEntity converts the request to a Book, applying the status default.
func (req *CreateBookRequest) ToEntity() *Book {
	status := req.Status
	if status == "" {
		status = StatusAvailable
	}
	return &Book{
		Name:     req.Name,
		Year:     req.Year,
		Category: req.Category,
		Status:   status,
		Author:   req.Author,
	}
}

// CreateBookResponse echoes the created book together with its id.
type CreateBookResponse struct {
	ID   uuid.UUID `json:"id"`
	Info *Book     `json:"info"`
}
