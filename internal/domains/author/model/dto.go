package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const birthDateLayout = "2006-01-02"

// CreateAuthorRequest - POST /api/author/create
type CreateAuthorRequest struct {
	Name      string `json:"name"`
	Country   string `json:"country"`
	BirthDate string `json:"birth_date"`
}

// Validate validates CreateAuthorRequest.
func (req CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.Country, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.BirthDate, validation.Required, validation.Date(birthDateLayout)),
	)
}

// ToEntity converts the request to an Author.
func (req *CreateAuthorRequest) ToEntity() *Author {
	return &Author{
		Name:      req.Name,
		Country:   req.Country,
		BirthDate: req.BirthDate,
	}
}

// CreateAuthorResponse echoes the created author together with its id.
type CreateAuthorResponse struct {
	ID   uuid.UUID `json:"id"`
	Info *Author   `json:"info"`
}
