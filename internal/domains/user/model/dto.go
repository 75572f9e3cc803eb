package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// CreateUserRequest - POST /api/user/create
type CreateUserRequest struct {
	NationID string `json:"nation_id"`
	Name     string `json:"name"`
}

// Validate validates CreateUserRequest.
func (req CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.NationID, validation.Required, validation.Length(1, 64)),
		validation.Field(&req.Name, validation.Required, validation.Length(1, 255)),
	)
}

// ToEntity converts the request to a User.
func (req *CreateUserRequest) ToEntity() *User {
	return &User{
		NationID: req.NationID,
		Name:     req.Name,
	}
}

// CreateUserResponse echoes the created user together with its id.
type CreateUserResponse struct {
	ID   uuid.UUID `json:"id"`
	Info *User     `json:"info"`
}
