package model

import (
	"time"

	"github.com/google/uuid"
)

// Author is identified by its unique name (business key); books reference
// it by that name.
type Author struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Country   string    `json:"country" db:"country"`
	BirthDate string    `json:"birth_date" db:"birth_date"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// AuthorDetail is an author together with the names of the books they own.
type AuthorDetail struct {
	Author
	Books []string `json:"books"`
}

// Filter carries the optional exact-match filters of the author list
// endpoint. A nil field means the filter was not provided.
type Filter struct {
	Name      *string
	Country   *string
	BirthDate *string
}
