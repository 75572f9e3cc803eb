package model

import (
	"time"

	"github.com/google/uuid"
)

// Book is identified by its unique name (business key); author references
// the author table by name, not by surrogate id.
type Book struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Year      int       `json:"year" db:"year"`
	Category  string    `json:"category" db:"category"`
	Status    Status    `json:"status" db:"status"`
	Author    string    `json:"author" db:"author"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Filter carries the optional exact-match filters of the book list
// endpoint. A nil field means the filter was not provided.
type Filter struct {
	Name     *string
	Year     *int
	Category *string
	Status   *Status
	Author   *string
}
