package model

import (
	"time"

	"github.com/google/uuid"
)

// User is identified by its unique nation_id (business key); rental
// ledger entries reference it by that value.
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	NationID  string    `json:"nation_id" db:"nation_id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// UserRow is one row of the user list endpoint, resolved through rental
// history: only users that rented at least one book appear.
type UserRow struct {
	NationID string `json:"nation_id" db:"nation_id"`
	UserName string `json:"user_name" db:"user_name"`
	BookName string `json:"book_name" db:"book_name"`
}

// HistoryRow is one rental event of a user's history.
type HistoryRow struct {
	Name     string `json:"name" db:"name"`
	NationID string `json:"nation_id" db:"nation_id"`
	BookName string `json:"book_name" db:"book_name"`
	DueDate  string `json:"due_date" db:"due_date"`
}

// Filter carries the optional exact-match filters of the user list
// endpoint. A nil field means the filter was not provided.
type Filter struct {
	UserName *string
	BookName *string
}
