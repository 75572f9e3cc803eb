package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const dueDateLayout = "2006-01-02"

// RentalRecord is one entry of the append-only rental ledger
// (users_history). Records are created only by the rental engine and are
// never updated or deleted.
type RentalRecord struct {
	ID        uuid.UUID `json:"id" db:"id"`
	NationID  string    `json:"nation_id" db:"nation_id"`
	BookName  string    `json:"book_name" db:"book_name"`
	DueDate   string    `json:"due_date" db:"due_date"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// RentBookRequest - POST /api/user/rent/:nation_id
type RentBookRequest struct {
	BookName string `json:"book_name"`
	DueDate  string `json:"due_date"`
}

// Validate validates RentBookRequest.
func (req RentBookRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.BookName, validation.Required, validation.Length(1, 255)),
		validation.Field(&req.DueDate, validation.Required, validation.Date(dueDateLayout)),
	)
}

// RentBookResponse confirms a successful rental.
type RentBookResponse struct {
	Message string        `json:"message"`
	Info    *RentalRecord `json:"info"`
}
