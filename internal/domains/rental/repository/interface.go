package repository

import (
	"context"

	"library-backend/internal/domains/rental/model"
)

// RepositoryInterface defines rental data access methods.
type RepositoryInterface interface {
	// Rent atomically marks the book as rented and appends a ledger
	// record for the user. Either both writes happen or neither does.
	Rent(ctx context.Context, nationID, bookName, dueDate string) (*model.RentalRecord, error)
}
