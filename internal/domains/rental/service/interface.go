package service

import (
	"context"

	"library-backend/internal/domains/rental/model"
)

// ServiceInterface defines rental business logic methods.
type ServiceInterface interface {
	Rent(ctx context.Context, nationID string, req *model.RentBookRequest) (*model.RentalRecord, error)
}
