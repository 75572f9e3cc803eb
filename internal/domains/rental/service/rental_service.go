package service

import (
	"context"
	"strings"

	"library-backend/internal/domains/rental/model"
	"library-backend/internal/domains/rental/repository"
)

// rentalService implements ServiceInterface.
type rentalService struct {
	repo repository.RepositoryInterface
}

// NewRentalService creates a new rental service instance.
func NewRentalService(repo repository.RepositoryInterface) ServiceInterface {
	return &rentalService{
		repo: repo,
	}
}

func (s *rentalService) Rent(ctx context.Context, nationID string, req *model.RentBookRequest) (*model.RentalRecord, error) {
	nationID = strings.TrimSpace(nationID)
	if nationID == "" {
		return nil, model.ErrUserNotFound
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.repo.Rent(ctx, nationID, strings.TrimSpace(req.BookName), req.DueDate)
}
