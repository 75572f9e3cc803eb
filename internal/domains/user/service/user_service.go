package service

import (
	"context"
	"strings"

	"library-backend/internal/domains/user/model"
	"library-backend/internal/domains/user/repository"
)

// userService implements ServiceInterface.
type userService struct {
	repo repository.RepositoryInterface
}

// NewUserService creates a new user service instance.
func NewUserService(repo repository.RepositoryInterface) ServiceInterface {
	return &userService{
		repo: repo,
	}
}

func (s *userService) Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u := req.ToEntity()
	u.NationID = strings.TrimSpace(u.NationID)
	u.Name = strings.TrimSpace(u.Name)

	return s.repo.Create(ctx, u)
}

func (s *userService) List(ctx context.Context, f model.Filter) ([]model.UserRow, error) {
	return s.repo.List(ctx, f)
}

// History returns a user's rental ledger. The user must exist; a user
// without rentals gets an empty history, not an error.
func (s *userService) History(ctx context.Context, nationID string) ([]model.HistoryRow, error) {
	nationID = strings.TrimSpace(nationID)
	if nationID == "" {
		return nil, model.ErrUserNotFound
	}

	exists, err := s.repo.ExistsByNationID(ctx, nationID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrUserNotFound
	}

	return s.repo.GetHistory(ctx, nationID)
}
