package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"library-backend/internal/domains/author/model"
	"library-backend/internal/domains/author/repository"
)

// authorService implements ServiceInterface.
type authorService struct {
	repo repository.RepositoryInterface
}

// NewAuthorService creates a new author service instance.
func NewAuthorService(repo repository.RepositoryInterface) ServiceInterface {
	return &authorService{
		repo: repo,
	}
}

func (s *authorService) Create(ctx context.Context, req *model.CreateAuthorRequest) (*model.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a := req.ToEntity()
	a.Name = strings.TrimSpace(a.Name)
	a.Country = strings.TrimSpace(a.Country)

	return s.repo.Create(ctx, a)
}

func (s *authorService) GetByID(ctx context.Context, id uuid.UUID) (*model.AuthorDetail, error) {
	if id == uuid.Nil {
		return nil, model.ErrAuthorNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) List(ctx context.Context, f model.Filter) ([]model.Author, error) {
	return s.repo.List(ctx, f)
}
