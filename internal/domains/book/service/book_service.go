package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"library-backend/internal/domains/book/model"
	"library-backend/internal/domains/book/repository"
)

// bookService implements ServiceInterface.
type bookService struct {
	repo repository.RepositoryInterface
}

// NewBookService creates a new book service instance. The service depends
// on the repository abstraction, not the concrete type, so tests can
// substitute a mock.
func NewBookService(repo repository.RepositoryInterface) ServiceInterface {
	return &bookService{
		repo: repo,
	}
}

func (s *bookService) Create(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	b := req.ToEntity()
	b.Name = strings.TrimSpace(b.Name)
	b.Author = strings.TrimSpace(b.Author)

	return s.repo.Create(ctx, b)
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	if id == uuid.Nil {
		return nil, model.ErrBookNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) List(ctx context.Context, f model.Filter) ([]model.Book, error) {
	return s.repo.List(ctx, f)
}
