package repository

import (
	"context"

	"github.com/google/uuid"

	"library-backend/internal/domains/author/model"
)

// RepositoryInterface is the author gateway: plain create/get plus the
// filtered list backing GET /api/author.
type RepositoryInterface interface {
	Create(ctx context.Context, a *model.Author) (*model.Author, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.AuthorDetail, error)
	List(ctx context.Context, f model.Filter) ([]model.Author, error)
}
