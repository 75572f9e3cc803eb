package repository

import (
	"context"

	"library-backend/internal/domains/user/model"
)

// RepositoryInterface is the user gateway: plain create plus the
// history-resolved list and per-user rental history.
type RepositoryInterface interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	ExistsByNationID(ctx context.Context, nationID string) (bool, error)
	List(ctx context.Context, f model.Filter) ([]model.UserRow, error)
	GetHistory(ctx context.Context, nationID string) ([]model.HistoryRow, error)
}
