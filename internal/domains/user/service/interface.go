package service

import (
	"context"

	"library-backend/internal/domains/user/model"
)

type ServiceInterface interface {
	Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error)
	List(ctx context.Context, f model.Filter) ([]model.UserRow, error)
	History(ctx context.Context, nationID string) ([]model.HistoryRow, error)
}
