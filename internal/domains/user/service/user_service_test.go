package service

import (
	"context"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/user/model"
)

type mockUserRepo struct {
	createFn     func(ctx context.Context, u *model.User) (*model.User, error)
	existsFn     func(ctx context.Context, nationID string) (bool, error)
	listFn       func(ctx context.Context, f model.Filter) ([]model.UserRow, error)
	getHistoryFn func(ctx context.Context, nationID string) ([]model.HistoryRow, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u *model.User) (*model.User, error) {
	return m.createFn(ctx, u)
}

func (m *mockUserRepo) ExistsByNationID(ctx context.Context, nationID string) (bool, error) {
	return m.existsFn(ctx, nationID)
}

func (m *mockUserRepo) List(ctx context.Context, f model.Filter) ([]model.UserRow, error) {
	return m.listFn(ctx, f)
}

func (m *mockUserRepo) GetHistory(ctx context.Context, nationID string) ([]model.HistoryRow, error) {
	return m.getHistoryFn(ctx, nationID)
}

func TestCreateUserTrimsFields(t *testing.T) {
	var captured *model.User
	repo := &mockUserRepo{
		createFn: func(_ context.Context, u *model.User) (*model.User, error) {
			captured = u
			return u, nil
		},
	}
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), &model.CreateUserRequest{
		NationID: " 12345678901 ",
		Name:     " Ada Lovelace ",
	})

	require.NoError(t, err)
	assert.Equal(t, "12345678901", captured.NationID)
	assert.Equal(t, "Ada Lovelace", captured.Name)
}

func TestCreateUserValidation(t *testing.T) {
	repo := &mockUserRepo{
		createFn: func(_ context.Context, u *model.User) (*model.User, error) {
			t.Fatal("repository must not be called for invalid requests")
			return nil, nil
		},
	}
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), &model.CreateUserRequest{Name: "Ada"})

	require.Error(t, err)
	var vErrs validation.Errors
	assert.ErrorAs(t, err, &vErrs)
}

func TestHistoryUnknownUser(t *testing.T) {
	repo := &mockUserRepo{
		existsFn: func(_ context.Context, _ string) (bool, error) {
			return false, nil
		},
		getHistoryFn: func(_ context.Context, _ string) ([]model.HistoryRow, error) {
			t.Fatal("history must not be queried for an unknown user")
			return nil, nil
		},
	}
	svc := NewUserService(repo)

	_, err := svc.History(context.Background(), "00000000000")
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestHistoryEmptyLedgerIsNotAnError(t *testing.T) {
	repo := &mockUserRepo{
		existsFn: func(_ context.Context, _ string) (bool, error) {
			return true, nil
		},
		getHistoryFn: func(_ context.Context, _ string) ([]model.HistoryRow, error) {
			return []model.HistoryRow{}, nil
		},
	}
	svc := NewUserService(repo)

	rows, err := svc.History(context.Background(), "12345678901")

	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.NotNil(t, rows)
}

func TestHistoryTrimsNationID(t *testing.T) {
	var got string
	repo := &mockUserRepo{
		existsFn: func(_ context.Context, nationID string) (bool, error) {
			got = nationID
			return true, nil
		},
		getHistoryFn: func(_ context.Context, _ string) ([]model.HistoryRow, error) {
			return nil, nil
		},
	}
	svc := NewUserService(repo)

	_, err := svc.History(context.Background(), "  12345678901  ")

	require.NoError(t, err)
	assert.Equal(t, "12345678901", got)
}
