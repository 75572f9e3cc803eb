package service

import (
	"context"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/rental/model"
)

// mockRentalRepo lets each test plug in its own behavior and records
// whether the repository was reached at all.
type mockRentalRepo struct {
	rentFn func(ctx context.Context, nationID, bookName, dueDate string) (*model.RentalRecord, error)
	calls  int
}

func (m *mockRentalRepo) Rent(ctx context.Context, nationID, bookName, dueDate string) (*model.RentalRecord, error) {
	m.calls++
	return m.rentFn(ctx, nationID, bookName, dueDate)
}

func TestRentValidRequest(t *testing.T) {
	repo := &mockRentalRepo{
		rentFn: func(_ context.Context, nationID, bookName, dueDate string) (*model.RentalRecord, error) {
			return &model.RentalRecord{
				NationID: nationID,
				BookName: bookName,
				DueDate:  dueDate,
			}, nil
		},
	}
	svc := NewRentalService(repo)

	record, err := svc.Rent(context.Background(), "12345678901", &model.RentBookRequest{
		BookName: "  1984  ",
		DueDate:  "2026-10-01",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, "1984", record.BookName, "book name should be trimmed before reaching the repository")
	assert.Equal(t, "12345678901", record.NationID)
	assert.Equal(t, "2026-10-01", record.DueDate)
}

func TestRentValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		req  model.RentBookRequest
	}{
		{name: "missing book name", req: model.RentBookRequest{DueDate: "2026-10-01"}},
		{name: "missing due date", req: model.RentBookRequest{BookName: "1984"}},
		{name: "malformed due date", req: model.RentBookRequest{BookName: "1984", DueDate: "01-10-2026"}},
		{name: "due date with time", req: model.RentBookRequest{BookName: "1984", DueDate: "2026-10-01T00:00:00Z"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRentalRepo{}
			svc := NewRentalService(repo)

			req := tt.req
			_, err := svc.Rent(context.Background(), "12345678901", &req)

			require.Error(t, err)
			var vErrs validation.Errors
			assert.ErrorAs(t, err, &vErrs)
			assert.Zero(t, repo.calls, "invalid requests must not reach the repository")
		})
	}
}

func TestRentEmptyNationID(t *testing.T) {
	repo := &mockRentalRepo{}
	svc := NewRentalService(repo)

	_, err := svc.Rent(context.Background(), "   ", &model.RentBookRequest{
		BookName: "1984",
		DueDate:  "2026-10-01",
	})

	assert.ErrorIs(t, err, model.ErrUserNotFound)
	assert.Zero(t, repo.calls)
}

func TestRentRepositoryErrorsPassThrough(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "unknown user", err: model.ErrUserNotFound},
		{name: "unknown book", err: model.ErrBookNotFound},
		{name: "book already rented", err: model.ErrBookNotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRentalRepo{
				rentFn: func(_ context.Context, _, _, _ string) (*model.RentalRecord, error) {
					return nil, tt.err
				},
			}
			svc := NewRentalService(repo)

			_, err := svc.Rent(context.Background(), "12345678901", &model.RentBookRequest{
				BookName: "1984",
				DueDate:  "2026-10-01",
			})

			assert.ErrorIs(t, err, tt.err)
		})
	}
}
