package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	bookmodel "library-backend/internal/domains/book/model"
	"library-backend/internal/domains/rental/model"
	"library-backend/pkg/database"
)

type rentalRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new rental repository.
func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &rentalRepository{pool: pool}
}

// Rent runs the rental workflow in a single transaction:
//  1. verify the user exists
//  2. lock the book row (SELECT ... FOR UPDATE) so concurrent rentals of
//     the same book serialize on the row lock
//  3. verify the book is Available
//  4. flip the book to Rented and append the ledger record
func (r *rentalRepository) Rent(ctx context.Context, nationID, bookName, dueDate string) (*model.RentalRecord, error) {
	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (*model.RentalRecord, error) {
		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM users WHERE nation_id = $1)`,
			nationID,
		).Scan(&exists)
		if err != nil {
			return nil, fmt.Errorf("failed to check user: %w", err)
		}
		if !exists {
			return nil, model.ErrUserNotFound
		}

		var status string
		err = tx.QueryRow(ctx,
			`SELECT status::text FROM book WHERE name = $1 FOR UPDATE`,
			bookName,
		).Scan(&status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, model.ErrBookNotFound
			}
			return nil, fmt.Errorf("failed to lock book: %w", err)
		}

		if bookmodel.Status(status) != bookmodel.StatusAvailable {
			return nil, model.ErrBookNotAvailable
		}

		_, err = tx.Exec(ctx,
			`UPDATE book SET status = 'Rented' WHERE name = $1`,
			bookName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to update book status: %w", err)
		}

		record := &model.RentalRecord{
			NationID: nationID,
			BookName: bookName,
			DueDate:  dueDate,
		}
		err = tx.QueryRow(ctx,
			`INSERT INTO users_history (nation_id, book_name, due_date)
			 VALUES ($1, $2, $3)
			 RETURNING id, created_at`,
			nationID, bookName, dueDate,
		).Scan(&record.ID, &record.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to insert rental record: %w", err)
		}

		return record, nil
	})
}
