package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/book/model"
	"library-backend/internal/shared/filter"
)

// postgresRepository implements RepositoryInterface on pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{
		pool: pool,
	}
}

// Create inserts a new book and returns it with generated id and timestamps.
func (r *postgresRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	query := `
        INSERT INTO book (name, year, category, status, author)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at
    `

	created := *b
	err := r.pool.QueryRow(
		ctx,
		query,
		b.Name,
		b.Year,
		b.Category,
		string(b.Status),
		b.Author,
	).Scan(
		&created.ID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation on name
				return nil, model.ErrDuplicateName
			case "23503": // foreign_key_violation on author
				return nil, model.ErrAuthorNotFound
			}
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return &created, nil
}

// GetByID retrieves a book by its surrogate id.
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	query := `
        SELECT id, name, year, category, status::text, author, created_at, updated_at
        FROM book
        WHERE id = $1
    `

	var b model.Book
	var status string
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.Name,
		&b.Year,
		&b.Category,
		&status,
		&b.Author,
		&b.CreatedAt,
		&b.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	b.Status = model.Status(status)
	return &b, nil
}

// List returns every book matching the provided filters, all of them when
// none were provided.
func (r *postgresRepository) List(ctx context.Context, f model.Filter) ([]model.Book, error) {
	params := (&filter.Params{}).
		EqString("name", f.Name).
		EqInt("year", f.Year).
		EqString("category", f.Category).
		EqString("author", f.Author)
	if f.Status != nil {
		params.Eq("status", string(*f.Status))
	}

	ds := filter.Dialect().
		From("book").
		Select(
			goqu.C("id"),
			goqu.C("name"),
			goqu.C("year"),
			goqu.C("category"),
			goqu.L("status::text").As("status"),
			goqu.C("author"),
			goqu.C("created_at"),
			goqu.C("updated_at"),
		).
		Order(goqu.I("name").Asc())
	ds = params.Apply(ds)

	sql, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build book list query: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	books := []model.Book{}
	for rows.Next() {
		var b model.Book
		var status string
		if err := rows.Scan(
			&b.ID,
			&b.Name,
			&b.Year,
			&b.Category,
			&status,
			&b.Author,
			&b.CreatedAt,
			&b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		b.Status = model.Status(status)
		books = append(books, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}
