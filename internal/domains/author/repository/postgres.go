package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/author/model"
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

// Create inserts a new author and returns it with generated id and
// timestamps.
func (r *postgresRepository) Create(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        INSERT INTO author (name, country, birth_date)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at
    `

	created := *a
	err := r.pool.QueryRow(
		ctx,
		query,
		a.Name,
		a.Country,
		a.BirthDate,
	).Scan(
		&created.ID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return nil, model.ErrDuplicateName
		}
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &created, nil
}

// GetByID retrieves an author together with the names of their books.
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.AuthorDetail, error) {
	query := `
        SELECT
            author.id,
            author.name,
            author.country,
            author.birth_date,
            author.created_at,
            author.updated_at,
            (SELECT array_agg(book.name ORDER BY book.name)
             FROM book WHERE book.author = author.name) AS books
        FROM author
        WHERE author.id = $1
    `

	var detail model.AuthorDetail
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&detail.ID,
		&detail.Name,
		&detail.Country,
		&detail.BirthDate,
		&detail.CreatedAt,
		&detail.UpdatedAt,
		&detail.Books,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	if detail.Books == nil {
		detail.Books = []string{}
	}

	return &detail, nil
}

// List returns every author matching the provided filters, all of them
// when none were provided.
func (r *postgresRepository) List(ctx context.Context, f model.Filter) ([]model.Author, error) {
	params := (&filter.Params{}).
		EqString("name", f.Name).
		EqString("country", f.Country).
		EqString("birth_date", f.BirthDate)

	ds := filter.Dialect().
		From("author").
		Select("id", "name", "country", "birth_date", "created_at", "updated_at").
		Order(filter.Asc("name"))
	ds = params.Apply(ds)

	sql, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build author list query: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	authors := []model.Author{}
	for rows.Next() {
		var a model.Author
		if err := rows.Scan(
			&a.ID,
			&a.Name,
			&a.Country,
			&a.BirthDate,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}
