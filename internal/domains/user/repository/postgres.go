package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-backend/internal/domains/user/model"
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

// Create inserts a new user and returns it with generated id and
// timestamps.
func (r *postgresRepository) Create(ctx context.Context, u *model.User) (*model.User, error) {
	query := `
        INSERT INTO users (nation_id, name)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at
    `

	created := *u
	err := r.pool.QueryRow(
		ctx,
		query,
		u.NationID,
		u.Name,
	).Scan(
		&created.ID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return nil, model.ErrDuplicateNationID
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &created, nil
}

// ExistsByNationID checks whether a user exists (lightweight query).
func (r *postgresRepository) ExistsByNationID(ctx context.Context, nationID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE nation_id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, nationID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return exists, nil
}

// List resolves users through their rental history: the join means only
// users with at least one ledger entry are returned, one row per rental.
func (r *postgresRepository) List(ctx context.Context, f model.Filter) ([]model.UserRow, error) {
	params := (&filter.Params{}).
		EqString("users.name", f.UserName).
		EqString("users_history.book_name", f.BookName)

	ds := filter.Dialect().
		From("users_history").
		Join(
			goqu.T("users"),
			goqu.On(goqu.I("users_history.nation_id").Eq(goqu.I("users.nation_id"))),
		).
		Select(
			goqu.I("users.nation_id"),
			goqu.I("users.name").As("user_name"),
			goqu.I("users_history.book_name"),
		).
		Order(filter.Asc("users.nation_id"))
	ds = params.Apply(ds)

	sql, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("failed to build user list query: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []model.UserRow{}
	for rows.Next() {
		var row model.UserRow
		if err := rows.Scan(&row.NationID, &row.UserName, &row.BookName); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// GetHistory returns every rental event of one user, oldest first.
func (r *postgresRepository) GetHistory(ctx context.Context, nationID string) ([]model.HistoryRow, error) {
	query := `
        SELECT users.name, users_history.nation_id, users_history.book_name, users_history.due_date
        FROM users_history
        JOIN users ON users.nation_id = users_history.nation_id
        WHERE users_history.nation_id = $1
        ORDER BY users_history.created_at
    `

	rows, err := r.pool.Query(ctx, query, nationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query user history: %w", err)
	}
	defer rows.Close()

	history := []model.HistoryRow{}
	for rows.Next() {
		var row model.HistoryRow
		if err := rows.Scan(&row.Name, &row.NationID, &row.BookName, &row.DueDate); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		history = append(history, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user history: %w", err)
	}

	return history, nil
}
