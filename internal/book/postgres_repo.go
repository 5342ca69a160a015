package book

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"bookstore/internal/platform/postgres"
)

const bookColumns = `id, short_title, full_title, author, ratings, price, category, stock, image, isbn, description`

type PostgresRepo struct {
	db      postgres.DB
	timeout time.Duration
}

func NewPostgresRepo(db postgres.DB, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// buildWhere compiles f into a WHERE clause and its positional arguments.
func buildWhere(f Filter) (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}
	argn := 1

	if f.Category != "" {
		clauses = append(clauses, fmt.Sprintf("category = $%d", argn))
		args = append(args, f.Category)
		argn++
	}

	if f.Author != "" {
		clauses = append(clauses, fmt.Sprintf("author ILIKE $%d", argn))
		args = append(args, postgres.LikePattern(f.Author))
		argn++
	}

	if f.Title != "" {
		clauses = append(clauses, fmt.Sprintf("(full_title ILIKE $%d OR short_title ILIKE $%d)", argn, argn))
		args = append(args, postgres.LikePattern(f.Title))
		argn++
	}

	if f.ShortTitle != "" {
		clauses = append(clauses, fmt.Sprintf("lower(short_title) = lower($%d)", argn))
		args = append(args, f.ShortTitle)
		argn++
	}

	if f.RatingEq != nil {
		clauses = append(clauses, fmt.Sprintf("ratings = $%d", argn))
		args = append(args, *f.RatingEq)
		argn++
	}

	if f.RatingMin != nil {
		clauses = append(clauses, fmt.Sprintf("ratings >= $%d", argn))
		args = append(args, *f.RatingMin)
		argn++
	}

	if f.RatingBelow != nil {
		clauses = append(clauses, fmt.Sprintf("ratings < $%d", argn))
		args = append(args, *f.RatingBelow)
	}

	return "WHERE " + strings.Join(clauses, " AND "), args
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBook(row scanner) (Book, error) {
	var b Book
	err := row.Scan(
		&b.ID, &b.ShortTitle, &b.FullTitle, &b.Author, &b.Ratings, &b.Price,
		&b.Category, &b.Stock, &b.Image, &b.ISBN, &b.Description,
	)
	return b, err
}

func collectBooks(rows pgx.Rows) ([]Book, error) {
	defer rows.Close()
	out := make([]Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Find(ctx context.Context, f Filter) ([]Book, error) {
	where, args := buildWhere(f)
	query := fmt.Sprintf("SELECT %s FROM books %s ORDER BY short_title ASC, id ASC", bookColumns, where)

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find books: %w", err)
	}
	books, err := collectBooks(rows)
	if err != nil {
		return nil, fmt.Errorf("scan books: %w", err)
	}
	return books, nil
}

func (r *PostgresRepo) Sample(ctx context.Context, n int) ([]Book, error) {
	query := fmt.Sprintf("SELECT %s FROM books ORDER BY random() LIMIT $1", bookColumns)

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, n)
	if err != nil {
		return nil, fmt.Errorf("sample books: %w", err)
	}
	books, err := collectBooks(rows)
	if err != nil {
		return nil, fmt.Errorf("scan books: %w", err)
	}
	return books, nil
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Book, error) {
	query := fmt.Sprintf("SELECT %s FROM books WHERE id = $1", bookColumns)

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	b, err := scanBook(r.db.QueryRow(timeoutCtx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrNotFound
		}
		return Book{}, fmt.Errorf("get book %s: %w", id, err)
	}
	return b, nil
}

func (r *PostgresRepo) GetByIDs(ctx context.Context, ids []string) (map[string]Book, error) {
	out := make(map[string]Book, len(ids))

	// Ids that are not UUIDs cannot match a row.
	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, err := uuid.Parse(id); err == nil {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return out, nil
	}

	query := fmt.Sprintf("SELECT %s FROM books WHERE id = ANY($1::uuid[])", bookColumns)

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, valid)
	if err != nil {
		return nil, fmt.Errorf("get books by ids: %w", err)
	}
	books, err := collectBooks(rows)
	if err != nil {
		return nil, fmt.Errorf("scan books: %w", err)
	}
	for _, b := range books {
		out[b.ID] = b
	}
	return out, nil
}

func (r *PostgresRepo) UpdateRating(ctx context.Context, id string, rating float64) error {
	const query = `UPDATE books SET ratings = $2, updated_at = NOW() WHERE id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, query, id, rating)
	if err != nil {
		return fmt.Errorf("update rating of book %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Insert stores b, keeping any existing row with the same id. Used by the
// seed command.
func (r *PostgresRepo) Insert(ctx context.Context, b Book) error {
	query := fmt.Sprintf(
		"INSERT INTO books (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) ON CONFLICT (id) DO NOTHING",
		bookColumns,
	)

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, query,
		b.ID, b.ShortTitle, b.FullTitle, b.Author, b.Ratings, b.Price,
		b.Category, b.Stock, b.Image, b.ISBN, b.Description,
	)
	if err != nil {
		return fmt.Errorf("insert book %s: %w", b.ID, err)
	}
	return nil
}
