package review

import (
	"context"
	"fmt"
	"time"

	"bookstore/internal/platform/postgres"
)

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

func (r *PostgresRepo) Create(ctx context.Context, rv *Review) error {
	const query = `
		INSERT INTO reviews (id, book_id, rating, review, review_title, nickname, email, location, incentive, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, query,
		rv.ID, rv.BookID, rv.Rating, rv.Review, rv.ReviewTitle,
		rv.Nickname, rv.Email, rv.Location, rv.Incentive, rv.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

func (r *PostgresRepo) RatingsForBook(ctx context.Context, bookID string) ([]int, error) {
	const query = `SELECT rating FROM reviews WHERE book_id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, bookID)
	if err != nil {
		return nil, fmt.Errorf("read ratings: %w", err)
	}
	defer rows.Close()

	var out []int
	for rows.Next() {
		var rating int
		if err := rows.Scan(&rating); err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		out = append(out, rating)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) ListByBook(ctx context.Context, bookID string) ([]Review, error) {
	const query = `
		SELECT id, book_id, rating, review, review_title, nickname, email, location, incentive, created_at
		FROM reviews
		WHERE book_id = $1
		ORDER BY created_at ASC, id ASC
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, bookID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	out := make([]Review, 0)
	for rows.Next() {
		var rv Review
		if err := rows.Scan(
			&rv.ID, &rv.BookID, &rv.Rating, &rv.Review, &rv.ReviewTitle,
			&rv.Nickname, &rv.Email, &rv.Location, &rv.Incentive, &rv.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}
