package ad

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

func (r *PostgresRepo) List(ctx context.Context) ([]Ad, error) {
	const query = `SELECT id, text FROM ads ORDER BY created_at ASC, id ASC`

	timeoutCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query)
	if err != nil {
		return nil, fmt.Errorf("list ads: %w", err)
	}
	defer rows.Close()

	out := make([]Ad, 0)
	for rows.Next() {
		var a Ad
		if err := rows.Scan(&a.ID, &a.Text); err != nil {
			return nil, fmt.Errorf("scan ad: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Insert adds an ad. Used by the seed command.
func (r *PostgresRepo) Insert(ctx context.Context, a Ad) error {
	const query = `INSERT INTO ads (id, text) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`

	timeoutCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	if _, err := r.db.Exec(timeoutCtx, query, a.ID, a.Text); err != nil {
		return fmt.Errorf("insert ad: %w", err)
	}
	return nil
}
