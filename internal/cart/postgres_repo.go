package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

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

func (r *PostgresRepo) GetByUser(ctx context.Context, userID string) (*Cart, error) {
	const query = `SELECT id, user_id, items, updated_at FROM carts WHERE user_id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var (
		c   Cart
		raw []byte
	)
	err := r.db.QueryRow(timeoutCtx, query, userID).Scan(&c.ID, &c.UserID, &raw, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}
	if err := json.Unmarshal(raw, &c.Items); err != nil {
		return nil, fmt.Errorf("decode cart items: %w", err)
	}
	if c.Items == nil {
		c.Items = []Item{}
	}
	return &c, nil
}

func (r *PostgresRepo) GetOrCreate(ctx context.Context, userID string) (*Cart, error) {
	c, err := r.GetByUser(ctx, userID)
	if errors.Is(err, ErrCartNotFound) {
		return &Cart{ID: uuid.NewString(), UserID: userID, Items: []Item{}}, nil
	}
	return c, err
}

// Save upserts the whole document and sets c.ID to the stored id. Concurrent
// writers for one user race and the last write wins.
func (r *PostgresRepo) Save(ctx context.Context, c *Cart) error {
	const query = `
		INSERT INTO carts (id, user_id, items, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id)
		DO UPDATE SET items = EXCLUDED.items, updated_at = EXCLUDED.updated_at
		RETURNING id
	`
	if c.Items == nil {
		c.Items = []Item{}
	}
	raw, err := json.Marshal(c.Items)
	if err != nil {
		return fmt.Errorf("encode cart items: %w", err)
	}
	c.UpdatedAt = time.Now().UTC()

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	// On conflict the stored row keeps its id; adopt it.
	if err := r.db.QueryRow(timeoutCtx, query, c.ID, c.UserID, raw, c.UpdatedAt).Scan(&c.ID); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}
