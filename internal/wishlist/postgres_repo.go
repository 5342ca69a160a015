package wishlist

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

func (r *PostgresRepo) GetByUser(ctx context.Context, userID string) (*Wishlist, error) {
	const query = `SELECT id, user_id, items, updated_at FROM wishlists WHERE user_id = $1`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	var (
		wl  Wishlist
		raw []byte
	)
	err := r.db.QueryRow(timeoutCtx, query, userID).Scan(&wl.ID, &wl.UserID, &raw, &wl.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWishlistNotFound
		}
		return nil, fmt.Errorf("get wishlist: %w", err)
	}
	if err := json.Unmarshal(raw, &wl.Items); err != nil {
		return nil, fmt.Errorf("decode wishlist items: %w", err)
	}
	if wl.Items == nil {
		wl.Items = []Item{}
	}
	return &wl, nil
}

func (r *PostgresRepo) GetOrCreate(ctx context.Context, userID string) (*Wishlist, error) {
	wl, err := r.GetByUser(ctx, userID)
	if errors.Is(err, ErrWishlistNotFound) {
		return &Wishlist{ID: uuid.NewString(), UserID: userID, Items: []Item{}}, nil
	}
	return wl, err
}

func (r *PostgresRepo) Save(ctx context.Context, wl *Wishlist) error {
	const query = `
		INSERT INTO wishlists (id, user_id, items, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id)
		DO UPDATE SET items = EXCLUDED.items, updated_at = EXCLUDED.updated_at
		RETURNING id
	`
	if wl.Items == nil {
		wl.Items = []Item{}
	}
	raw, err := json.Marshal(wl.Items)
	if err != nil {
		return fmt.Errorf("encode wishlist items: %w", err)
	}
	wl.UpdatedAt = time.Now().UTC()

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	// On conflict the stored row keeps its id; adopt it.
	if err := r.db.QueryRow(timeoutCtx, query, wl.ID, wl.UserID, raw, wl.UpdatedAt).Scan(&wl.ID); err != nil {
		return fmt.Errorf("save wishlist: %w", err)
	}
	return nil
}
