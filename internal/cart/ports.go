package cart

import (
	"context"

	"bookstore/internal/book"
)

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=cart

type Repository interface {
	// GetByUser returns ErrCartNotFound when the user has no cart.
	GetByUser(ctx context.Context, userID string) (*Cart, error)
	// GetOrCreate returns the stored cart or a new empty one that is not yet persisted.
	GetOrCreate(ctx context.Context, userID string) (*Cart, error)
	// Save replaces the whole cart document.
	Save(ctx context.Context, c *Cart) error
}

type BookLookup interface {
	GetByIDs(ctx context.Context, ids []string) (map[string]book.Book, error)
}
