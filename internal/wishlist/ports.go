package wishlist

import (
	"context"

	"bookstore/internal/book"
)

type Repository interface {
	GetByUser(ctx context.Context, userID string) (*Wishlist, error)
	GetOrCreate(ctx context.Context, userID string) (*Wishlist, error)
	Save(ctx context.Context, wl *Wishlist) error
}

type BookLookup interface {
	GetByIDs(ctx context.Context, ids []string) (map[string]book.Book, error)
}
