package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=book

// Repository defines the contract for book data storage.
type Repository interface {
	Find(ctx context.Context, f Filter) ([]Book, error)
	Sample(ctx context.Context, n int) ([]Book, error)
	GetByID(ctx context.Context, id string) (Book, error)
	// GetByIDs returns the books that exist, keyed by id. Unknown ids are absent from the map.
	GetByIDs(ctx context.Context, ids []string) (map[string]Book, error)
	UpdateRating(ctx context.Context, id string, rating float64) error
}
