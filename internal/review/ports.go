package review

import (
	"context"

	"bookstore/internal/book"
)

// Repository defines the contract for review storage.
type Repository interface {
	Create(ctx context.Context, r *Review) error
	RatingsForBook(ctx context.Context, bookID string) ([]int, error)
	ListByBook(ctx context.Context, bookID string) ([]Review, error)
}

// BookStore is the part of the book repository the aggregator writes through.
type BookStore interface {
	GetByID(ctx context.Context, id string) (book.Book, error)
	UpdateRating(ctx context.Context, id string, rating float64) error
}
