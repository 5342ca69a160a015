package cart

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"bookstore/internal/apperr"
)

type Service struct {
	repo  Repository
	books BookLookup
}

func NewService(repo Repository, books BookLookup) *Service {
	return &Service{repo: repo, books: books}
}

// Add puts quantity copies of a book in the user's cart, creating the cart on
// first use. Adding a book already in the cart increases its quantity.
func (s *Service) Add(ctx context.Context, userID, bookID string, quantity int) (*Cart, error) {
	if userID == "" || bookID == "" {
		return nil, apperr.Validation("userId and bookId are required")
	}
	if _, err := uuid.Parse(userID); err != nil {
		return nil, apperr.Validation("invalid userId")
	}
	if _, err := uuid.Parse(bookID); err != nil {
		return nil, apperr.Validation("invalid bookId")
	}
	if quantity < 1 {
		return nil, apperr.Validation("quantity must be a positive integer")
	}

	c, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	c.Add(bookID, quantity)
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, apperr.Unexpected(err)
	}
	return c, nil
}

// Remove drops the line for bookID. A missing cart and a missing line are
// distinct not-found errors.
func (s *Service) Remove(ctx context.Context, userID, bookID string) (*Cart, error) {
	c, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !c.Remove(bookID) {
		return nil, apperr.NotFound("book not found in cart", ErrItemNotFound)
	}
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, apperr.Unexpected(err)
	}
	return c, nil
}

// Clear empties the cart but keeps it.
func (s *Service) Clear(ctx context.Context, userID string) (*Cart, error) {
	c, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	c.Clear()
	if err := s.repo.Save(ctx, c); err != nil {
		return nil, apperr.Unexpected(err)
	}
	return c, nil
}

// Get resolves the cart for display. Lines whose book is gone get placeholder values.
func (s *Service) Get(ctx context.Context, userID string) (View, error) {
	c, err := s.load(ctx, userID)
	if err != nil {
		return View{}, err
	}

	ids := make([]string, len(c.Items))
	for i, it := range c.Items {
		ids[i] = it.BookID
	}
	books, err := s.books.GetByIDs(ctx, ids)
	if err != nil {
		return View{}, apperr.Unexpected(err)
	}

	view := View{ID: c.ID, UserID: c.UserID, Items: make([]ViewItem, 0, len(c.Items))}
	for _, it := range c.Items {
		b, ok := books[it.BookID]
		view.Items = append(view.Items, newViewItem(it, b, ok))
	}
	return view, nil
}

func (s *Service) load(ctx context.Context, userID string) (*Cart, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, apperr.NotFound("cart not found", ErrCartNotFound)
	}
	c, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrCartNotFound) {
			return nil, apperr.NotFound("cart not found", ErrCartNotFound)
		}
		return nil, apperr.Unexpected(err)
	}
	return c, nil
}
