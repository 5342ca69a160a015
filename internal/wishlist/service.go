package wishlist

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

// Add puts a book on the user's wishlist, creating the wishlist on first use.
// A book already on the list is a conflict.
func (s *Service) Add(ctx context.Context, userID, bookID string) (*Wishlist, error) {
	if userID == "" || bookID == "" {
		return nil, apperr.Validation("userId and bookId are required")
	}
	if _, err := uuid.Parse(userID); err != nil {
		return nil, apperr.Validation("invalid userId")
	}
	if _, err := uuid.Parse(bookID); err != nil {
		return nil, apperr.Validation("invalid bookId")
	}

	wl, err := s.repo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	if err := wl.Add(bookID); err != nil {
		return nil, apperr.Conflict("book already in wishlist")
	}
	if err := s.repo.Save(ctx, wl); err != nil {
		return nil, apperr.Unexpected(err)
	}
	return wl, nil
}

// Remove takes a book off the wishlist. Removing an absent book is not an error.
func (s *Service) Remove(ctx context.Context, userID, bookID string) (*Wishlist, error) {
	wl, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	wl.Remove(bookID)
	if err := s.repo.Save(ctx, wl); err != nil {
		return nil, apperr.Unexpected(err)
	}
	return wl, nil
}

func (s *Service) Get(ctx context.Context, userID string) (View, error) {
	wl, err := s.load(ctx, userID)
	if err != nil {
		return View{}, err
	}

	ids := make([]string, len(wl.Items))
	for i, it := range wl.Items {
		ids[i] = it.BookID
	}
	books, err := s.books.GetByIDs(ctx, ids)
	if err != nil {
		return View{}, apperr.Unexpected(err)
	}

	view := View{ID: wl.ID, UserID: wl.UserID, Items: make([]ViewItem, 0, len(wl.Items))}
	for _, it := range wl.Items {
		b, ok := books[it.BookID]
		view.Items = append(view.Items, newViewItem(it, b, ok))
	}
	return view, nil
}

func (s *Service) load(ctx context.Context, userID string) (*Wishlist, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, apperr.NotFound("wishlist not found", ErrWishlistNotFound)
	}
	wl, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrWishlistNotFound) {
			return nil, apperr.NotFound("wishlist not found", ErrWishlistNotFound)
		}
		return nil, apperr.Unexpected(err)
	}
	return wl, nil
}
