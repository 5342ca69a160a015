package book

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"bookstore/internal/apperr"
)

// Service provides book-related business logic.
type Service struct {
	repo       Repository
	sampleSize int
}

// NewService creates a new book service. sampleSize <= 0 falls back to DefaultSampleSize.
func NewService(repo Repository, sampleSize int) *Service {
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}
	return &Service{repo: repo, sampleSize: sampleSize}
}

// List returns every book.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	return s.find(ctx, Filter{})
}

// Sample returns up to n randomly chosen books. n <= 0 uses the configured size.
func (s *Service) Sample(ctx context.Context, n int) ([]Book, error) {
	if n <= 0 || n > s.sampleSize {
		n = s.sampleSize
	}
	books, err := s.repo.Sample(ctx, n)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	return books, nil
}

// ByCategory matches the category exactly. "All" returns every book.
func (s *Service) ByCategory(ctx context.Context, category string) ([]Book, error) {
	return s.find(ctx, CategoryFilter(category))
}

// ByAuthor matches a case-insensitive substring of the author. "All" returns every book.
func (s *Service) ByAuthor(ctx context.Context, author string) ([]Book, error) {
	return s.find(ctx, AuthorFilter(author))
}

// ByRatingTier returns books in the given tier. See RatingTierFilter.
func (s *Service) ByRatingTier(ctx context.Context, tier string) ([]Book, error) {
	f, err := RatingTierFilter(tier)
	if err != nil {
		return nil, err
	}
	return s.find(ctx, f)
}

// BelowThresholdRating returns books rated strictly below BelowThreshold.
// Unrated books are not included.
func (s *Service) BelowThresholdRating(ctx context.Context) ([]Book, error) {
	limit := BelowThreshold
	return s.find(ctx, Filter{RatingBelow: &limit})
}

// Search matches title against full and short titles. An empty query is a
// validation error and zero hits is reported as not found.
func (s *Service) Search(ctx context.Context, title string) ([]Book, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperr.Validation("title query is required")
	}
	books, err := s.find(ctx, Filter{Title: title})
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, apperr.NotFound("no books found", ErrNotFound)
	}
	return books, nil
}

// ByShortTitle returns the books whose short title equals shortTitle, ignoring case.
func (s *Service) ByShortTitle(ctx context.Context, shortTitle string) ([]Book, error) {
	shortTitle = strings.TrimSpace(shortTitle)
	if shortTitle == "" {
		return nil, apperr.NotFound("book not found", ErrNotFound)
	}
	books, err := s.find(ctx, Filter{ShortTitle: shortTitle})
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, apperr.NotFound("book not found", ErrNotFound)
	}
	return books, nil
}

// GetByID returns a book by its id.
func (s *Service) GetByID(ctx context.Context, id string) (Book, error) {
	if _, err := uuid.Parse(id); err != nil {
		return Book{}, apperr.NotFound("book not found", ErrNotFound)
	}
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Book{}, apperr.NotFound("book not found", ErrNotFound)
		}
		return Book{}, apperr.Unexpected(err)
	}
	return b, nil
}

func (s *Service) find(ctx context.Context, f Filter) ([]Book, error) {
	books, err := s.repo.Find(ctx, f)
	if err != nil {
		return nil, apperr.Unexpected(err)
	}
	return books, nil
}

func CategoryFilter(category string) Filter {
	if category == AllSentinel {
		return Filter{}
	}
	return Filter{Category: category}
}

func AuthorFilter(author string) Filter {
	if author == AllSentinel {
		return Filter{}
	}
	return Filter{Author: author}
}

// RatingTierFilter builds the filter for a rating tier. The low tiers 1, 2 and 3
// match exactly; every other tier is a lower bound.
func RatingTierFilter(tier string) (Filter, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(tier), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Filter{}, apperr.Validation("rating must be a number")
	}
	switch v {
	case 1, 2, 3:
		return Filter{RatingEq: &v}, nil
	default:
		return Filter{RatingMin: &v}, nil
	}
}
