package review

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"bookstore/internal/apperr"
	"bookstore/internal/book"
)

type Service struct {
	repo   Repository
	books  BookStore
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, books BookStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, books: books, logger: logger, now: time.Now}
}

func validateInput(in SubmitInput) error {
	required := []struct{ name, value string }{
		{"bookId", in.BookID},
		{"review", in.Review},
		{"reviewTitle", in.ReviewTitle},
		{"nickname", in.Nickname},
		{"email", in.Email},
		{"location", in.Location},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return apperr.Validation(f.name + " is required")
		}
	}
	if in.Rating < MinRating || in.Rating > MaxRating {
		return apperr.Validation("rating must be between 1 and 5")
	}
	return nil
}

// Submit stores a review and recomputes the book's rating from all of its
// reviews. The review is written before the rating; if the rating update
// fails the review stays and the book keeps its previous rating.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (SubmitResult, error) {
	if err := validateInput(in); err != nil {
		return SubmitResult{}, err
	}

	b, err := s.lookupBook(ctx, in.BookID)
	if err != nil {
		return SubmitResult{}, err
	}

	incentive := strings.TrimSpace(in.Incentive)
	if incentive == "" {
		incentive = DefaultIncentive
	}
	rv := Review{
		ID:          uuid.NewString(),
		BookID:      b.ID,
		Rating:      in.Rating,
		Review:      in.Review,
		ReviewTitle: in.ReviewTitle,
		Nickname:    in.Nickname,
		Email:       in.Email,
		Location:    in.Location,
		Incentive:   incentive,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.Create(ctx, &rv); err != nil {
		return SubmitResult{}, apperr.Unexpected(err)
	}

	ratings, err := s.repo.RatingsForBook(ctx, b.ID)
	if err != nil {
		s.logStale(ctx, rv, err)
		return SubmitResult{}, apperr.Unexpected(err)
	}
	if len(ratings) == 0 {
		ratings = []int{rv.Rating}
	}

	avg := Average(ratings)
	if err := s.books.UpdateRating(ctx, b.ID, avg); err != nil {
		s.logStale(ctx, rv, err)
		return SubmitResult{}, apperr.Unexpected(err)
	}
	b.Ratings = &avg

	return SubmitResult{Review: rv, Book: b}, nil
}

// ListForBook returns every review of a book with its rating breakdown.
func (s *Service) ListForBook(ctx context.Context, bookID string) (BookReviews, error) {
	if _, err := uuid.Parse(bookID); err != nil {
		return BookReviews{}, apperr.NotFound("no reviews found for this book", ErrNoReviews)
	}
	reviews, err := s.repo.ListByBook(ctx, bookID)
	if err != nil {
		return BookReviews{}, apperr.Unexpected(err)
	}
	if len(reviews) == 0 {
		return BookReviews{}, apperr.NotFound("no reviews found for this book", ErrNoReviews)
	}

	ratings := make([]int, len(reviews))
	for i, r := range reviews {
		ratings[i] = r.Rating
	}
	return BookReviews{
		Reviews:        reviews,
		RatingSnapshot: Snapshot(reviews),
		TotalReviews:   len(reviews),
		AverageRating:  Average(ratings),
	}, nil
}

func (s *Service) lookupBook(ctx context.Context, id string) (book.Book, error) {
	if _, err := uuid.Parse(id); err != nil {
		return book.Book{}, apperr.NotFound("book not found", book.ErrNotFound)
	}
	b, err := s.books.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, book.ErrNotFound) {
			return book.Book{}, apperr.NotFound("book not found", book.ErrNotFound)
		}
		return book.Book{}, apperr.Unexpected(err)
	}
	return b, nil
}

func (s *Service) logStale(ctx context.Context, rv Review, err error) {
	s.logger.ErrorContext(ctx, "review stored but book rating not updated",
		slog.String("review_id", rv.ID),
		slog.String("book_id", rv.BookID),
		slog.String("error", err.Error()),
	)
}
