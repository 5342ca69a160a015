package review

import (
	"errors"
	"math"
	"strconv"
	"time"

	"bookstore/internal/book"
)

const (
	MinRating = 1
	MaxRating = 5

	// DefaultIncentive is stored when the reviewer leaves incentive empty.
	DefaultIncentive = "No"
)

// ErrNoReviews is wrapped by the not-found error of ListForBook.
var ErrNoReviews = errors.New("no reviews")

// Review is an append-only book review.
type Review struct {
	ID          string    `json:"id"`
	BookID      string    `json:"bookId"`
	Rating      int       `json:"rating"`
	Review      string    `json:"review"`
	ReviewTitle string    `json:"reviewTitle"`
	Nickname    string    `json:"nickname"`
	Email       string    `json:"email"`
	Location    string    `json:"location"`
	Incentive   string    `json:"incentive"`
	CreatedAt   time.Time `json:"createdAt"`
}

type SubmitInput struct {
	BookID      string
	Rating      int
	Review      string
	ReviewTitle string
	Nickname    string
	Email       string
	Location    string
	Incentive   string
}

// SubmitResult is the stored review and the book with its recomputed rating.
type SubmitResult struct {
	Review Review    `json:"review"`
	Book   book.Book `json:"book"`
}

// BookReviews lists the reviews of one book with a per-star breakdown.
type BookReviews struct {
	Reviews        []Review       `json:"reviews"`
	RatingSnapshot map[string]int `json:"ratingSnapshot"`
	TotalReviews   int            `json:"totalReviews"`
	AverageRating  float64        `json:"averageRating"`
}

// Average returns the mean of ratings rounded to one decimal place, or 0 for none.
func Average(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return math.Round(float64(sum)/float64(len(ratings))*10) / 10
}

// Snapshot counts reviews per star value 1..5. Out-of-range ratings are ignored.
func Snapshot(reviews []Review) map[string]int {
	snap := make(map[string]int, MaxRating)
	for star := MinRating; star <= MaxRating; star++ {
		snap[strconv.Itoa(star)] = 0
	}
	for _, r := range reviews {
		if r.Rating >= MinRating && r.Rating <= MaxRating {
			snap[strconv.Itoa(r.Rating)]++
		}
	}
	return snap
}
