package book

import (
	"errors"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

const (
	// AllSentinel disables the category and author filters.
	AllSentinel = "All"

	// BelowThreshold is the exclusive upper bound of the below-rating listing.
	BelowThreshold = 4.5

	// DefaultSampleSize is used when no sample size is configured.
	DefaultSampleSize = 1000
)

// Placeholders shown for cart and wishlist entries whose book no longer exists.
const (
	MissingText  = "Unknown"
	MissingImage = "undown"
)

// Book represents a book entity. Ratings is nil until the first review.
type Book struct {
	ID          string   `json:"id"`
	ShortTitle  string   `json:"shortTitle"`
	FullTitle   string   `json:"fullTitle"`
	Author      string   `json:"author"`
	Ratings     *float64 `json:"ratings"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Stock       int      `json:"stock"`
	Image       string   `json:"image"`
	ISBN        string   `json:"isbn"`
	Description string   `json:"description"`
}

// Filter selects books. Zero-valued fields are ignored; set fields are ANDed.
type Filter struct {
	Category    string
	Author      string // case-insensitive substring
	Title       string // case-insensitive substring of full or short title
	ShortTitle  string // case-insensitive equality
	RatingEq    *float64
	RatingMin   *float64
	RatingBelow *float64
}
