package main

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"

	"bookstore/internal/ad"
	"bookstore/internal/book"
	"bookstore/internal/review"
)

var (
	categories = []string{"Fiction", "Science Fiction", "History", "Science", "Technology", "Romance", "Mystery", "Biography", "Philosophy", "Art"}
	authors    = []string{"Ada Whitfield", "Bram Okafor", "Clara Mendes", "Dmitri Volkov", "Esi Mensah", "Farah Haddad", "Gustav Lind", "Hana Sato"}
	words      = []string{
		"Adventure", "Mystery", "Journey", "Discovery", "Secrets", "Dreams", "Hope",
		"Love", "War", "Peace", "Science", "Nature", "Technology", "History", "Future",
		"Past", "Present", "Reality", "Imagination", "Wisdom", "Life", "Light",
		"Darkness", "World", "Universe", "Time", "Space", "Mind", "Soul",
	}
)

// fixedBooks is a small hand-picked catalogue that makes the API useful
// straight after seeding. Ids are stable so re-running the seed is a no-op.
func fixedBooks() []book.Book {
	return []book.Book{
		{
			ID: "0b7c2f4e-6a43-4c8e-9e55-1f0d2c9e7a11", ShortTitle: "Dune", FullTitle: "Dune",
			Author: "Frank Herbert", Price: 18.99, Category: "Science Fiction", Stock: 12,
			ISBN: "9780441172719", Description: "A desert planet, a noble family and the spice that rules the universe.",
		},
		{
			ID: "5d1e8a90-3f2b-4b7c-8d6e-2a9f0c4b1e22", ShortTitle: "Gatsby", FullTitle: "The Great Gatsby",
			Author: "F. Scott Fitzgerald", Price: 10.5, Category: "Fiction", Stock: 7,
			ISBN: "9780743273565", Description: "Wealth and longing on Long Island in the summer of 1922.",
		},
		{
			ID: "8f3c1b2a-7d4e-4f5a-9b6c-3e2d1a0f9c33", ShortTitle: "Sapiens", FullTitle: "Sapiens: A Brief History of Humankind",
			Author: "Yuval Noah Harari", Price: 22, Category: "History", Stock: 4,
			ISBN: "9780062316097", Description: "How one species came to dominate the planet.",
		},
		{
			ID: "c2a9e7f1-4b3d-4e6a-8c5f-7d1b0e2a4c44", ShortTitle: "Meditations", FullTitle: "Meditations",
			Author: "Marcus Aurelius", Price: 7.25, Category: "Philosophy", Stock: 0,
			ISBN: "9780140449334", Description: "Private notes of a Roman emperor on duty and self-discipline.",
		},
	}
}

func generateBooks(rnd *rand.Rand, n int) []book.Book {
	out := make([]book.Book, 0, n)
	for i := 0; i < n; i++ {
		word := words[rnd.Intn(len(words))]
		b := book.Book{
			ID:          uuid.NewString(),
			ShortTitle:  fmt.Sprintf("%s %d", word, i+1),
			FullTitle:   fmt.Sprintf("The %s of %s, Volume %d", word, words[rnd.Intn(len(words))], i+1),
			Author:      authors[rnd.Intn(len(authors))],
			Price:       math.Round((5+rnd.Float64()*45)*100) / 100,
			Category:    categories[rnd.Intn(len(categories))],
			Stock:       rnd.Intn(30),
			ISBN:        fmt.Sprintf("978%010d", i+1),
			Description: fmt.Sprintf("A book about %s.", word),
		}
		out = append(out, b)
	}
	return out
}

var (
	nicknames = []string{"bookworm", "nightreader", "marginalia", "dogear", "paperback"}
	locations = []string{"Lisbon", "Nairobi", "Osaka", "Toronto", "Berlin"}
)

// fixedRatings are the star ratings submitted for the fixed catalogue. Books
// without an entry stay unrated.
var fixedRatings = map[string][]int{
	"0b7c2f4e-6a43-4c8e-9e55-1f0d2c9e7a11": {5, 5, 4},
	"5d1e8a90-3f2b-4b7c-8d6e-2a9f0c4b1e22": {4, 4, 3, 5},
	"8f3c1b2a-7d4e-4f5a-9b6c-3e2d1a0f9c33": {5, 4},
}

func newReview(rnd *rand.Rand, bookID string, stars int) review.SubmitInput {
	nick := nicknames[rnd.Intn(len(nicknames))]
	return review.SubmitInput{
		BookID:      bookID,
		Rating:      stars,
		Review:      fmt.Sprintf("A %d-star read.", stars),
		ReviewTitle: words[rnd.Intn(len(words))],
		Nickname:    nick,
		Email:       nick + "@example.com",
		Location:    locations[rnd.Intn(len(locations))],
	}
}

// seedReviews returns the reviews to submit for books. Book ratings are never
// written directly; they come from submitting these through the review service.
// Roughly one in five generated books gets no review.
func seedReviews(rnd *rand.Rand, fixed, generated []book.Book) []review.SubmitInput {
	var out []review.SubmitInput
	for _, b := range fixed {
		for _, stars := range fixedRatings[b.ID] {
			out = append(out, newReview(rnd, b.ID, stars))
		}
	}
	for _, b := range generated {
		if rnd.Intn(5) == 0 {
			continue
		}
		for n := 1 + rnd.Intn(4); n > 0; n-- {
			out = append(out, newReview(rnd, b.ID, review.MinRating+rnd.Intn(review.MaxRating)))
		}
	}
	return out
}

func fixedAds() []ad.Ad {
	return []ad.Ad{
		{ID: "ad-spring-sale", Text: "Spring sale: 5 off every book in your cart"},
		{ID: "ad-free-shipping", Text: "Free shipping on orders over 50"},
		{ID: "ad-reviews", Text: "Review a book you loved and help other readers"},
	}
}
