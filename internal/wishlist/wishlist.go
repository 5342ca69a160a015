package wishlist

import (
	"errors"
	"time"

	"bookstore/internal/book"
	"bookstore/internal/lineitem"
)

var (
	ErrWishlistNotFound = errors.New("wishlist not found")
	ErrAlreadyPresent   = errors.New("book already in wishlist")
)

type Item struct {
	BookID string `json:"bookId"`
}

func (i Item) Key() string { return i.BookID }

// Wishlist is the single wishlist document of a user. A book appears at most once.
type Wishlist struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Items     []Item    `json:"items"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Add appends bookID. It fails with ErrAlreadyPresent instead of merging.
func (wl *Wishlist) Add(bookID string) error {
	if lineitem.Contains(wl.Items, bookID) {
		return ErrAlreadyPresent
	}
	wl.Items = append(wl.Items, Item{BookID: bookID})
	return nil
}

// Remove drops bookID if present.
func (wl *Wishlist) Remove(bookID string) {
	wl.Items, _ = lineitem.Remove(wl.Items, bookID)
}

type ViewItem struct {
	BookID     string `json:"bookId"`
	ShortTitle string `json:"shortTitle"`
	FullTitle  string `json:"fullTitle"`
	Category   string `json:"category"`
	Author     string `json:"author"`
	Image      string `json:"image"`
}

type View struct {
	ID     string     `json:"id"`
	UserID string     `json:"userId"`
	Items  []ViewItem `json:"items"`
}

func newViewItem(it Item, b book.Book, ok bool) ViewItem {
	if !ok {
		return ViewItem{
			BookID:     it.BookID,
			ShortTitle: book.MissingText,
			FullTitle:  book.MissingText,
			Category:   book.MissingText,
			Author:     book.MissingText,
			Image:      book.MissingImage,
		}
	}
	return ViewItem{
		BookID:     it.BookID,
		ShortTitle: b.ShortTitle,
		FullTitle:  b.FullTitle,
		Category:   b.Category,
		Author:     b.Author,
		Image:      b.Image,
	}
}
