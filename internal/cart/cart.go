package cart

import (
	"errors"
	"fmt"
	"time"

	"bookstore/internal/book"
	"bookstore/internal/lineitem"
)

var (
	ErrCartNotFound = errors.New("cart not found")
	ErrItemNotFound = errors.New("book not found in cart")
)

// Flat discount subtracted from the list price for display.
const discount = 5.0

type Item struct {
	BookID   string `json:"bookId"`
	Quantity int    `json:"quantity"`
}

func (i Item) Key() string { return i.BookID }

// Cart is the single cart document of a user. Items hold at most one entry per book.
type Cart struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Items     []Item    `json:"items"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Add merges quantity into the existing line for bookID or appends a new line.
func (c *Cart) Add(bookID string, quantity int) {
	if i := lineitem.IndexOf(c.Items, bookID); i >= 0 {
		c.Items[i].Quantity += quantity
		return
	}
	c.Items = append(c.Items, Item{BookID: bookID, Quantity: quantity})
}

func (c *Cart) Remove(bookID string) bool {
	var removed bool
	c.Items, removed = lineitem.Remove(c.Items, bookID)
	return removed
}

func (c *Cart) Clear() {
	c.Items = []Item{}
}

type ViewItem struct {
	BookID          string  `json:"bookId"`
	ShortTitle      string  `json:"shortTitle"`
	FullTitle       string  `json:"fullTitle"`
	Price           float64 `json:"price"`
	DiscountedPrice string  `json:"discountedPrice"`
	Category        string  `json:"category"`
	Author          string  `json:"author"`
	Stock           int     `json:"stock"`
	Image           string  `json:"image"`
	Quantity        int     `json:"quantity"`
}

// View is a cart with each line resolved to the book's display fields.
type View struct {
	ID     string     `json:"id"`
	UserID string     `json:"userId"`
	Items  []ViewItem `json:"items"`
}

func newViewItem(it Item, b book.Book, ok bool) ViewItem {
	if !ok {
		return ViewItem{
			BookID:          it.BookID,
			ShortTitle:      book.MissingText,
			FullTitle:       book.MissingText,
			DiscountedPrice: "0.00",
			Category:        book.MissingText,
			Author:          book.MissingText,
			Image:           book.MissingImage,
			Quantity:        it.Quantity,
		}
	}
	return ViewItem{
		BookID:          it.BookID,
		ShortTitle:      b.ShortTitle,
		FullTitle:       b.FullTitle,
		Price:           b.Price,
		DiscountedPrice: fmt.Sprintf("%.2f", b.Price-discount),
		Category:        b.Category,
		Author:          b.Author,
		Stock:           b.Stock,
		Image:           b.Image,
		Quantity:        it.Quantity,
	}
}
