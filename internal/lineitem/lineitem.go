// Package lineitem holds the list operations shared by carts and wishlists.
// Items are kept in insertion order and looked up by a linear scan.
package lineitem

// Keyed is a line item identified by the book it references.
type Keyed interface {
	Key() string
}

// IndexOf returns the position of the item for bookID, or -1.
func IndexOf[T Keyed](items []T, bookID string) int {
	for i, it := range items {
		if it.Key() == bookID {
			return i
		}
	}
	return -1
}

func Contains[T Keyed](items []T, bookID string) bool {
	return IndexOf(items, bookID) >= 0
}

// Remove returns items without any entry for bookID, keeping the order of the
// rest, and reports whether anything was dropped. The input slice is not modified.
func Remove[T Keyed](items []T, bookID string) ([]T, bool) {
	out := make([]T, 0, len(items))
	removed := false
	for _, it := range items {
		if it.Key() == bookID {
			removed = true
			continue
		}
		out = append(out, it)
	}
	return out, removed
}
