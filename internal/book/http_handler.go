package book

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"bookstore/internal/httpx"
)

type HTTPHandler struct {
	service *Service
	logger  *slog.Logger
}

func NewHTTPHandler(service *Service, logger *slog.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, logger: logger}
}

func (h *HTTPHandler) writeBooks(w http.ResponseWriter, r *http.Request, books []Book, err error) {
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.JSONSuccess(w, r, books, map[string]any{"count": len(books)})
}

// Sample handles GET /api/books
func (h *HTTPHandler) Sample(w http.ResponseWriter, r *http.Request) {
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))
	books, err := h.service.Sample(r.Context(), size)
	h.writeBooks(w, r, books, err)
}

// List handles GET /api/books/all
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	h.writeBooks(w, r, books, err)
}

// Search handles GET /api/books/search?title=
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.Search(r.Context(), r.URL.Query().Get("title"))
	h.writeBooks(w, r, books, err)
}

// ByShortTitle handles GET /api/books/shortTitle/{shortTitle}
func (h *HTTPHandler) ByShortTitle(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.ByShortTitle(r.Context(), chi.URLParam(r, "shortTitle"))
	h.writeBooks(w, r, books, err)
}

// ByCategory handles GET /api/books/category/{category}
func (h *HTTPHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.ByCategory(r.Context(), chi.URLParam(r, "category"))
	h.writeBooks(w, r, books, err)
}

// ByAuthor handles GET /api/books/author/{author}
func (h *HTTPHandler) ByAuthor(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.ByAuthor(r.Context(), chi.URLParam(r, "author"))
	h.writeBooks(w, r, books, err)
}

// ByRating handles GET /api/books/rating/{rating}
func (h *HTTPHandler) ByRating(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.ByRatingTier(r.Context(), chi.URLParam(r, "rating"))
	h.writeBooks(w, r, books, err)
}

// BelowThreshold handles GET /api/books/rate/below-5
func (h *HTTPHandler) BelowThreshold(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.BelowThresholdRating(r.Context())
	h.writeBooks(w, r, books, err)
}

// GetByID handles GET /api/books/{id}
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.JSONSuccess(w, r, b, nil)
}
