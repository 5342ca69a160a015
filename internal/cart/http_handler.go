package cart

import (
	"log/slog"
	"net/http"

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

type addReq struct {
	UserID   string `json:"userId" validate:"required"`
	BookID   string `json:"bookId" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

// Add handles POST /api/cart
// @Summary Add a book to the cart
// @Description Adding a book already in the cart increases its quantity
// @Tags cart
// @Accept json
// @Produce json
// @Param request body addReq true "Cart line"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Router /api/cart [post]
func (h *HTTPHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addReq
	if !httpx.DecodeAndValidate(w, r, &req) {
		return
	}
	if uid := httpx.UserIDFrom(r); uid != "" && uid != req.UserID {
		httpx.JSONError(w, r, http.StatusForbidden, "FORBIDDEN", "Forbidden", nil)
		return
	}

	c, err := h.service.Add(r.Context(), req.UserID, req.BookID, req.Quantity)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.JSONSuccess(w, r, c, nil)
}

// Get handles GET /api/cart/{userId}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Get(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.JSONSuccess(w, r, view, nil)
}

// Remove handles DELETE /api/cart/{userId}/{bookId}
func (h *HTTPHandler) Remove(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Remove(r.Context(), chi.URLParam(r, "userId"), chi.URLParam(r, "bookId"))
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.JSONSuccess(w, r, c, nil)
}

// Clear handles DELETE /api/cart/{userId}
func (h *HTTPHandler) Clear(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Clear(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.JSONSuccess(w, r, c, nil)
}
