package wishlist

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
	UserID string `json:"userId" validate:"required"`
	BookID string `json:"bookId" validate:"required"`
}

func (h *HTTPHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addReq
	if !httpx.DecodeAndValidate(w, r, &req) {
		return
	}
	if uid := httpx.UserIDFrom(r); uid != "" && uid != req.UserID {
		httpx.JSONError(w, r, http.StatusForbidden, "FORBIDDEN", "Forbidden", nil)
		return
	}

	wl, err := h.service.Add(r.Context(), req.UserID, req.BookID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.JSONSuccess(w, r, wl, nil)
}

func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.Get(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.JSONSuccess(w, r, view, nil)
}

func (h *HTTPHandler) Remove(w http.ResponseWriter, r *http.Request) {
	wl, err := h.service.Remove(r.Context(), chi.URLParam(r, "userId"), chi.URLParam(r, "bookId"))
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.JSONSuccess(w, r, wl, nil)
}
