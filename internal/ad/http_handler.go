package ad

import (
	"log/slog"
	"net/http"

	"bookstore/internal/httpx"
)

type HTTPHandler struct {
	service *Service
	logger  *slog.Logger
}

func NewHTTPHandler(service *Service, logger *slog.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, logger: logger}
}

// List handles GET /api/ads
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	ads, err := h.service.List(r.Context())
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.JSONSuccess(w, r, ads, nil)
}
