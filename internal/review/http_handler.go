package review

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"bookstore/internal/apperr"
	"bookstore/internal/httpx"
)

type HTTPHandler struct {
	service *Service
	logger  *slog.Logger
}

func NewHTTPHandler(service *Service, logger *slog.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, logger: logger}
}

// ratingField holds a rating sent either as a JSON number or as a numeric string.
type ratingField string

func (f *ratingField) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = ratingField(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = ratingField(n.String())
	return nil
}

// Int accepts whole numbers in [MinRating, MaxRating]; 4.0 and "4" are both 4.
func (f ratingField) Int() (int, error) {
	v, err := strconv.ParseFloat(string(f), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) || v < MinRating || v > MaxRating {
		return 0, apperr.Validation("rating must be a whole number between 1 and 5")
	}
	return int(v), nil
}

type submitReviewReq struct {
	BookID      string      `json:"bookId" validate:"required"`
	Rating      ratingField `json:"rating" validate:"required" swaggertype:"integer"`
	Review      string      `json:"review" validate:"required"`
	ReviewTitle string      `json:"reviewTitle" validate:"required"`
	Nickname    string      `json:"nickname" validate:"required"`
	Email       string      `json:"email" validate:"required"`
	Location    string      `json:"location" validate:"required"`
	Incentive   string      `json:"incentive"`
}

// Submit handles POST /api/reviews
// @Summary Submit a review
// @Description Store a review and recompute the book's average rating
// @Tags reviews
// @Accept json
// @Produce json
// @Param request body submitReviewReq true "Review"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /api/reviews [post]
func (h *HTTPHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitReviewReq
	if !httpx.DecodeAndValidate(w, r, &req) {
		return
	}
	rating, err := req.Rating.Int()
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	res, err := h.service.Submit(r.Context(), SubmitInput{
		BookID:      req.BookID,
		Rating:      rating,
		Review:      req.Review,
		ReviewTitle: req.ReviewTitle,
		Nickname:    req.Nickname,
		Email:       req.Email,
		Location:    req.Location,
		Incentive:   req.Incentive,
	})
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.JSONSuccessCreated(w, r, res)
}

// ListForBook handles GET /api/reviews/book/{bookId}
// @Summary List reviews of a book
// @Tags reviews
// @Produce json
// @Param bookId path string true "Book ID"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/reviews/book/{bookId} [get]
func (h *HTTPHandler) ListForBook(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.ListForBook(r.Context(), chi.URLParam(r, "bookId"))
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.JSONSuccess(w, r, res, nil)
}
