package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	"bookstore/internal/apperr"
)

// WriteError renders err with the status of its kind. Unexpected failures are
// logged and reported with an opaque message.
func WriteError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status := apperr.HTTPStatus(err)

	var appErr *apperr.Error
	if errors.As(err, &appErr) && status != http.StatusInternalServerError {
		JSONError(w, r, status, appErr.Code, appErr.Message, nil)
		return
	}

	if logger != nil {
		logger.ErrorContext(r.Context(), "request failed",
			slog.String("request_id", RequestIDFrom(r)),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}
	JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
}
