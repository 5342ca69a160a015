package httpx

import "net/http"

// NotFoundHandler answers unknown routes with the JSON error envelope.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Route not found", nil)
}

// MethodNotAllowedHandler answers known routes called with the wrong method.
func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	JSONError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
}
