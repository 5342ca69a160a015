package user

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPHandler_Register(t *testing.T) {
	handler := NewHTTPHandler(NewService(newMemoryRepo()), nil)

	valid := `{"firstName":"Ada","lastName":"L","phoneNumber":"1","email":"ada@example.com","password":"secret1"}`

	w := httptest.NewRecorder()
	handler.Register(w, httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(valid)))
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "secret1")
	assert.NotContains(t, w.Body.String(), "password")

	w = httptest.NewRecorder()
	handler.Register(w, httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(valid)))
	assert.Equal(t, http.StatusConflict, w.Code)

	w = httptest.NewRecorder()
	handler.Register(w, httptest.NewRequest(http.MethodPost, "/register",
		strings.NewReader(`{"firstName":"Ada","lastName":"L","phoneNumber":"1","email":"nope","password":"secret1"}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email")
}
