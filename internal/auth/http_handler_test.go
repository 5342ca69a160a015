package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore/internal/httpx"
)

func TestHTTPHandler_LoginLogoutRevokesToken(t *testing.T) {
	service, bl := newTestService(t)
	handler := NewHTTPHandler(service, nil)

	w := httptest.NewRecorder()
	handler.Login(w, httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"email":"ada@example.com","password":"secret1"}`)))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data LoginResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	token := body.Data.Token
	require.NotEmpty(t, token)

	protected := httpx.AuthMiddleware(testSecret, bl)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	call := func() int {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, r)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, call())

	r := httptest.NewRequest(http.MethodPost, "/logout", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	handler.Logout(w, r)
	assert.Equal(t, http.StatusNoContent, w.Code)

	assert.Equal(t, http.StatusUnauthorized, call())
}

func TestHTTPHandler_Login_Failures(t *testing.T) {
	service, _ := newTestService(t)
	handler := NewHTTPHandler(service, nil)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"missing password", `{"email":"ada@example.com"}`, http.StatusBadRequest},
		{"unknown user", `{"email":"bob@example.com","password":"x"}`, http.StatusNotFound},
		{"bad password", `{"email":"ada@example.com","password":"x"}`, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.Login(w, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.body)))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestHTTPHandler_Logout_NoToken(t *testing.T) {
	service, _ := newTestService(t)
	handler := NewHTTPHandler(service, nil)

	w := httptest.NewRecorder()
	handler.Logout(w, httptest.NewRequest(http.MethodPost, "/logout", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
