package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouter_UnsupportedMethodHidesRoute(t *testing.T) {
	router := newTestRouter(t, &authServiceMock{}, &userServiceMock{})

	tests := []struct {
		name   string
		method string
		target string
	}{
		{"GET on register", http.MethodGet, "/register"},
		{"DELETE on token", http.MethodDelete, "/token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			// 404 instead of chi's default 405 so unsupported methods do not
			// reveal that the route exists
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := newTestRouter(t, &authServiceMock{}, &userServiceMock{})

	req := httptest.NewRequest(http.MethodGet, "/definitely-not-registered", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
