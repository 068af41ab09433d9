package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placez/placez-api/internal/api/middleware"
)

func TestCSRFSafeMethodsPassThrough(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.CSRF()(next)

	req := httptest.NewRequest(http.MethodGet, "/api/places/abc", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	// A safe request with no cookie gets one minted.
	cookies := rr.Result().Cookies()
	var found bool
	for _, c := range cookies {
		if c.Name == "csrf_token" {
			found = true
			assert.NotEmpty(t, c.Value)
		}
	}
	assert.True(t, found, "expected csrf_token cookie to be set")
}

func TestCSRFRejectsMissingToken(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})
	handler := middleware.CSRF()(next)

	req := httptest.NewRequest(http.MethodPost, "/api/places", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestCSRFRejectsMismatchedToken(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})
	handler := middleware.CSRF()(next)

	req := httptest.NewRequest(http.MethodDelete, "/api/places/abc", nil)
	req.AddCookie(&http.Cookie{Name: "csrf_token", Value: "cookie-value"})
	req.Header.Set("X-CSRF-Token", "different-value")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestCSRFAcceptsMatchingToken(t *testing.T) {
	t.Parallel()

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.CSRF()(next)

	req := httptest.NewRequest(http.MethodPatch, "/api/places/abc", nil)
	req.AddCookie(&http.Cookie{Name: "csrf_token", Value: "matching-token"})
	req.Header.Set("X-CSRF-Token", "matching-token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestCSRFTokenHandler(t *testing.T) {
	t.Parallel()

	t.Run("mints a token for a fresh client", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/api/csrf-token", nil)
		rr := httptest.NewRecorder()
		middleware.CSRFTokenHandler().ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var body map[string]string
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.NotEmpty(t, body["csrfToken"])

		// The same token must land in the cookie for double-submit to work.
		var cookieValue string
		for _, c := range rr.Result().Cookies() {
			if c.Name == "csrf_token" {
				cookieValue = c.Value
			}
		}
		assert.Equal(t, body["csrfToken"], cookieValue)
	})

	t.Run("echoes the existing cookie token", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/api/csrf-token", nil)
		req.AddCookie(&http.Cookie{Name: "csrf_token", Value: "existing-token"})
		rr := httptest.NewRecorder()
		middleware.CSRFTokenHandler().ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var body map[string]string
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.Equal(t, "existing-token", body["csrfToken"])
	})
}
