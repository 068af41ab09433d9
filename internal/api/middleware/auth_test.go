package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/placez/placez-api/internal/api/middleware"
	"github.com/placez/placez-api/internal/mocks"
	"github.com/placez/placez-api/internal/service/auth"
)

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	userID := primitive.NewObjectID()

	tests := []struct {
		name           string
		setupRequest   func(r *http.Request)
		jwtService     *mocks.MockJWTService
		expectedStatus int
		expectNext     bool
	}{
		{
			name: "valid bearer token passes and injects user ID",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer valid-token")
			},
			jwtService: &mocks.MockJWTService{
				Claims: &auth.Claims{UserID: userID, Email: "user@example.com"},
			},
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name: "valid cookie token passes",
			setupRequest: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "token", Value: "valid-token"})
			},
			jwtService: &mocks.MockJWTService{
				Claims: &auth.Claims{UserID: userID, Email: "user@example.com"},
			},
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "missing token rejected",
			setupRequest:   func(r *http.Request) {},
			jwtService:     &mocks.MockJWTService{},
			expectedStatus: http.StatusUnauthorized,
			expectNext:     false,
		},
		{
			name: "malformed authorization header rejected",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "NotBearer valid-token")
			},
			jwtService:     &mocks.MockJWTService{},
			expectedStatus: http.StatusUnauthorized,
			expectNext:     false,
		},
		{
			name: "expired token rejected",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer expired-token")
			},
			jwtService: &mocks.MockJWTService{
				ValidateErr: auth.ErrExpiredToken,
			},
			expectedStatus: http.StatusUnauthorized,
			expectNext:     false,
		},
		{
			name: "invalid signature rejected",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer tampered-token")
			},
			jwtService: &mocks.MockJWTService{
				ValidateErr: auth.ErrInvalidToken,
			},
			expectedStatus: http.StatusUnauthorized,
			expectNext:     false,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotID, ok := middleware.GetUserID(r)
				require.True(t, ok, "user ID should be in context")
				assert.Equal(t, userID, gotID)
				w.WriteHeader(http.StatusOK)
			})

			m := middleware.NewAuthMiddleware(tc.jwtService)

			req := httptest.NewRequest(http.MethodGet, "/api/places/user/abc", nil)
			tc.setupRequest(req)
			rr := httptest.NewRecorder()

			m.Authenticate(next).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Equal(t, tc.expectNext, nextCalled)
		})
	}
}

func TestAuthenticateSkipsPreflight(t *testing.T) {
	t.Parallel()

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusNoContent)
	})

	// No token anywhere; preflight still passes.
	m := middleware.NewAuthMiddleware(&mocks.MockJWTService{ValidateErr: auth.ErrInvalidToken})

	req := httptest.NewRequest(http.MethodOptions, "/api/places", nil)
	rr := httptest.NewRecorder()

	m.Authenticate(next).ServeHTTP(rr, req)

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}
