package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/placez/placez-api/internal/api"
	"github.com/placez/placez-api/internal/domain"
	"github.com/placez/placez-api/internal/geocode"
	"github.com/placez/placez-api/internal/service/auth"
	"github.com/placez/placez-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"ownership failure", domain.ErrForbidden, http.StatusUnauthorized},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"place not found", store.ErrPlaceNotFound, http.StatusNotFound},
		{"email exists", store.ErrEmailExists, http.StatusUnprocessableEntity},
		{"address not found", geocode.ErrAddressNotFound, http.StatusUnprocessableEntity},
		{"validation failure", domain.ErrValidation, http.StatusUnprocessableEntity},
		{"invalid id", domain.ErrInvalidID, http.StatusUnprocessableEntity},
		{"wrapped validation failure", fmt.Errorf("create place: %w", domain.ErrValidation), http.StatusUnprocessableEntity},
		{"unknown error", errors.New("disk on fire"), http.StatusInternalServerError},
		{"nil error", nil, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, api.MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("internal details never leak", func(t *testing.T) {
		t.Parallel()

		err := errors.New("pq: connection refused at 10.0.0.5:27017")
		msg := api.GetSafeErrorMessage(err)
		assert.NotContains(t, msg, "10.0.0.5")
		assert.Equal(t, "An unexpected error occurred", msg)
	})

	t.Run("validation errors name the field", func(t *testing.T) {
		t.Parallel()

		err := domain.NewValidationError("description", "must be at least 4 characters", domain.ErrValidation)
		assert.Equal(t, "Invalid description: must be at least 4 characters", api.GetSafeErrorMessage(err))
	})

	t.Run("duplicate email keeps the legacy message", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "User exists already, please login instead", api.GetSafeErrorMessage(store.ErrEmailExists))
	})
}
