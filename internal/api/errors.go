package api

import (
	"errors"
	"net/http"

	"github.com/placez/placez-api/internal/api/shared"
	"github.com/placez/placez-api/internal/domain"
	"github.com/placez/placez-api/internal/geocode"
	"github.com/placez/placez-api/internal/service/auth"
	"github.com/placez/placez-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes based
// on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication and ownership errors. Ownership failures share
	// 401 with bad credentials rather than using 403, which is
	// reserved for CSRF rejections.
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrForbidden):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrPlaceNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Input errors all map to 422
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrEmailExists),
		errors.Is(err, geocode.ErrAddressNotFound):
		return http.StatusUnprocessableEntity

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the
// given error. Raw error strings never reach the client.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials, could not log you in"

	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrForbidden):
		return "You are not allowed to perform this operation"

	case errors.Is(err, store.ErrUserNotFound):
		return "Could not find a user for the provided id"

	case errors.Is(err, store.ErrPlaceNotFound):
		return "Could not find a place for the provided id"

	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, store.ErrEmailExists):
		return "User exists already, please login instead"

	case errors.Is(err, geocode.ErrAddressNotFound):
		return "Could not find a location for the given address"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid id format"

	case errors.Is(err, domain.ErrValidation):
		var ve *domain.ValidationError
		if errors.As(err, &ve) && ve.Field != "" {
			return "Invalid " + ve.Field + ": " + ve.Reason
		}
		return "Invalid inputs passed, please check your data"

	default:
		return "An unexpected error occurred"
	}
}

// HandleServiceError maps a service-layer error onto the wire: status
// from MapErrorToStatusCode, message from GetSafeErrorMessage, with the
// underlying error logged but never exposed.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
