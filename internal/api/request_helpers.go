package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/placez/placez-api/internal/api/shared"
	"github.com/placez/placez-api/internal/domain"
)

// tokenCookieName must match the name the auth middleware reads.
const tokenCookieName = "token"

// DecodeJSON decodes the request body into the given value.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// getUserIDFromContext extracts the authenticated user's ID from the
// request context, placed there by the authentication middleware.
func getUserIDFromContext(r *http.Request) (primitive.ObjectID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(primitive.ObjectID)
	if !ok || userID.IsZero() {
		return primitive.NilObjectID, false
	}
	return userID, true
}

// getPathObjectID extracts and parses an ObjectID from the URL path.
func getPathObjectID(r *http.Request, paramName string) (primitive.ObjectID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return primitive.NilObjectID, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := primitive.ObjectIDFromHex(pathParam)
	if err != nil {
		return primitive.NilObjectID, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// setTokenCookie delivers the token as an HTTP-only cookie so browser
// clients never have to store it in script-readable state. The response
// body carries the same token for non-browser clients.
func setTokenCookie(w http.ResponseWriter, token string, lifetime time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(lifetime.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
