// Package middleware provides the HTTP middleware chain: authentication,
// CSRF protection, CORS, trace IDs, and login rate limiting.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/placez/placez-api/internal/api/shared"
	"github.com/placez/placez-api/internal/service/auth"
)

// tokenCookieName is the HTTP-only cookie the token is delivered in as
// an alternative to the Authorization header.
const tokenCookieName = "token"

// AuthMiddleware gates protected routes on a verified token.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// Authenticate extracts the token from the Authorization header or the
// token cookie, cryptographically verifies it, and adds the user ID to
// the request context. Requests without a valid token are rejected
// before any downstream handler runs. CORS preflight requests bypass
// the gate unconditionally.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		token, err := extractToken(r)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
			case errors.Is(err, auth.ErrMalformedToken), errors.Is(err, auth.ErrMissingToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			case errors.Is(err, auth.ErrInvalidToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			default:
				slog.Error("failed to validate token", "error", err)
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractToken reads the credential from the Authorization header,
// falling back to the token cookie. Both transports verify identically;
// there is no trust difference between them.
func extractToken(r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return "", auth.ErrMissingToken
		}
		return parts[1], nil
	}

	cookie, err := r.Cookie(tokenCookieName)
	if err != nil || cookie.Value == "" {
		return "", auth.ErrMissingToken
	}
	return cookie.Value, nil
}

// GetUserID extracts the authenticated user ID from the request context.
// Returns the ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (primitive.ObjectID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(primitive.ObjectID)
	return userID, ok
}
