package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"log/slog"
	"net/http"

	"github.com/placez/placez-api/internal/api/shared"
	"github.com/placez/placez-api/internal/platform/logger"
)

const (
	// csrfCookieName holds the CSRF token. It is deliberately not
	// HttpOnly: the front end reads it to echo it back in the header.
	csrfCookieName = "csrf_token"

	// csrfHeaderName is the header state-changing requests must carry.
	csrfHeaderName = "X-CSRF-Token"

	csrfCookieMaxAge = 86400
)

// CSRF returns a double-submit-cookie middleware. Safe methods (GET,
// HEAD, OPTIONS) pass through and get a token cookie if missing;
// state-changing methods must present a header token matching the cookie.
func CSRF() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isSafeMethod(r.Method) {
				ensureCSRFCookie(w, r)
				next.ServeHTTP(w, r)
				return
			}

			log := logger.FromContextOrDefault(r.Context(), slog.Default())

			cookie, err := r.Cookie(csrfCookieName)
			if err != nil || cookie.Value == "" {
				log.Warn("CSRF validation failed: missing cookie token",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path))
				shared.RespondWithError(w, r, http.StatusForbidden, "CSRF token validation failed")
				return
			}

			headerToken := r.Header.Get(csrfHeaderName)
			if subtle.ConstantTimeCompare([]byte(cookie.Value), []byte(headerToken)) != 1 {
				log.Warn("CSRF validation failed: token mismatch",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path))
				shared.RespondWithError(w, r, http.StatusForbidden, "CSRF token validation failed")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// CSRFTokenHandler serves GET /api/csrf-token: it returns the current
// token, minting one (and setting the cookie) if the client has none.
func CSRFTokenHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var token string

		if cookie, err := r.Cookie(csrfCookieName); err == nil && cookie.Value != "" {
			token = cookie.Value
		} else {
			var err error
			token, err = generateCSRFToken()
			if err != nil {
				logger.FromContextOrDefault(r.Context(), slog.Default()).Error("failed to generate CSRF token", slog.String("error", err.Error()))
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Internal server error")
				return
			}
			setCSRFCookie(w, token)
		}

		shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"csrfToken": token})
	})
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	default:
		return false
	}
}

func ensureCSRFCookie(w http.ResponseWriter, r *http.Request) {
	if _, err := r.Cookie(csrfCookieName); err == nil {
		return
	}

	token, err := generateCSRFToken()
	if err != nil {
		logger.FromContextOrDefault(r.Context(), slog.Default()).Error("failed to generate CSRF token", slog.String("error", err.Error()))
		return
	}
	setCSRFCookie(w, token)
}

func setCSRFCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     csrfCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   csrfCookieMaxAge,
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	})
}

func generateCSRFToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
