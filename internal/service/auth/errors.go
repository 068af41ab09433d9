package auth

import "errors"

// Common authentication service errors. Callers typically collapse these
// to a single 401 response, but the distinction is preserved for logging.
var (
	// ErrInvalidToken indicates the token signature doesn't match or the
	// issuer/audience claims are wrong.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token has expired.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrMalformedToken indicates the token string is not a parseable JWT.
	ErrMalformedToken = errors.New("malformed authentication token")

	// ErrMissingToken indicates a token was expected but not provided.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrInvalidCredentials is returned for a failed login. The same
	// error is used for an unknown email and a wrong password so the
	// response carries no account enumeration signal.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
