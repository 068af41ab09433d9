// Package redact scrubs sensitive values from strings before they are
// logged: connection strings, signed tokens, API keys, email addresses,
// and on-disk paths all flow through error messages at one point or
// another.
package redact

import "regexp"

// Redaction placeholders.
const (
	RedactedCredential = "[REDACTED_CREDENTIAL]"
	RedactedToken      = "[REDACTED_TOKEN]"
	RedactedKey        = "[REDACTED_KEY]"
	RedactedEmail      = "[REDACTED_EMAIL]"
	RedactedPath       = "[REDACTED_PATH]"
)

var (
	// MongoDB connection strings with embedded credentials.
	mongoURIRegex = regexp.MustCompile(`(?i)mongodb(\+srv)?://[^@\s]+@`)

	// Signed tokens (three base64url segments).
	jwtRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)

	// API keys in query strings or key/value form, as the geocoding
	// client builds them.
	apiKeyRegex = regexp.MustCompile(`(?i)(api[_-]?key|key|secret|token)(['":\s=]+)[A-Za-z0-9_\-.~+/]{8,}`)

	// Password assignments.
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]['"]?)[^'"&\s]{3,}`)

	// Email addresses.
	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Unix-style absolute paths, as upload failures surface them.
	pathRegex = regexp.MustCompile(`(/[\w.-]+){2,}`)

	replacements = []struct {
		re          *regexp.Regexp
		placeholder string
	}{
		{mongoURIRegex, RedactedCredential},
		{jwtRegex, RedactedToken},
		{apiKeyRegex, "$1$2" + RedactedKey},
		{passwordRegex, "$1$2" + RedactedCredential},
		{emailRegex, RedactedEmail},
		{pathRegex, RedactedPath},
	}
)

// String returns the input with all recognized sensitive fragments
// replaced by placeholders.
func String(input string) string {
	out := input
	for _, r := range replacements {
		out = r.re.ReplaceAllString(out, r.placeholder)
	}
	return out
}

// Error is String applied to an error's message. A nil error yields "".
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
