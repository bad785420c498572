package security

import (
	"net/url"
	"regexp"
)

var (
	unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
	tmdbKeyPattern = regexp.MustCompile(`^[a-fA-F0-9]{32}$`)
)

// APIKeyValidator provides validation and safe handling of API keys
type APIKeyValidator struct {
	minLength int
	maxLength int
}

// NewAPIKeyValidator creates a new API key validator with reasonable defaults
func NewAPIKeyValidator() *APIKeyValidator {
	return &APIKeyValidator{
		minLength: 8,
		maxLength: 128,
	}
}

// ValidateAPIKey validates API key format and length
func (v *APIKeyValidator) ValidateAPIKey(apiKey string) bool {
	if apiKey == "" {
		return false
	}

	if len(apiKey) < v.minLength || len(apiKey) > v.maxLength {
		return false
	}

	return !unsafeKeyChars.MatchString(apiKey)
}

// MaskAPIKey creates a masked version for logging (shows only first/last few chars)
func (v *APIKeyValidator) MaskAPIKey(apiKey string) string {
	if len(apiKey) == 0 {
		return "[empty]"
	}

	if len(apiKey) <= 8 {
		return "[***]"
	}

	return apiKey[:3] + "..." + apiKey[len(apiKey)-3:]
}

// IsValidTMDBKey validates the v3 TMDB key format (32 hex characters)
func (v *APIKeyValidator) IsValidTMDBKey(apiKey string) bool {
	if !v.ValidateAPIKey(apiKey) {
		return false
	}
	return tmdbKeyPattern.MatchString(apiKey)
}

// RedactURL masks the api_key query parameter so the URL can be logged.
// Unparseable input is returned fully masked.
func (v *APIKeyValidator) RedactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "[unparseable url]"
	}
	q := u.Query()
	if key := q.Get("api_key"); key != "" {
		q.Set("api_key", v.MaskAPIKey(key))
		u.RawQuery = q.Encode()
	}
	return u.String()
}
