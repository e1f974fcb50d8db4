package errors

import (
	"regexp"
	"unicode"
)

// languageRegex matches the language keys used by translated collections:
// BCP 47-ish tags ("en", "fr", "zh-Hant", "pt_BR") and the "default" key.
var languageRegex = regexp.MustCompile(`^[A-Za-z]{2,8}([-_][A-Za-z0-9]{1,8})*$`)

// ValidateLanguage validates a language key of a translated collection.
//
// The validation rules are intentionally conservative:
//   - No empty keys
//   - No control characters
//   - Letters first, then optional "-" or "_" separated subtags
//   - Maximum length of 35 characters
func ValidateLanguage(lang string) error {
	if lang == "" {
		return New(ErrCodeInvalidLanguage, "language cannot be empty")
	}

	if len(lang) > 35 {
		return New(ErrCodeInvalidLanguage, "language too long (max 35 characters)")
	}

	for _, r := range lang {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidLanguage, "language contains invalid control characters")
		}
	}

	if !languageRegex.MatchString(lang) {
		return New(ErrCodeInvalidLanguage, "invalid language: %q", lang)
	}

	return nil
}

// ValidateCapacity validates the row capacity of a grid that is about to be
// allocated cell by cell. Zero is accepted: it is the capacity of an empty
// layout.
func ValidateCapacity(capacity int) error {
	if capacity < 0 {
		return New(ErrCodeInvalidInput, "row capacity cannot be negative (got %d)", capacity)
	}

	const maxCapacity = 1 << 16
	if capacity > maxCapacity {
		return New(ErrCodeInvalidInput, "row capacity too large (max %d, got %d)", maxCapacity, capacity)
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !hasHTTPScheme(rawURL) {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}

func hasHTTPScheme(s string) bool {
	const http, https = "http://", "https://"
	return len(s) > len(http) && s[:len(http)] == http ||
		len(s) > len(https) && s[:len(https)] == https
}
