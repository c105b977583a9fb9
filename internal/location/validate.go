package location

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// cityNamePattern admits letters, whitespace, commas, and hyphens only.
var cityNamePattern = regexp.MustCompile(`^[A-Za-z\s,-]+$`)

// ValidateCityName checks free-text input before any network call is made.
// Failures are ErrValidation with a user-facing reason.
func ValidateCityName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("%w: please enter a city name", ErrValidation)
	}
	if utf8.RuneCountInString(trimmed) < 2 {
		return fmt.Errorf("%w: city name must be at least 2 characters long", ErrValidation)
	}
	if !cityNamePattern.MatchString(trimmed) {
		return fmt.Errorf("%w: city name can only contain letters, spaces, commas, and hyphens", ErrValidation)
	}
	return nil
}

// CacheKey normalizes a user query to its cache key: the lower-cased, trimmed
// portion before the first comma, so "Paris, France" and "paris" collide.
func CacheKey(cityText string) string {
	part, _, _ := strings.Cut(cityText, ",")
	return strings.ToLower(strings.TrimSpace(part))
}
