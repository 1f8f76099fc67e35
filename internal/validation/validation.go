// Package validation holds pure checks for suggestion payloads. Nothing in
// here touches the database.
package validation

import (
	"net/url"
	"strings"
)

// SuggestionPayload is the client-supplied portion of a suggestion.
type SuggestionPayload struct {
	EstablishedPlatform string `json:"establishedPlatform"`
	AlternativeName     string `json:"alternativeName"`
	URL                 string `json:"url"`
	Description         string `json:"description"`
	Tag                 string `json:"tag"`
	SubmitterEmail      string `json:"submitterEmail"`
}

// FieldError describes a single invalid field.
type FieldError struct {
	Field   string
	Message string
}

// MissingFields returns the names of required fields that are empty after
// trimming.
func MissingFields(p *SuggestionPayload) []string {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"establishedPlatform", p.EstablishedPlatform},
		{"alternativeName", p.AlternativeName},
		{"url", p.URL},
		{"description", p.Description},
		{"tag", p.Tag},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// ValidateURL checks that a URL is absolute and uses an allowed scheme
// (http/https only). This keeps javascript:, data:, and scheme-relative
// values out of the directory.
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}

// ValidateSuggestion runs all payload checks. The returned errors cover every
// failing field; callers surface the first one.
func ValidateSuggestion(p *SuggestionPayload) []FieldError {
	var errs []FieldError

	for _, name := range MissingFields(p) {
		errs = append(errs, FieldError{Field: name, Message: "Missing required fields"})
	}
	if len(errs) > 0 {
		return errs
	}

	if valid, msg := ValidateURL(strings.TrimSpace(p.URL)); !valid {
		errs = append(errs, FieldError{Field: "url", Message: msg})
	}

	return errs
}
