package ai

import "strings"

// Error-text classifiers for the fallback loop. The provider reports
// failures as messages, not structured codes, so matching is textual and
// case-insensitive.

// IsQuotaExceeded reports a provider rate/usage limit.
func IsQuotaExceeded(msg string) bool {
	m := strings.ToLower(msg)
	return strings.Contains(m, "quota") ||
		strings.Contains(m, "[429") ||
		strings.Contains(m, "resource_exhausted")
}

// IsGeoBlocked reports a refusal based on the caller's network origin.
func IsGeoBlocked(msg string) bool {
	return strings.Contains(strings.ToLower(msg), "user location is not supported")
}

// IsModelNotFound reports a model identifier the provider does not serve or
// does not support for content generation. The only retryable class.
func IsModelNotFound(msg string) bool {
	m := strings.ToLower(msg)
	return strings.Contains(m, "not found") ||
		strings.Contains(m, "not supported for generatecontent")
}
