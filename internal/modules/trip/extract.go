// README: Heuristic extraction of the first JSON value from model text.
package trip

import (
	"regexp"
	"strings"
)

var fenceRe = regexp.MustCompile("(?is)```(?:json)?\\s*(.*?)\\s*```")

// ExtractJSON locates the substring of text most likely to be a single JSON
// value. It does not verify well-formedness; that is the validator's job.
// Returns ok=false when no candidate exists.
func ExtractJSON(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", false
	}

	// Already bare JSON.
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return trimmed, true
	}

	// Wrapped in code fences.
	if m := fenceRe.FindStringSubmatch(trimmed); m != nil {
		inner := strings.TrimSpace(m[1])
		if strings.HasPrefix(inner, "{") || strings.HasPrefix(inner, "[") {
			return inner, true
		}
	}

	// Fallback: slice from the first opening brace/bracket to the last
	// closing one.
	brace := strings.IndexByte(trimmed, '{')
	bracket := strings.IndexByte(trimmed, '[')
	start := brace
	switch {
	case brace == -1:
		start = bracket
	case bracket == -1:
		start = brace
	case bracket < brace:
		start = bracket
	}
	if start == -1 {
		return "", false
	}

	candidate := trimmed[start:]
	end := strings.LastIndexByte(candidate, '}')
	if b := strings.LastIndexByte(candidate, ']'); b > end {
		end = b
	}
	if end == -1 {
		return "", false
	}
	return strings.TrimSpace(candidate[:end+1]), true
}
