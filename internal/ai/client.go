package ai

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// Sentinel failures that bypass candidate fallback entirely: retrying a
// different model cannot help.
var (
	ErrQuotaExceeded = errors.New("gemini quota exceeded")
	ErrGeoBlocked    = errors.New("gemini api is not available from current location")
)

// GenerateError is surfaced when the candidate loop ends without a success.
// Models lists every identifier attempted, for diagnostics only.
type GenerateError struct {
	Models []string
	Last   error
}

func (e *GenerateError) Error() string {
	if e.Last != nil {
		return fmt.Sprintf("generation failed after trying %v: %v", e.Models, e.Last)
	}
	return fmt.Sprintf("generation failed after trying %v", e.Models)
}

func (e *GenerateError) Unwrap() error { return e.Last }

// FallbackModelIDs covers common naming for recent Flash generations, tried
// in order after the resolver's pick.
func FallbackModelIDs() []string {
	return []string{
		"gemini-2.5-flash",
		"gemini-3-flash-preview",
		"gemini-3.0-flash",
		"gemini-2.0-flash",
		"gemini-2.0-flash-lite",
	}
}

// Client runs the sequential model-fallback loop over a Generator.
type Client struct {
	gen       Generator
	resolver  *Resolver
	preferred string
}

// NewClient creates a Client. preferred, when non-empty, is always the first
// candidate.
func NewClient(gen Generator, resolver *Resolver, preferred string) *Client {
	return &Client{gen: gen, resolver: resolver, preferred: preferred}
}

// Generate attempts the prompt against each candidate identifier in order
// until one succeeds or the list is exhausted. Quota and geo failures abort
// immediately; "model not found" advances to the next candidate; any other
// failure aborts the loop. Candidates are tried strictly sequentially so the
// short-circuits stay well-defined and no paid call is made in excess.
// The attempted identifiers are returned for diagnostics in every case.
func (c *Client) Generate(ctx context.Context, prompt string) (string, []string, error) {
	resolved := c.resolver.Resolve(ctx)

	candidates := dedupe(
		NormalizeModelID(c.preferred),
		resolved,
		FallbackModelIDs()...,
	)

	var tried []string
	var lastErr error
	for _, id := range candidates {
		if err := ctx.Err(); err != nil {
			return "", tried, &GenerateError{Models: tried, Last: err}
		}
		tried = append(tried, id)

		text, err := c.gen.GenerateText(ctx, id, prompt)
		if err == nil {
			return text, tried, nil
		}
		lastErr = err
		msg := err.Error()

		if IsQuotaExceeded(msg) {
			return "", tried, fmt.Errorf("%w: %s", ErrQuotaExceeded, msg)
		}
		if IsGeoBlocked(msg) {
			return "", tried, fmt.Errorf("%w: %s", ErrGeoBlocked, msg)
		}
		if IsModelNotFound(msg) {
			log.Printf("ai: model %q unavailable, trying next candidate", id)
			if id == resolved && c.preferred == "" {
				// The discovery cache pointed at a dead model.
				c.resolver.Invalidate()
			}
			continue
		}

		// Unrecognized failure: do not blindly burn the remaining candidates.
		break
	}

	return "", tried, &GenerateError{Models: tried, Last: lastErr}
}

// dedupe keeps the first occurrence of each non-empty identifier, preserving
// priority order.
func dedupe(first, second string, rest ...string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, id := range append([]string{first, second}, rest...) {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
