package ai

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"
)

// DefaultModelID is the hardcoded safe choice used when discovery fails.
const DefaultModelID = "gemini-2.5-flash"

// modelCacheTTL bounds how long a discovered identifier is reused before the
// listing endpoint is consulted again.
const modelCacheTTL = 10 * time.Minute

// NormalizeModelID strips the "models/" namespace prefix the listing
// endpoint uses; the SDK wants bare identifiers.
func NormalizeModelID(id string) string {
	trimmed := strings.TrimSpace(id)
	return strings.TrimPrefix(trimmed, "models/")
}

// Resolver decides which model identifier to address, minimizing calls to
// the listing endpoint. The cached value plus its timestamp is the only
// shared mutable state in the pipeline.
type Resolver struct {
	lister    ModelLister
	preferred string
	now       func() time.Time

	mu       sync.Mutex
	cached   string
	cachedAt time.Time
}

// NewResolver creates a Resolver. A non-empty preferred identifier is always
// returned as-is (normalized) with no cache and no listing call.
func NewResolver(lister ModelLister, preferred string) *Resolver {
	return &Resolver{
		lister:    lister,
		preferred: preferred,
		now:       time.Now,
	}
}

// Resolve returns the model identifier to use. Discovery failures never
// propagate; the hardcoded default is returned instead.
func (r *Resolver) Resolve(ctx context.Context) string {
	if r.preferred != "" {
		return NormalizeModelID(r.preferred)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if r.cached != "" && now.Sub(r.cachedAt) < modelCacheTTL {
		return r.cached
	}

	ids, err := r.lister.ListModelIDs(ctx)
	if err != nil {
		log.Printf("ai: list models failed, using default model: %v", err)
		return DefaultModelID
	}

	var candidates []string
	for _, id := range ids {
		if n := NormalizeModelID(id); n != "" {
			candidates = append(candidates, n)
		}
	}

	modelID := pickModel(candidates)
	r.cached = modelID
	r.cachedAt = now
	return modelID
}

// Invalidate clears the cached identifier, forcing re-resolution on the next
// call. Used after a "model not found" failure on the cached value.
func (r *Resolver) Invalidate() {
	r.mu.Lock()
	r.cached = ""
	r.cachedAt = time.Time{}
	r.mu.Unlock()
}

// pickModel prefers Flash 2.5, then any Flash that is not a lite variant,
// then anything in the Gemini family, then the first candidate.
func pickModel(candidates []string) string {
	if len(candidates) == 0 {
		return DefaultModelID
	}
	for _, m := range candidates {
		if strings.Contains(m, "2.5") && strings.Contains(m, "flash") {
			return m
		}
	}
	for _, m := range candidates {
		if strings.Contains(m, "flash") && !strings.Contains(m, "lite") {
			return m
		}
	}
	for _, m := range candidates {
		if strings.Contains(m, "gemini") {
			return m
		}
	}
	return candidates[0]
}
