// README: Optional Redis-backed cache for generated itinerary responses.
package trip

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultPlanTTL bounds how long a generated plan is reused for an identical
// request.
const DefaultPlanTTL = time.Hour

// Store caches full pipeline responses keyed by the validated request.
// A nil Store disables caching; all methods are nil-safe.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultPlanTTL
	}
	return &Store{rdb: rdb, ttl: ttl}
}

func cacheKey(req TripRequest) string {
	// TripRequest marshals deterministically, so the digest is stable.
	raw, _ := json.Marshal(req)
	return fmt.Sprintf("nevaplan:plan:%x", sha256.Sum256(raw))
}

// Get returns a cached response for the request, if any.
func (s *Store) Get(ctx context.Context, req TripRequest) (*Response, bool) {
	if s == nil || s.rdb == nil {
		return nil, false
	}
	raw, err := s.rdb.Get(ctx, cacheKey(req)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		log.Printf("trip: plan cache read failed: %v", err)
		return nil, false
	}
	var resp Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		log.Printf("trip: plan cache entry corrupt, ignoring: %v", err)
		return nil, false
	}
	return &resp, true
}

// Set stores a response. Failures are logged and otherwise ignored; the
// cache is an optimization, never a dependency.
func (s *Store) Set(ctx context.Context, req TripRequest, resp *Response) {
	if s == nil || s.rdb == nil {
		return
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, cacheKey(req), raw, s.ttl).Err(); err != nil {
		log.Printf("trip: plan cache write failed: %v", err)
	}
}
