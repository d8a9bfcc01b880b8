// README: Trip service: the validate/generate/extract/repair/filter pipeline.
package trip

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"nevaplan/internal/ai"
	"nevaplan/internal/modules/catalog"
)

// Generator abstracts the model-fallback client so tests can inject a fake.
type Generator interface {
	Generate(ctx context.Context, prompt string) (text string, tried []string, err error)
}

// Service wires the pipeline stages together. One Plan call per API request;
// no state beyond the injected collaborators.
type Service struct {
	catalog       *catalog.Service
	gen           Generator
	cache         *Store
	credentialSet bool
}

// NewService creates a Service. gen may be nil when no API credential is
// configured; every Plan call then fails with a missing-credential error.
func NewService(cat *catalog.Service, gen Generator, cache *Store, credentialSet bool) *Service {
	return &Service{catalog: cat, gen: gen, cache: cache, credentialSet: credentialSet}
}

// Plan runs the full pipeline for one untyped payload. All failures are
// returned as *PlanError so the handler can map them to statuses.
func (s *Service) Plan(ctx context.Context, payload []byte) (*Response, error) {
	if !s.credentialSet || s.gen == nil {
		log.Printf("trip: missing GEMINI_API_KEY")
		return nil, &PlanError{Kind: KindMissingCredential, Msg: "missing GEMINI_API_KEY environment variable"}
	}

	req, fieldErrs := ValidateRequest(payload)
	if len(fieldErrs) > 0 {
		log.Printf("trip: invalid request: %v", fieldErrs)
		return nil, &PlanError{Kind: KindInvalidInput, Msg: "invalid request", Fields: fieldErrs}
	}

	if cached, ok := s.cache.Get(ctx, req); ok {
		log.Printf("trip: plan cache hit (%s)", safeRequestForLog(req))
		return cached, nil
	}

	candidates := s.catalog.FilterByRegion(req.BaseRegion)
	prompt := BuildPrompt(req, candidates)

	text, tried, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, classifyGenerateError(err, tried, req)
	}

	jsonText, ok := ExtractJSON(text)
	if !ok {
		log.Printf("trip: model did not return JSON (models=%v request=%s raw=%s)",
			tried, safeRequestForLog(req), logTrunc(text, 4000))
		return nil, &PlanError{Kind: KindExtractionFailed, Msg: "model did not return JSON", RawText: text}
	}

	parsed, err := ParseJSON(jsonText)
	if err != nil {
		log.Printf("trip: failed to parse JSON (models=%v request=%s err=%v json=%s)",
			tried, safeRequestForLog(req), err, logTrunc(jsonText, 4000))
		return nil, &PlanError{Kind: KindParseFailed, Msg: "failed to parse JSON", RawText: text, cause: err}
	}

	itinerary, issues := ValidateItinerary(parsed)
	if issues != nil {
		repaired, actions := RepairShape(parsed)
		if len(actions) > 0 {
			trace, _ := json.Marshal(actions)
			log.Printf("trip: repaired model output (models=%v actions=%s)", tried, trace)
		}
		itinerary, issues = ValidateItinerary(repaired)
		if issues != nil {
			log.Printf("trip: JSON does not match schema (models=%v request=%s issues=%v)",
				tried, safeRequestForLog(req), issues)
			return nil, &PlanError{
				Kind:     KindSchemaMismatch,
				Msg:      "JSON does not match schema",
				Issues:   issues,
				RawValue: parsed,
			}
		}
	}

	pois := FilterKnownPois(&itinerary, s.catalog)

	resp := &Response{Request: req, Itinerary: itinerary, Pois: pois}
	s.cache.Set(ctx, req, resp)
	return resp, nil
}

func classifyGenerateError(err error, tried []string, req TripRequest) *PlanError {
	switch {
	case errors.Is(err, ai.ErrQuotaExceeded):
		log.Printf("trip: gemini quota exceeded (models=%v request=%s): %v", tried, safeRequestForLog(req), err)
		return &PlanError{Kind: KindQuotaExceeded, Msg: "Gemini quota exceeded", Models: tried, cause: err}
	case errors.Is(err, ai.ErrGeoBlocked):
		log.Printf("trip: gemini geo blocked (models=%v request=%s): %v", tried, safeRequestForLog(req), err)
		return &PlanError{Kind: KindGeoBlocked, Msg: "Gemini API is not available from current location/network", Models: tried, cause: err}
	default:
		log.Printf("trip: gemini request failed (models=%v request=%s): %v", tried, safeRequestForLog(req), err)
		return &PlanError{Kind: KindGenerationFailed, Msg: "Gemini request failed", Models: tried, cause: err}
	}
}

// safeRequestForLog renders the request with notes capped so free text never
// grows the logs without bound. Never includes credentials.
func safeRequestForLog(req TripRequest) string {
	req.Notes = logTrunc(req.Notes, 200)
	raw, _ := json.Marshal(req)
	return string(raw)
}

func logTrunc(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
