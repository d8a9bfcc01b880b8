// README: Request validator: untyped payload -> TripRequest with defaults.
package trip

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Defaults applied when an optional field is absent.
const (
	DefaultDays       = 2
	DefaultBaseRegion = "spb"
	DefaultPace       = "normal"
	DefaultTransport  = "public"
	DefaultWeather    = "any"
)

var (
	validBaseRegions = []string{"spb", "lenobl", "both"}
	validPaces       = []string{"relaxed", "normal", "active"}
	validTransports  = []string{"walk", "public", "car"}
	validWeathers    = []string{"any", "sun", "rain", "cold"}
)

// ValidateRequest checks an arbitrary JSON payload against the TripRequest
// contract, applying defaults for absent optional fields. On failure it
// returns one FieldError per violation. No side effects.
func ValidateRequest(payload []byte) (TripRequest, []FieldError) {
	req := TripRequest{
		Days:       DefaultDays,
		BaseRegion: DefaultBaseRegion,
		Pace:       DefaultPace,
		Transport:  DefaultTransport,
		Weather:    DefaultWeather,
		Interests:  []string{},
		Notes:      "",
	}

	var raw map[string]json.RawMessage
	if len(payload) == 0 || strings.TrimSpace(string(payload)) == "" {
		raw = map[string]json.RawMessage{}
	} else if err := json.Unmarshal(payload, &raw); err != nil {
		return TripRequest{}, []FieldError{{Field: "", Reason: "payload must be a JSON object"}}
	}

	var errs []FieldError
	addErr := func(field, reason string) {
		errs = append(errs, FieldError{Field: field, Reason: reason})
	}

	if v, ok := raw["days"]; ok && !isNull(v) {
		var n float64
		if err := json.Unmarshal(v, &n); err != nil {
			addErr("days", "must be a number")
		} else if n != math.Trunc(n) {
			addErr("days", "must be an integer")
		} else if n < MinDays || n > MaxDays {
			addErr("days", fmt.Sprintf("must be between %d and %d", MinDays, MaxDays))
		} else {
			req.Days = int(n)
		}
	}

	req.BaseRegion = enumField(raw, "baseRegion", validBaseRegions, DefaultBaseRegion, addErr)
	req.Pace = enumField(raw, "pace", validPaces, DefaultPace, addErr)
	req.Transport = enumField(raw, "transport", validTransports, DefaultTransport, addErr)
	req.Weather = enumField(raw, "weather", validWeathers, DefaultWeather, addErr)

	if v, ok := raw["interests"]; ok && !isNull(v) {
		var tags []string
		if err := json.Unmarshal(v, &tags); err != nil {
			addErr("interests", "must be an array of strings")
		} else {
			req.Interests = tags
		}
	}

	if v, ok := raw["notes"]; ok && !isNull(v) {
		var notes string
		if err := json.Unmarshal(v, &notes); err != nil {
			addErr("notes", "must be a string")
		} else if len([]rune(notes)) > MaxNotesLen {
			addErr("notes", fmt.Sprintf("must be at most %d characters", MaxNotesLen))
		} else {
			req.Notes = notes
		}
	}

	if len(errs) > 0 {
		return TripRequest{}, errs
	}
	return req, nil
}

func enumField(raw map[string]json.RawMessage, field string, allowed []string, def string, addErr func(string, string)) string {
	v, ok := raw[field]
	if !ok || isNull(v) {
		return def
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		addErr(field, "must be a string")
		return def
	}
	for _, a := range allowed {
		if s == a {
			return s
		}
	}
	addErr(field, fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")))
	return def
}

func isNull(v json.RawMessage) bool {
	return strings.TrimSpace(string(v)) == "null"
}
