// README: Trip domain model: validated request, itinerary contract, limits.
package trip

import "nevaplan/internal/modules/catalog"

// Field limits of the itinerary contract. The prompt promises the model this
// shape and the validator enforces it.
const (
	MinDays = 1
	MaxDays = 3

	MaxTitleLen    = 120
	MaxSummaryLen  = 1000
	MaxLabelLen    = 140
	MaxPoiIDLen    = 80
	MaxWhyLen      = 320
	MaxMoveLen     = 320
	MaxTipLen      = 120
	MaxTips        = 4
	MaxItemsPerDay = 6
	MaxAltLen      = 240
	MaxAlts        = 8
	MaxNotesLen    = 500

	MinDurationMin = 15
	MaxDurationMin = 240
)

// TripRequest is the validated, defaulted user input. Immutable after
// validation; lives for a single request.
type TripRequest struct {
	Days       int      `json:"days"`
	BaseRegion string   `json:"baseRegion"`
	Pace       string   `json:"pace"`
	Transport  string   `json:"transport"`
	Weather    string   `json:"weather"`
	Interests  []string `json:"interests"`
	Notes      string   `json:"notes"`
}

// Item is a single stop inside a day.
type Item struct {
	Time        string   `json:"time"`
	PoiID       string   `json:"poiId"`
	DurationMin int      `json:"durationMin"`
	Why         string   `json:"why"`
	Move        string   `json:"move"`
	Tips        []string `json:"tips"`
}

// Day groups the stops of one calendar day.
type Day struct {
	DayNumber int    `json:"dayNumber"`
	Label     string `json:"label"`
	Items     []Item `json:"items"`
}

// Itinerary is the model's structured plan after validation.
type Itinerary struct {
	Title        string   `json:"title"`
	Summary      string   `json:"summary"`
	Days         []Day    `json:"days"`
	Alternatives []string `json:"alternatives"`
}

// Response is what the HTTP layer returns on success: the echoed request,
// the validated itinerary, and exactly the catalog entries it references.
type Response struct {
	Request   TripRequest   `json:"request"`
	Itinerary Itinerary     `json:"itinerary"`
	Pois      []catalog.Poi `json:"pois"`
}
