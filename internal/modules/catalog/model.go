// README: Catalog domain model: POI records, regions, and tag vocabulary.
package catalog

// Region is one of the two areas the demo catalog covers.
type Region string

const (
	RegionSpb    Region = "spb"
	RegionLenobl Region = "lenobl"
)

// ValidRegion reports whether r is a known catalog region.
func ValidRegion(r Region) bool {
	return r == RegionSpb || r == RegionLenobl
}

// Poi is a single catalog entry. The catalog is immutable after load,
// so Poi values are safe to share across requests.
type Poi struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Region Region   `json:"region"`
	Lat    float64  `json:"lat"`
	Lon    float64  `json:"lon"`
	Tags   []string `json:"tags"`
	Short  string   `json:"short"`
}

// TagLabel pairs a machine tag with the label the UI shows.
type TagLabel struct {
	Tag   string `json:"tag"`
	Label string `json:"label"`
}

// AllTags is the fixed tag vocabulary in display order.
var AllTags = []TagLabel{
	{Tag: "classic", Label: "Классика"},
	{Tag: "history", Label: "История"},
	{Tag: "art", Label: "Искусство"},
	{Tag: "architecture", Label: "Архитектура"},
	{Tag: "walk", Label: "Прогулки"},
	{Tag: "views", Label: "Виды"},
	{Tag: "food", Label: "Еда"},
	{Tag: "coffee", Label: "Кофе"},
	{Tag: "kids", Label: "С детьми"},
	{Tag: "nature", Label: "Природа"},
	{Tag: "daytrip", Label: "Однодневки"},
	{Tag: "budget", Label: "Бюджетно"},
	{Tag: "rain_ok", Label: "В дождь"},
}
