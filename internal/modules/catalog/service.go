// README: Catalog service: immutable POI lookup and region filtering.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed pois.json
var embeddedPois []byte

// Service holds the loaded catalog. It is built once at startup and never
// mutated afterwards, so all methods are safe for concurrent use.
type Service struct {
	pois []Poi
	byID map[string]Poi
}

// NewService builds a Service from the given POI list.
// Every id must be unique; duplicates are a data defect, not a runtime case.
func NewService(pois []Poi) (*Service, error) {
	if len(pois) == 0 {
		return nil, fmt.Errorf("catalog: empty poi list")
	}
	byID := make(map[string]Poi, len(pois))
	for _, p := range pois {
		if p.ID == "" {
			return nil, fmt.Errorf("catalog: poi with empty id (%q)", p.Name)
		}
		if !ValidRegion(p.Region) {
			return nil, fmt.Errorf("catalog: poi %q has unknown region %q", p.ID, p.Region)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate poi id %q", p.ID)
		}
		byID[p.ID] = p
	}
	out := make([]Poi, len(pois))
	copy(out, pois)
	return &Service{pois: out, byID: byID}, nil
}

// NewEmbeddedService loads the dataset compiled into the binary.
func NewEmbeddedService() (*Service, error) {
	var pois []Poi
	if err := json.Unmarshal(embeddedPois, &pois); err != nil {
		return nil, fmt.Errorf("catalog: parse embedded dataset: %w", err)
	}
	return NewService(pois)
}

// All returns every POI in catalog order.
func (s *Service) All() []Poi {
	out := make([]Poi, len(s.pois))
	copy(out, s.pois)
	return out
}

// ByID looks up a single POI.
func (s *Service) ByID(id string) (Poi, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Len reports the catalog size.
func (s *Service) Len() int {
	return len(s.pois)
}

// FilterByRegion returns the candidate list for a trip request.
// "both" passes the whole catalog through, one entry per record.
func (s *Service) FilterByRegion(region string) []Poi {
	if region == "both" {
		return s.All()
	}
	var out []Poi
	for _, p := range s.pois {
		if string(p.Region) == region {
			out = append(out, p)
		}
	}
	return out
}
