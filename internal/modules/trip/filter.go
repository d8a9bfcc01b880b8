// README: POI consistency filter: the backstop against hallucinated places.
package trip

import "nevaplan/internal/modules/catalog"

// FilterKnownPois drops every item whose poiId is not in the catalog and
// returns the catalog entries referenced by the surviving items, deduplicated
// in first-reference order. It runs unconditionally on every validated
// itinerary; removal is silent at this layer.
func FilterKnownPois(it *Itinerary, cat *catalog.Service) []catalog.Poi {
	seen := make(map[string]bool)
	var used []catalog.Poi

	for di := range it.Days {
		day := &it.Days[di]
		kept := day.Items[:0]
		for _, item := range day.Items {
			poi, ok := cat.ByID(item.PoiID)
			if !ok {
				continue
			}
			kept = append(kept, item)
			if !seen[item.PoiID] {
				seen[item.PoiID] = true
				used = append(used, poi)
			}
		}
		day.Items = kept
	}
	if used == nil {
		used = []catalog.Poi{}
	}
	return used
}
