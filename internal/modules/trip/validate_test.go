// README: Schema validator tests: contract enforcement and issue paths.
package trip

import (
	"strings"
	"testing"
)

func validItineraryJSON() string {
	return `{
		"title": "Классика Петербурга",
		"summary": "Два насыщенных дня в центре.",
		"days": [
			{
				"dayNumber": 1,
				"label": "Центр",
				"items": [
					{
						"time": "10:00",
						"poiId": "hermitage",
						"durationMin": 120,
						"why": "Главный музей города.",
						"move": "Старт у Дворцовой.",
						"tips": ["Билеты заранее"]
					}
				]
			}
		],
		"alternatives": ["Вечером — Новая Голландия"]
	}`
}

func TestValidateItinerary_Valid(t *testing.T) {
	v, err := ParseJSON(validItineraryJSON())
	if err != nil {
		t.Fatal(err)
	}
	it, issues := ValidateItinerary(v)
	if issues != nil {
		t.Fatalf("unexpected issues: %v", issues)
	}
	if it.Title == "" || len(it.Days) != 1 || len(it.Days[0].Items) != 1 {
		t.Fatalf("itinerary not populated: %+v", it)
	}
	if it.Days[0].Items[0].PoiID != "hermitage" {
		t.Fatalf("poiId = %q", it.Days[0].Items[0].PoiID)
	}
}

func TestValidateItinerary_DefaultsOptionalLists(t *testing.T) {
	v, err := ParseJSON(`{
		"title": "t", "summary": "s",
		"days": [{"dayNumber": 1, "label": "l", "items": [
			{"time": "10:00", "poiId": "x", "durationMin": 60, "why": "w", "move": "m"}
		]}]
	}`)
	if err != nil {
		t.Fatal(err)
	}
	it, issues := ValidateItinerary(v)
	if issues != nil {
		t.Fatalf("unexpected issues: %v", issues)
	}
	if it.Alternatives == nil || it.Days[0].Items[0].Tips == nil {
		t.Fatal("optional lists should default to empty, not nil")
	}
}

func TestValidateItinerary_Issues(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(string) string
		wantPath string
	}{
		{"not an object", func(string) string { return `[1,2]` }, ""},
		{"missing title", func(s string) string {
			return strings.Replace(s, `"title": "Классика Петербурга",`, "", 1)
		}, "title"},
		{"bad time", func(s string) string {
			return strings.Replace(s, `"10:00"`, `"9:5"`, 1)
		}, "days[0].items[0].time"},
		{"duration too long", func(s string) string {
			return strings.Replace(s, `"durationMin": 120`, `"durationMin": 600`, 1)
		}, "days[0].items[0].durationMin"},
		{"duration not integer", func(s string) string {
			return strings.Replace(s, `"durationMin": 120`, `"durationMin": 90.5`, 1)
		}, "days[0].items[0].durationMin"},
		{"day number out of range", func(s string) string {
			return strings.Replace(s, `"dayNumber": 1`, `"dayNumber": 7`, 1)
		}, "days[0].dayNumber"},
		{"empty poiId", func(s string) string {
			return strings.Replace(s, `"hermitage"`, `""`, 1)
		}, "days[0].items[0].poiId"},
		{"days empty", func(s string) string {
			return `{"title":"t","summary":"s","days":[]}`
		}, "days"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseJSON(tt.mutate(validItineraryJSON()))
			if err != nil {
				t.Fatal(err)
			}
			_, issues := ValidateItinerary(v)
			if issues == nil {
				t.Fatal("expected issues, got none")
			}
			found := false
			for _, is := range issues {
				if is.Path == tt.wantPath {
					found = true
				}
			}
			if !found {
				t.Fatalf("no issue at path %q in %v", tt.wantPath, issues)
			}
		})
	}
}

func TestParseJSON_Error(t *testing.T) {
	if _, err := ParseJSON(`{"title": }`); err == nil {
		t.Fatal("expected parse error")
	}
}
