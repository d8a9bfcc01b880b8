// README: Shape repairer tests: normalization, truncation, idempotence.
package trip

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"9:5", "09:05"},
		{"09.05", "09:05"},
		{"09-05", "09:05"},
		{"9 05", "09:05"},
		{"10:30", "10:30"},
		{"25:99", "23:59"}, // hour and minute clamp independently
		{"0:0", "00:00"},
		{"", "10:00"},
		{nil, "10:00"},
		{"around noon", "around noon"}, // unparseable passes through
		{"10:30:45", "10:30:45"},
	}
	for _, tt := range tests {
		if got := normalizeTime(tt.in); got != tt.want {
			t.Errorf("normalizeTime(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("a", 200)
	got := truncate(long, 120, "")
	if n := len([]rune(got)); n != 120 {
		t.Fatalf("truncated length = %d, want 120", n)
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatal("truncation missing ellipsis")
	}
	if got[:119] != long[:119] {
		t.Fatal("truncated prefix does not match source")
	}

	if got := truncate("  short  ", 120, ""); got != "short" {
		t.Errorf("trim failed: %q", got)
	}
	if got := truncate("", 120, "fallback"); got != "fallback" {
		t.Errorf("empty input should fall back, got %q", got)
	}
	if got := truncate("   ", 120, "fallback"); got != "fallback" {
		t.Errorf("blank input should fall back, got %q", got)
	}
	if got := truncate(float64(42), 120, ""); got != "42" {
		t.Errorf("numeric coercion: %q", got)
	}
}

func TestClampInt(t *testing.T) {
	tests := []struct {
		in   any
		want int
	}{
		{float64(90), 90},
		{float64(10), 15},   // below range
		{float64(1000), 240}, // above range
		{float64(89.6), 90},  // rounded
		{"120", 120},
		{"not a number", 77},
		{nil, 77},
		{true, 77},
	}
	for _, tt := range tests {
		if got := clampInt(tt.in, 15, 240, 77); got != tt.want {
			t.Errorf("clampInt(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRepairShape_NonObjectPassesThrough(t *testing.T) {
	out, actions := RepairShape([]any{1, 2})
	if _, ok := out.([]any); !ok {
		t.Fatal("non-object input should pass through unchanged")
	}
	if actions != nil {
		t.Fatal("no actions expected for pass-through")
	}
}

func TestRepairShape_RebuildsMessyObject(t *testing.T) {
	raw := map[string]any{
		"title": strings.Repeat("Большое путешествие ", 20),
		// summary missing entirely
		"days": []any{
			map[string]any{
				"dayNumber": "first", // unusable, falls back to position
				"items": []any{
					map[string]any{
						"time":        "9.5",
						"poiId":       "hermitage",
						"durationMin": "600",
						"why":         "",
						"tips":        []any{"tip", "", "another tip", "x", "y", "z"},
					},
					"not an item",
				},
			},
			"not a day",
			map[string]any{"dayNumber": float64(2), "label": "День у воды", "items": []any{}},
		},
		"alternatives": []any{"вариант", 123, ""},
	}

	out, actions := RepairShape(raw)
	if len(actions) == 0 {
		t.Fatal("expected repair actions to be recorded")
	}

	it, issues := ValidateItinerary(out)
	if issues != nil {
		t.Fatalf("repaired object failed validation: %v", issues)
	}

	if len([]rune(it.Title)) > MaxTitleLen {
		t.Errorf("title not truncated: %d runes", len([]rune(it.Title)))
	}
	if it.Summary == "" {
		t.Error("summary fallback missing")
	}
	if len(it.Days) != 2 {
		t.Fatalf("expected 2 repaired days, got %d", len(it.Days))
	}
	d1 := it.Days[0]
	if d1.DayNumber != 1 {
		t.Errorf("dayNumber fallback = %d, want 1", d1.DayNumber)
	}
	if d1.Label != "День 1" {
		t.Errorf("label fallback = %q", d1.Label)
	}
	if len(d1.Items) != 1 {
		t.Fatalf("expected 1 surviving item, got %d", len(d1.Items))
	}
	item := d1.Items[0]
	if item.Time != "09:05" {
		t.Errorf("time = %q", item.Time)
	}
	if item.DurationMin != 240 {
		t.Errorf("durationMin = %d, want 240", item.DurationMin)
	}
	if item.Why != fallbackWhy {
		t.Errorf("why fallback = %q", item.Why)
	}
	if len(item.Tips) != 4 {
		t.Errorf("tips = %v, want 4 entries", item.Tips)
	}
	if len(it.Alternatives) != 2 {
		t.Errorf("alternatives = %v", it.Alternatives)
	}
}

// TestRepairShape_Idempotent: repairing valid output changes nothing and the
// result still validates.
func TestRepairShape_Idempotent(t *testing.T) {
	raw := map[string]any{
		"title":   "Выходные в Петербурге",
		"summary": "Два дня классики.",
		"days": []any{
			map[string]any{
				"dayNumber": float64(1),
				"label":     "Центр",
				"items": []any{
					map[string]any{
						"time":        "10:00",
						"poiId":       "hermitage",
						"durationMin": float64(120),
						"why":         "Главный музей.",
						"move":        "Пешком от площади.",
						"tips":        []any{"Билеты заранее"},
					},
				},
			},
		},
		"alternatives": []any{},
	}

	once, _ := RepairShape(raw)
	if _, issues := ValidateItinerary(once); issues != nil {
		t.Fatalf("first repair failed validation: %v", issues)
	}
	twice, _ := RepairShape(once)
	if _, issues := ValidateItinerary(twice); issues != nil {
		t.Fatalf("second repair failed validation: %v", issues)
	}

	a, _ := json.Marshal(once)
	b, _ := json.Marshal(twice)
	if string(a) != string(b) {
		t.Fatalf("repair is not idempotent:\n%s\n%s", a, b)
	}
}
