// README: Shape repairer: best-effort rebuild of a schema-conformant itinerary.
package trip

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Fallback values used when a field is absent or unusable.
const (
	fallbackTitle    = "Маршрут"
	fallbackSummary  = "Персональный маршрут по выбранным интересам."
	fallbackWhy      = "Хорошая точка маршрута."
	fallbackMove     = "Перемещение по городу."
	fallbackPoiID    = "palace-square"
	fallbackTime     = "10:00"
	fallbackDuration = 90
)

var looseTimeRe = regexp.MustCompile(`^(\d{1,2})\s*[:.\- ]\s*(\d{1,2})$`)

// RepairAction records one adjustment made during repair, for structured
// logging. Repair must never silently mask generation defects.
type RepairAction struct {
	Path   string `json:"path"`
	Action string `json:"action"`
}

// RepairShape reconstructs a best-effort conformant itinerary from a parsed
// but schema-invalid value. Non-object input passes through unchanged and
// will fail re-validation. The returned value uses the same loose JSON
// representation the validator accepts.
func RepairShape(raw any) (any, []RepairAction) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return raw, nil
	}

	var actions []RepairAction
	note := func(path, action string) {
		actions = append(actions, RepairAction{Path: path, Action: action})
	}

	title := repairString(obj["title"], MaxTitleLen, fallbackTitle, "title", note)
	summary := repairString(obj["summary"], MaxSummaryLen, fallbackSummary, "summary", note)

	var days []any
	if rawDays, ok := obj["days"].([]any); ok {
		if len(rawDays) > MaxDays {
			note("days", fmt.Sprintf("dropped %d extra days", len(rawDays)-MaxDays))
		}
		pos := 0
		for _, dv := range rawDays {
			if pos >= MaxDays {
				break
			}
			dayObj, ok := dv.(map[string]any)
			if !ok {
				note("days", "dropped non-object day entry")
				continue
			}
			pos++
			days = append(days, repairDay(dayObj, pos, note))
		}
	} else {
		note("days", "missing or not an array")
	}

	alternatives := repairStringList(obj["alternatives"], MaxAlts, MaxAltLen, "alternatives", note)

	return map[string]any{
		"title":        title,
		"summary":      summary,
		"days":         days,
		"alternatives": alternatives,
	}, actions
}

func repairDay(obj map[string]any, pos int, note func(string, string)) map[string]any {
	path := fmt.Sprintf("days[%d]", pos-1)

	var items []any
	if rawItems, ok := obj["items"].([]any); ok {
		if len(rawItems) > MaxItemsPerDay {
			note(path+".items", fmt.Sprintf("dropped %d extra items", len(rawItems)-MaxItemsPerDay))
		}
		for _, iv := range rawItems {
			if len(items) >= MaxItemsPerDay {
				break
			}
			itemObj, ok := iv.(map[string]any)
			if !ok {
				note(path+".items", "dropped non-object item entry")
				continue
			}
			items = append(items, repairItem(itemObj, fmt.Sprintf("%s.items[%d]", path, len(items)), note))
		}
	} else {
		note(path+".items", "missing or not an array")
	}
	if items == nil {
		items = []any{}
	}

	return map[string]any{
		"dayNumber": float64(clampInt(obj["dayNumber"], MinDays, MaxDays, pos)),
		"label":     repairString(obj["label"], MaxLabelLen, fmt.Sprintf("День %d", pos), path+".label", note),
		"items":     items,
	}
}

func repairItem(obj map[string]any, path string, note func(string, string)) map[string]any {
	time := normalizeTime(obj["time"])
	if orig, ok := obj["time"].(string); !ok || strings.TrimSpace(orig) != time {
		note(path+".time", "normalized to "+time)
	}
	return map[string]any{
		"time":        time,
		"poiId":       repairString(obj["poiId"], MaxPoiIDLen, fallbackPoiID, path+".poiId", note),
		"durationMin": float64(clampInt(obj["durationMin"], MinDurationMin, MaxDurationMin, fallbackDuration)),
		"why":         repairString(obj["why"], MaxWhyLen, fallbackWhy, path+".why", note),
		"move":        repairString(obj["move"], MaxMoveLen, fallbackMove, path+".move", note),
		"tips":        repairStringList(obj["tips"], MaxTips, MaxTipLen, path+".tips", note),
	}
}

func repairString(v any, max int, fallback, path string, note func(string, string)) string {
	out := truncate(v, max, fallback)
	if s, ok := v.(string); !ok || strings.TrimSpace(s) != out {
		note(path, "coerced, defaulted or truncated")
	}
	return out
}

func repairStringList(v any, maxItems, maxLen int, path string, note func(string, string)) []any {
	out := []any{}
	list, ok := v.([]any)
	if !ok {
		if v != nil {
			note(path, "not an array, dropped")
		}
		return out
	}
	for _, ev := range list {
		if len(out) >= maxItems {
			note(path, "dropped entries over cap")
			break
		}
		s := truncate(ev, maxLen, "")
		if s == "" {
			note(path, "dropped empty entry")
			continue
		}
		out = append(out, s)
	}
	return out
}

// truncate trims whitespace, falls back when empty, and cuts over-long
// strings to max-1 runes plus a single ellipsis character.
func truncate(v any, max int, fallback string) string {
	s := coerceString(v, fallback)
	t := strings.TrimSpace(s)
	if t == "" {
		return fallback
	}
	runes := []rune(t)
	if len(runes) <= max {
		return t
	}
	cut := strings.TrimRight(string(runes[:max-1]), " \t\n")
	return cut + "…"
}

func coerceString(v any, fallback string) string {
	switch s := v.(type) {
	case string:
		return s
	case nil:
		return fallback
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return fmt.Sprintf("%v", s)
	}
}

// clampInt accepts numbers and numeric strings, rounding and clamping into
// [min, max]; anything else yields the fallback.
func clampInt(v any, min, max, fallback int) int {
	var n float64
	switch x := v.(type) {
	case float64:
		n = x
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return fallback
		}
		n = parsed
	default:
		return fallback
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return fallback
	}
	r := int(math.Round(n))
	if r < min {
		return min
	}
	if r > max {
		return max
	}
	return r
}

// normalizeTime rewrites loosely formatted times into zero-padded HH:MM.
// Hour and minute are clamped independently; unparseable strings pass
// through unchanged for validation to reject.
func normalizeTime(v any) string {
	s := strings.TrimSpace(coerceString(v, ""))
	if s == "" {
		return fallbackTime
	}
	m := looseTimeRe.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	hh := clampInt(m[1], 0, 23, 10)
	mm := clampInt(m[2], 0, 59, 0)
	return fmt.Sprintf("%02d:%02d", hh, mm)
}
