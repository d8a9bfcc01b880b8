// README: Schema validator: parsed JSON -> Itinerary with a field-level report.
package trip

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
)

var timeRe = regexp.MustCompile(`^\d{2}:\d{2}$`)

// ParseJSON structurally parses the extracted text. The parser's own message
// is preserved for diagnostics.
func ParseJSON(text string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, err
	}
	return v, nil
}

// ValidateItinerary checks a parsed JSON value against the itinerary
// contract. On success the typed Itinerary is returned; on failure the
// report lists every violation by path.
func ValidateItinerary(v any) (Itinerary, []ValidationIssue) {
	var issues []ValidationIssue
	add := func(path, reason string) {
		issues = append(issues, ValidationIssue{Path: path, Reason: reason})
	}

	obj, ok := v.(map[string]any)
	if !ok {
		add("", "expected a JSON object")
		return Itinerary{}, issues
	}

	var it Itinerary
	it.Title = requireString(obj, "title", 1, MaxTitleLen, add)
	it.Summary = requireString(obj, "summary", 1, MaxSummaryLen, add)

	daysVal, ok := obj["days"].([]any)
	if !ok {
		add("days", "expected an array")
	} else if len(daysVal) < MinDays || len(daysVal) > MaxDays {
		add("days", fmt.Sprintf("must contain between %d and %d entries", MinDays, MaxDays))
	} else {
		for i, dv := range daysVal {
			path := fmt.Sprintf("days[%d]", i)
			dayObj, ok := dv.(map[string]any)
			if !ok {
				add(path, "expected an object")
				continue
			}
			var day Day
			day.DayNumber = requireInt(dayObj, path, "dayNumber", MinDays, MaxDays, add)
			day.Label = requireStringAt(dayObj, path, "label", 1, MaxLabelLen, add)

			itemsVal, ok := dayObj["items"].([]any)
			if !ok {
				add(path+".items", "expected an array")
			} else {
				for j, iv := range itemsVal {
					ipath := fmt.Sprintf("%s.items[%d]", path, j)
					itemObj, ok := iv.(map[string]any)
					if !ok {
						add(ipath, "expected an object")
						continue
					}
					day.Items = append(day.Items, validateItem(itemObj, ipath, add))
				}
			}
			it.Days = append(it.Days, day)
		}
	}

	it.Alternatives = optionalStringList(obj, "alternatives", MaxAlts, MaxAltLen, add)

	if len(issues) > 0 {
		return Itinerary{}, issues
	}
	return it, nil
}

func validateItem(obj map[string]any, path string, add func(string, string)) Item {
	var item Item
	item.Time = requireStringAt(obj, path, "time", 1, 0, add)
	if item.Time != "" && !timeRe.MatchString(item.Time) {
		add(path+".time", "must match HH:MM")
	}
	item.PoiID = requireStringAt(obj, path, "poiId", 1, 0, add)
	item.DurationMin = requireInt(obj, path, "durationMin", MinDurationMin, MaxDurationMin, add)
	item.Why = requireStringAt(obj, path, "why", 1, MaxWhyLen, add)
	item.Move = requireStringAt(obj, path, "move", 1, MaxMoveLen, add)
	item.Tips = optionalStringListAt(obj, path, "tips", MaxTips, MaxTipLen, add)
	return item
}

func requireString(obj map[string]any, field string, min, max int, add func(string, string)) string {
	return requireStringAt(obj, "", field, min, max, add)
}

func requireStringAt(obj map[string]any, prefix, field string, min, max int, add func(string, string)) string {
	path := field
	if prefix != "" {
		path = prefix + "." + field
	}
	v, ok := obj[field]
	if !ok || v == nil {
		add(path, "required")
		return ""
	}
	s, ok := v.(string)
	if !ok {
		add(path, "expected a string")
		return ""
	}
	n := len([]rune(s))
	if n < min {
		add(path, fmt.Sprintf("must be at least %d characters", min))
	}
	if max > 0 && n > max {
		add(path, fmt.Sprintf("must be at most %d characters", max))
	}
	return s
}

func requireInt(obj map[string]any, prefix, field string, min, max int, add func(string, string)) int {
	path := field
	if prefix != "" {
		path = prefix + "." + field
	}
	v, ok := obj[field]
	if !ok || v == nil {
		add(path, "required")
		return 0
	}
	n, ok := v.(float64)
	if !ok {
		add(path, "expected a number")
		return 0
	}
	if n != math.Trunc(n) {
		add(path, "expected an integer")
		return 0
	}
	if n < float64(min) || n > float64(max) {
		add(path, fmt.Sprintf("must be between %d and %d", min, max))
		return int(n)
	}
	return int(n)
}

func optionalStringList(obj map[string]any, field string, maxItems, maxLen int, add func(string, string)) []string {
	return optionalStringListAt(obj, "", field, maxItems, maxLen, add)
}

func optionalStringListAt(obj map[string]any, prefix, field string, maxItems, maxLen int, add func(string, string)) []string {
	path := field
	if prefix != "" {
		path = prefix + "." + field
	}
	v, ok := obj[field]
	if !ok || v == nil {
		return []string{}
	}
	list, ok := v.([]any)
	if !ok {
		add(path, "expected an array")
		return []string{}
	}
	if len(list) > maxItems {
		add(path, fmt.Sprintf("must contain at most %d entries", maxItems))
	}
	out := make([]string, 0, len(list))
	for i, ev := range list {
		s, ok := ev.(string)
		if !ok {
			add(fmt.Sprintf("%s[%d]", path, i), "expected a string")
			continue
		}
		n := len([]rune(s))
		if n < 1 {
			add(fmt.Sprintf("%s[%d]", path, i), "must not be empty")
		}
		if n > maxLen {
			add(fmt.Sprintf("%s[%d]", path, i), fmt.Sprintf("must be at most %d characters", maxLen))
		}
		out = append(out, s)
	}
	return out
}
