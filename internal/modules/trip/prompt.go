// README: Prompt builder: deterministic instruction text for the model.
package trip

import (
	"encoding/json"
	"strings"

	"nevaplan/internal/modules/catalog"
)

// promptPoi is the subset of a catalog entry the model is allowed to see.
type promptPoi struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Region catalog.Region `json:"region"`
	Tags   []string       `json:"tags"`
	Lat    float64        `json:"lat"`
	Lon    float64        `json:"lon"`
	Short  string         `json:"short"`
}

// responseShapeExample is the literal JSON shape the model must return.
const responseShapeExample = `{"title":"string","summary":"string","days":[{"dayNumber":1,"label":"string","items":[{"time":"10:30","poiId":"hermitage","durationMin":90,"why":"string","move":"string","tips":["string"]}]}],"alternatives":["string"]}`

// BuildPrompt renders the full instruction for one generation call.
// Pure function: the same request and candidate list always produce
// byte-identical text.
func BuildPrompt(req TripRequest, candidates []catalog.Poi) string {
	pois := make([]promptPoi, 0, len(candidates))
	for _, p := range candidates {
		pois = append(pois, promptPoi{
			ID:     p.ID,
			Name:   p.Name,
			Region: p.Region,
			Tags:   p.Tags,
			Lat:    p.Lat,
			Lon:    p.Lon,
			Short:  p.Short,
		})
	}

	// Marshals of plain structs are deterministic, so the whole prompt is.
	reqJSON, _ := json.Marshal(req)
	poiJSON, _ := json.Marshal(pois)

	lines := []string{
		"Ты — AI-консьерж по Санкт‑Петербургу и Ленобласти.",
		"Составь компактный маршрут по дням и времени под запрос пользователя.",
		"",
		"ЖЁСТКИЕ ПРАВИЛА:",
		"- Используй ТОЛЬКО poiId из списка POI ниже (нельзя придумывать новые места).",
		"- Верни ТОЛЬКО валидный JSON (без markdown, без пояснений).",
		"- На каждый день 4–6 пунктов. Время формата HH:MM (например, 10:30).",
		"- Учитывай темп (pace), транспорт (transport) и погоду (weather).",
		"- Не ставь далёкие точки подряд без логичной причины — описывай перемещение в поле move.",
		"",
		"ВХОД (TripRequest):",
		string(reqJSON),
		"",
		"POI (разрешённые точки):",
		string(poiJSON),
		"",
		"СХЕМА ОТВЕТА (строго):",
		responseShapeExample,
	}
	return strings.Join(lines, "\n")
}
