// README: Handler tests: pipeline error kinds must map to the right statuses.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"nevaplan/internal/ai"
	"nevaplan/internal/http/handlers"
	"nevaplan/internal/modules/catalog"
	"nevaplan/internal/modules/trip"
)

// stubGenerator is a test double for the model-fallback client.
type stubGenerator struct {
	text string
	err  error
}

func (s *stubGenerator) Generate(_ context.Context, _ string) (string, []string, error) {
	return s.text, []string{"gemini-2.5-flash"}, s.err
}

// buildTestRouter wires a minimal Gin engine with the trip and catalog handlers.
func buildTestRouter(t *testing.T, gen trip.Generator, credentialSet bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cat, err := catalog.NewEmbeddedService()
	if err != nil {
		t.Fatal(err)
	}
	svc := trip.NewService(cat, gen, nil, credentialSet)
	r := gin.New()
	th := handlers.NewTripHandler(svc)
	r.POST("/api/itinerary", th.Plan)
	ch := handlers.NewCatalogHandler(cat)
	r.GET("/api/pois", ch.ListPois)
	r.GET("/api/tags", ch.ListTags)
	return r
}

func doRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func modelOutput() string {
	return `{
		"title": "Тестовый маршрут", "summary": "Один день в центре.",
		"days": [{"dayNumber": 1, "label": "День 1", "items": [
			{"time": "10:00", "poiId": "hermitage", "durationMin": 120,
			 "why": "Главный музей.", "move": "Старт у Дворцовой."}
		]}]
	}`
}

func TestPlan_OK(t *testing.T) {
	r := buildTestRouter(t, &stubGenerator{text: modelOutput()}, true)
	w := doRequest(r, http.MethodPost, "/api/itinerary", map[string]any{"days": 1, "baseRegion": "spb"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp trip.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Itinerary.Days) != 1 || len(resp.Pois) != 1 {
		t.Fatalf("unexpected response: %s", w.Body.String())
	}
}

func TestPlan_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		gen        trip.Generator
		credential bool
		body       any
		wantStatus int
	}{
		{
			name:       "invalid input",
			gen:        &stubGenerator{},
			credential: true,
			body:       map[string]any{"days": 9},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing credential",
			gen:        &stubGenerator{},
			credential: false,
			body:       map[string]any{},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "quota exceeded",
			gen:        &stubGenerator{err: fmt.Errorf("gemini: %w", ai.ErrQuotaExceeded)},
			credential: true,
			body:       map[string]any{},
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name:       "geo blocked",
			gen:        &stubGenerator{err: fmt.Errorf("gemini: %w", ai.ErrGeoBlocked)},
			credential: true,
			body:       map[string]any{},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "generation failed",
			gen:        &stubGenerator{err: errors.New("connection reset")},
			credential: true,
			body:       map[string]any{},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "model returned prose",
			gen:        &stubGenerator{text: "Не могу помочь с этим."},
			credential: true,
			body:       map[string]any{},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "schema mismatch",
			gen:        &stubGenerator{text: `{"title":"t","summary":"s","days":[]}`},
			credential: true,
			body:       map[string]any{},
			wantStatus: http.StatusBadGateway,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := buildTestRouter(t, tt.gen, tt.credential)
			w := doRequest(r, http.MethodPost, "/api/itinerary", tt.body)
			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatal(err)
			}
			if body["error"] == "" {
				t.Fatal("error body must carry a message")
			}
		})
	}
}

func TestPlan_InvalidInputDetails(t *testing.T) {
	r := buildTestRouter(t, &stubGenerator{}, true)
	w := doRequest(r, http.MethodPost, "/api/itinerary", map[string]any{"baseRegion": "moscow", "days": 0})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var body struct {
		Details []trip.FieldError `json:"details"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Details) != 2 {
		t.Fatalf("details = %v, want two field errors", body.Details)
	}
}

func TestListPois(t *testing.T) {
	r := buildTestRouter(t, &stubGenerator{}, true)

	w := doRequest(r, http.MethodGet, "/api/pois", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Pois []catalog.Poi `json:"pois"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Pois) != 29 {
		t.Fatalf("pois = %d, want 29", len(body.Pois))
	}

	w = doRequest(r, http.MethodGet, "/api/pois?region=lenobl", nil)
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	for _, p := range body.Pois {
		if p.Region != catalog.RegionLenobl {
			t.Fatalf("poi %q has region %q", p.ID, p.Region)
		}
	}

	w = doRequest(r, http.MethodGet, "/api/pois?region=mars", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown region, got %d", w.Code)
	}
}

func TestListTags(t *testing.T) {
	r := buildTestRouter(t, &stubGenerator{}, true)
	w := doRequest(r, http.MethodGet, "/api/tags", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Tags []catalog.TagLabel `json:"tags"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Tags) == 0 {
		t.Fatal("tags must not be empty")
	}
}
