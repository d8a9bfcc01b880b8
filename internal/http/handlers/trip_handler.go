// README: Itinerary handler: the single pipeline entry point.
package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"nevaplan/internal/modules/trip"
)

type TripHandler struct {
	trips *trip.Service
}

func NewTripHandler(svc *trip.Service) *TripHandler {
	return &TripHandler{trips: svc}
}

// Plan handles POST /api/itinerary. The body is passed to the pipeline
// untyped; request validation happens inside with field-level errors.
func (h *TripHandler) Plan(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		writeError(c, http.StatusBadRequest, "could not read request body")
		return
	}

	resp, err := h.trips.Plan(c.Request.Context(), payload)
	if err != nil {
		writePlanError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, resp)
}
