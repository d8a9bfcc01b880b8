// README: Base handler utilities (JSON helpers, pipeline error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"nevaplan/internal/modules/trip"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
	Raw     any    `json:"raw,omitempty"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// planErrorStatus maps every pipeline error kind to its externally
// observable status.
func planErrorStatus(kind trip.ErrorKind) int {
	switch kind {
	case trip.KindInvalidInput:
		return http.StatusBadRequest
	case trip.KindQuotaExceeded:
		return http.StatusTooManyRequests
	case trip.KindGeoBlocked:
		return http.StatusServiceUnavailable
	case trip.KindGenerationFailed, trip.KindExtractionFailed,
		trip.KindParseFailed, trip.KindSchemaMismatch:
		return http.StatusBadGateway
	default:
		// missing_credential, unexpected
		return http.StatusInternalServerError
	}
}

func writePlanError(c *gin.Context, err error) {
	var perr *trip.PlanError
	if !errors.As(err, &perr) {
		writeError(c, http.StatusInternalServerError, "unexpected error")
		return
	}

	body := errorResponse{Error: perr.Msg}
	switch perr.Kind {
	case trip.KindInvalidInput:
		body.Details = perr.Fields
	case trip.KindSchemaMismatch:
		body.Details = perr.Issues
		body.Raw = perr.RawValue
	case trip.KindExtractionFailed:
		body.Raw = perr.RawText
	case trip.KindParseFailed:
		if cause := perr.Unwrap(); cause != nil {
			body.Details = cause.Error()
		}
		body.Raw = perr.RawText
	case trip.KindQuotaExceeded, trip.KindGeoBlocked, trip.KindGenerationFailed:
		if cause := perr.Unwrap(); cause != nil {
			body.Details = cause.Error()
		}
	}
	writeJSON(c, planErrorStatus(perr.Kind), body)
}
