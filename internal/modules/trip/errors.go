// README: Tagged pipeline errors mapped to HTTP statuses by the handler.
package trip

import "fmt"

// ErrorKind classifies a pipeline failure. Every kind maps to a distinct
// externally observable status.
type ErrorKind string

const (
	KindInvalidInput      ErrorKind = "invalid_input"
	KindMissingCredential ErrorKind = "missing_credential"
	KindQuotaExceeded     ErrorKind = "quota_exceeded"
	KindGeoBlocked        ErrorKind = "geo_blocked"
	KindGenerationFailed  ErrorKind = "generation_failed"
	KindExtractionFailed  ErrorKind = "extraction_failed"
	KindParseFailed       ErrorKind = "parse_failed"
	KindSchemaMismatch    ErrorKind = "schema_mismatch"
	KindUnexpected        ErrorKind = "unexpected"
)

// PlanError carries a kind plus whatever diagnostics the stage produced.
// RawText / RawValue hold the offending model output for operator diagnosis;
// none of the fields ever contain credentials.
type PlanError struct {
	Kind ErrorKind
	Msg  string

	Fields   []FieldError      // invalid_input
	Issues   []ValidationIssue // schema_mismatch
	RawText  string            // extraction_failed, parse_failed
	RawValue any               // schema_mismatch
	Models   []string          // generation_failed: identifiers attempted
	cause    error
}

func (e *PlanError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *PlanError) Unwrap() error { return e.cause }

// FieldError is one request-validation violation.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationIssue is one itinerary-schema violation, addressed by path
// (e.g. "days[1].items[2].time").
type ValidationIssue struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}
