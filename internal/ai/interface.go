package ai

import (
	"context"
)

// Generator is the contract for one generation attempt against a named
// model. Implementations return the raw text payload; failure classification
// happens in the fallback client.
type Generator interface {
	GenerateText(ctx context.Context, modelID, prompt string) (string, error)
}

// ModelLister returns the identifiers of models that support content
// generation, as reported by the provider's listing endpoint.
type ModelLister interface {
	ListModelIDs(ctx context.Context) ([]string, error)
}
