// Package gemini wraps the Gemini text-generation API behind a small
// interface with a deterministic offline fallback.
package gemini

import "context"

// Response is the generation backend's output.
type Response struct {
	Text string
}

// Generator produces text from a prompt. Two implementations exist: the
// live Gemini client and the offline fallback.
type Generator interface {
	Generate(ctx context.Context, prompt string) (*Response, error)
}

// ModelMock forces the offline generator regardless of API key.
const ModelMock = "mock"

// New selects a generator: the live client when an API key is configured
// and the model is not ModelMock, the offline fallback otherwise.
func New(ctx context.Context, apiKey, model string) (Generator, error) {
	if apiKey == "" || model == ModelMock {
		return Offline{}, nil
	}
	return NewClient(ctx, apiKey, model)
}
