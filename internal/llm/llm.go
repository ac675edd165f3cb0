package llm

import (
	"context"
	"errors"
)

// Provider abstracts hosted language-model backends. Selection is a pure
// configuration switch; there is no runtime fallback between providers.
type Provider interface {
	// GenerateText sends the prompt and returns the full text response.
	GenerateText(ctx context.Context, prompt string) (string, error)
	// Name identifies the backend for logging and metadata.
	Name() string
}

// ErrNotConfigured is returned by the placeholder provider.
var ErrNotConfigured = errors.New("model provider not configured")

// Placeholder is a stub implementation until provider wiring is added.
type Placeholder struct{}

// GenerateText returns ErrNotConfigured.
func (Placeholder) GenerateText(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotConfigured
}

// Name identifies the placeholder.
func (Placeholder) Name() string { return "placeholder" }
