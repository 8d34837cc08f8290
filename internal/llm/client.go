// Package llm provides the text-generation collaborators that turn a ledger
// into natural-language spending insights.
package llm

import (
	"context"
)

// Client defines the interface for text-generation providers.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config holds provider configuration.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
}
