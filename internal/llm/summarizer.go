package llm

import (
	"context"

	"github.com/ankitm/fintrack/internal/common"
	"github.com/ankitm/fintrack/internal/model"
	"github.com/ankitm/fintrack/internal/service"
)

var _ service.Summarizer = (*InsightSummarizer)(nil)

// FallbackMessage is shown when the provider fails for any reason.
const FallbackMessage = "The financial advisor is currently offline. Please try again later."

// EmptyLedgerMessage is shown when there is nothing to analyze.
const EmptyLedgerMessage = "Add some transactions first so I can analyze your spending habits!"

// InsightSummarizer wraps a provider client with the failure policy the rest
// of the application relies on: a single attempt, and any error collapses to
// a fixed fallback message instead of propagating.
type InsightSummarizer struct {
	client Client
}

// NewInsightSummarizer creates a summarizer over the given provider client.
func NewInsightSummarizer(client Client) *InsightSummarizer {
	return &InsightSummarizer{client: client}
}

// Summarize produces spending insights for the transaction list. It never
// returns an error: provider failures yield FallbackMessage and an empty
// ledger yields EmptyLedgerMessage.
func (s *InsightSummarizer) Summarize(ctx context.Context, transactions []model.Transaction) string {
	if len(transactions) == 0 {
		return EmptyLedgerMessage
	}

	prompt, err := BuildInsightsPrompt(transactions)
	if err != nil {
		common.LogError(err, "failed to build insights prompt", nil)
		return FallbackMessage
	}

	text, err := s.client.Generate(ctx, prompt)
	if err != nil {
		common.LogError(err, "insights generation failed", nil)
		return FallbackMessage
	}
	if text == "" {
		return "No insights available at the moment."
	}

	return text
}
