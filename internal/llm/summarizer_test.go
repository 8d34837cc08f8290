package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankitm/fintrack/internal/model"
)

// fakeClient returns a canned response or error.
type fakeClient struct {
	response string
	err      error
	prompts  []string
}

func (c *fakeClient) Generate(_ context.Context, prompt string) (string, error) {
	c.prompts = append(c.prompts, prompt)
	return c.response, c.err
}

func sampleTransactions() []model.Transaction {
	return []model.Transaction{
		{
			ID:          "t1",
			Date:        time.Date(2026, time.August, 5, 0, 0, 0, 0, time.UTC),
			Amount:      decimal.NewFromInt(2000),
			Category:    "Salary",
			Description: "paycheck",
			Type:        model.TypeIncome,
		},
		{
			ID:          "t2",
			Date:        time.Date(2026, time.August, 7, 0, 0, 0, 0, time.UTC),
			Amount:      decimal.NewFromInt(500),
			Category:    "Food & Dining",
			Description: "groceries at Main St",
			Type:        model.TypeExpense,
		},
	}
}

func TestSummarizeSuccess(t *testing.T) {
	client := &fakeClient{response: "You are saving 75% of your income."}
	summarizer := NewInsightSummarizer(client)

	got := summarizer.Summarize(context.Background(), sampleTransactions())
	assert.Equal(t, "You are saving 75% of your income.", got)
}

func TestSummarizeEmptyLedger(t *testing.T) {
	client := &fakeClient{response: "should never be called"}
	summarizer := NewInsightSummarizer(client)

	got := summarizer.Summarize(context.Background(), nil)
	assert.Equal(t, EmptyLedgerMessage, got)
	assert.Empty(t, client.prompts, "no provider call for an empty ledger")
}

func TestSummarizeProviderFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("503 service unavailable")}
	summarizer := NewInsightSummarizer(client)

	got := summarizer.Summarize(context.Background(), sampleTransactions())
	assert.Equal(t, FallbackMessage, got)
}

func TestSummarizeEmptyResponse(t *testing.T) {
	client := &fakeClient{response: ""}
	summarizer := NewInsightSummarizer(client)

	got := summarizer.Summarize(context.Background(), sampleTransactions())
	assert.Equal(t, "No insights available at the moment.", got)
}

func TestBuildInsightsPrompt(t *testing.T) {
	prompt, err := BuildInsightsPrompt(sampleTransactions())
	require.NoError(t, err)

	assert.Contains(t, prompt, "3-4 concise, actionable insights")
	assert.Contains(t, prompt, `"category":"Food & Dining"`)
	assert.Contains(t, prompt, `"amount":"2000"`)
	assert.Contains(t, prompt, `"date":"2026-08-07"`)
	assert.NotContains(t, prompt, "groceries at Main St", "descriptions stay out of the prompt")
}
