package llm

import (
	"encoding/json"
	"fmt"

	"github.com/ankitm/fintrack/internal/model"
)

// transactionSummary is the reduced transaction shape sent to the provider.
// Descriptions are deliberately excluded: they may contain personal detail
// the analysis does not need.
type transactionSummary struct {
	Type     model.TransactionType `json:"type"`
	Amount   string                `json:"amount"`
	Category string                `json:"category"`
	Date     string                `json:"date"`
}

// BuildInsightsPrompt renders the spending-insights prompt for a transaction
// list.
func BuildInsightsPrompt(transactions []model.Transaction) (string, error) {
	summaries := make([]transactionSummary, 0, len(transactions))
	for _, txn := range transactions {
		summaries = append(summaries, transactionSummary{
			Type:     txn.Type,
			Amount:   txn.Amount.String(),
			Category: txn.Category,
			Date:     txn.Date.Format("2006-01-02"),
		})
	}

	data, err := json.Marshal(summaries)
	if err != nil {
		return "", fmt.Errorf("failed to encode transactions: %w", err)
	}

	prompt := fmt.Sprintf(`Analyze the following financial transactions and provide 3-4 concise, actionable insights.
Include one focus on savings, one on spending patterns, and one general financial tip.
Keep the tone professional yet encouraging.

Data: %s`, data)

	return prompt, nil
}
