package alert

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankitm/fintrack/internal/model"
)

func expense(date time.Time, amount float64, category string) model.Transaction {
	return model.Transaction{
		ID:       category + date.Format("2006-01-02"),
		Date:     date,
		Amount:   decimal.NewFromFloat(amount),
		Category: category,
		Type:     model.TypeExpense,
	}
}

func TestEvaluateBudgets(t *testing.T) {
	now := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	budget := func(limit float64) []model.Budget {
		return []model.Budget{{Category: "Food & Dining", Limit: decimal.NewFromFloat(limit)}}
	}

	tests := []struct {
		name     string
		spent    float64
		limit    float64
		wantKind Kind
		wantNone bool
	}{
		{name: "below warning threshold", spent: 79, limit: 100, wantNone: true},
		{name: "exactly at warning threshold", spent: 80, limit: 100, wantKind: KindWarning},
		{name: "between thresholds", spent: 99, limit: 100, wantKind: KindWarning},
		{name: "exactly at limit", spent: 100, limit: 100, wantKind: KindExceeded},
		{name: "over limit", spent: 150, limit: 100, wantKind: KindExceeded},
		{name: "no spend", spent: 0, limit: 100, wantNone: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var transactions []model.Transaction
			if tt.spent > 0 {
				transactions = append(transactions, expense(now, tt.spent, "Food & Dining"))
			}

			events := EvaluateBudgets(transactions, budget(tt.limit), now)
			if tt.wantNone {
				assert.Empty(t, events)
				return
			}

			require.Len(t, events, 1)
			assert.Equal(t, tt.wantKind, events[0].Kind)
			assert.Equal(t, "Food & Dining", events[0].Category)
		})
	}
}

func TestEvaluateBudgetsZeroLimit(t *testing.T) {
	now := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	budgets := []model.Budget{{Category: "Shopping", Limit: decimal.Zero}}

	events := EvaluateBudgets(nil, budgets, now)
	require.Len(t, events, 1)
	assert.Equal(t, KindExceeded, events[0].Kind)
}

func TestEvaluateBudgetsScopedToCurrentMonth(t *testing.T) {
	now := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	budgets := []model.Budget{{Category: "Transport", Limit: decimal.NewFromInt(100)}}

	// Heavy spend last month must not trigger this month's alert.
	transactions := []model.Transaction{
		expense(now.AddDate(0, -1, 0), 500, "Transport"),
		expense(now, 50, "Transport"),
	}

	assert.Empty(t, EvaluateBudgets(transactions, budgets, now))
}

func TestEvaluateBudgetsOneEventPerBudget(t *testing.T) {
	now := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	budgets := []model.Budget{
		{Category: "Food & Dining", Limit: decimal.NewFromInt(100)},
		{Category: "Transport", Limit: decimal.NewFromInt(100)},
	}
	transactions := []model.Transaction{
		expense(now, 200, "Food & Dining"),
		expense(now, 85, "Transport"),
	}

	events := EvaluateBudgets(transactions, budgets, now)
	require.Len(t, events, 2)
	assert.Equal(t, KindExceeded, events[0].Kind)
	assert.Equal(t, KindWarning, events[1].Kind)
}
