// Package alert evaluates budget consumption and recurring-item due dates,
// emitting threshold-crossing events for the notification layer.
package alert

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ankitm/fintrack/internal/aggregate"
	"github.com/ankitm/fintrack/internal/model"
)

// Kind identifies the budget threshold that was crossed.
type Kind string

// Budget event kinds.
const (
	KindWarning  Kind = "warning"  // 80% of the limit reached
	KindExceeded Kind = "exceeded" // limit reached or passed
)

// warningRatio is the consumption ratio at which a Warning event fires.
var warningRatio = decimal.NewFromFloat(0.8)

// BudgetEvent records a budget whose current-month spend crossed a threshold.
type BudgetEvent struct {
	Kind     Kind
	Category string
	Spent    decimal.Decimal
	Limit    decimal.Decimal
}

// EvaluateBudgets runs a full evaluation pass over every budget. Each budget
// yields at most one event per pass: Exceeded when spent/limit >= 1.0,
// Warning when 0.8 <= spent/limit < 1.0, nothing below that. A limit of zero
// (or less) is treated as immediately exceeded rather than a division error.
// Deduplication across passes is the caller's concern.
func EvaluateBudgets(transactions []model.Transaction, budgets []model.Budget, now time.Time) []BudgetEvent {
	var events []BudgetEvent

	for _, b := range budgets {
		spent := aggregate.CurrentMonthSpend(transactions, b.Category, now)

		if b.Limit.Sign() <= 0 {
			events = append(events, BudgetEvent{Kind: KindExceeded, Category: b.Category, Spent: spent, Limit: b.Limit})
			continue
		}

		ratio := spent.Div(b.Limit)
		switch {
		case ratio.GreaterThanOrEqual(decimal.NewFromInt(1)):
			events = append(events, BudgetEvent{Kind: KindExceeded, Category: b.Category, Spent: spent, Limit: b.Limit})
		case ratio.GreaterThanOrEqual(warningRatio):
			events = append(events, BudgetEvent{Kind: KindWarning, Category: b.Category, Spent: spent, Limit: b.Limit})
		}
	}

	return events
}
