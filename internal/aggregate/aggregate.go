// Package aggregate computes derived statistics from a ledger snapshot.
// Every function here is pure and deterministic: the same transaction list
// (plus a reference time where month scoping applies) always yields the same
// result, so callers recompute from scratch on every read.
package aggregate

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ankitm/fintrack/internal/model"
)

// Stats holds the whole-ledger balance totals.
type Stats struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// Totals sums income and expense amounts across the full transaction list.
// Balance is income minus expense. Empty input yields all zeros.
func Totals(transactions []model.Transaction) Stats {
	income := decimal.Zero
	expense := decimal.Zero

	for _, txn := range transactions {
		switch txn.Type {
		case model.TypeIncome:
			income = income.Add(txn.Amount)
		case model.TypeExpense:
			expense = expense.Add(txn.Amount)
		}
	}

	return Stats{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}

// CategoryTotal is the summed expense amount for a single category.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// CategoryBreakdown groups expense transactions by exact category match.
// The result preserves the order in which each category first appears.
func CategoryBreakdown(transactions []model.Transaction) []CategoryTotal {
	index := make(map[string]int)
	var breakdown []CategoryTotal

	for _, txn := range transactions {
		if txn.Type != model.TypeExpense {
			continue
		}
		i, ok := index[txn.Category]
		if !ok {
			i = len(breakdown)
			index[txn.Category] = i
			breakdown = append(breakdown, CategoryTotal{Category: txn.Category, Amount: decimal.Zero})
		}
		breakdown[i].Amount = breakdown[i].Amount.Add(txn.Amount)
	}

	return breakdown
}

// MonthBucket holds the income and expense totals for one calendar month.
type MonthBucket struct {
	Month   Month
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// MonthlySeries buckets transactions by calendar month and year, one bucket
// per distinct (year, month) pair present in the data, ordered
// chronologically ascending.
func MonthlySeries(transactions []model.Transaction) []MonthBucket {
	index := make(map[Month]int)
	var series []MonthBucket

	for _, txn := range transactions {
		month := MonthOf(txn.Date)
		i, ok := index[month]
		if !ok {
			i = len(series)
			index[month] = i
			series = append(series, MonthBucket{Month: month, Income: decimal.Zero, Expense: decimal.Zero})
		}
		if txn.Type == model.TypeIncome {
			series[i].Income = series[i].Income.Add(txn.Amount)
		} else {
			series[i].Expense = series[i].Expense.Add(txn.Amount)
		}
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Month.Before(series[j].Month)
	})

	return series
}

// CurrentMonthSpend sums expense amounts for the given category within the
// same calendar month and year as the reference time. Both the budget alert
// evaluator and the budget progress display go through this single function
// so their notion of "spent this month" can never diverge.
func CurrentMonthSpend(transactions []model.Transaction, category string, reference time.Time) decimal.Decimal {
	month := MonthOf(reference)
	spent := decimal.Zero

	for _, txn := range transactions {
		if txn.Type != model.TypeExpense || txn.Category != category {
			continue
		}
		if month.Contains(txn.Date) {
			spent = spent.Add(txn.Amount)
		}
	}

	return spent
}
