// Package report builds the monthly financial report from ledger aggregates.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/ankitm/fintrack/internal/aggregate"
	"github.com/ankitm/fintrack/internal/model"
)

// MonthRow is a single month of the financial report.
type MonthRow struct {
	Month      aggregate.Month
	Income     decimal.Decimal
	Expense    decimal.Decimal
	Net        decimal.Decimal
	Efficiency int // net savings as a percentage of income, rounded
}

// Build produces report rows in reverse-chronological order. Per month,
// net = income - expense and efficiency = round(net/income*100) when income
// is positive, zero otherwise. Efficiency may be negative.
func Build(transactions []model.Transaction) []MonthRow {
	series := aggregate.MonthlySeries(transactions)

	rows := make([]MonthRow, 0, len(series))
	for i := len(series) - 1; i >= 0; i-- {
		bucket := series[i]
		net := bucket.Income.Sub(bucket.Expense)

		efficiency := 0
		if bucket.Income.Sign() > 0 {
			efficiency = int(net.Div(bucket.Income).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
		}

		rows = append(rows, MonthRow{
			Month:      bucket.Month,
			Income:     bucket.Income,
			Expense:    bucket.Expense,
			Net:        net,
			Efficiency: efficiency,
		})
	}

	return rows
}

// TopExpenseCategory returns the category with the highest total expense
// across the entire transaction set. Ties break in favor of the category
// seen first. The second return value is false when there are no expenses.
func TopExpenseCategory(transactions []model.Transaction) (aggregate.CategoryTotal, bool) {
	breakdown := aggregate.CategoryBreakdown(transactions)
	if len(breakdown) == 0 {
		return aggregate.CategoryTotal{}, false
	}

	top := breakdown[0]
	for _, ct := range breakdown[1:] {
		if ct.Amount.GreaterThan(top.Amount) {
			top = ct
		}
	}

	return top, true
}
