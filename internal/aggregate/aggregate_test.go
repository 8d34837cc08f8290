package aggregate

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankitm/fintrack/internal/model"
)

func txn(date string, amount float64, category string, txType model.TransactionType) model.Transaction {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return model.Transaction{
		ID:       category + date,
		Date:     t,
		Amount:   decimal.NewFromFloat(amount),
		Category: category,
		Type:     txType,
	}
}

func TestTotals(t *testing.T) {
	tests := []struct {
		name         string
		transactions []model.Transaction
		wantIncome   string
		wantExpense  string
		wantBalance  string
	}{
		{
			name:        "empty ledger yields zeros",
			wantIncome:  "0",
			wantExpense: "0",
			wantBalance: "0",
		},
		{
			name: "income and expense",
			transactions: []model.Transaction{
				txn("2026-08-01", 2000, "Salary", model.TypeIncome),
				txn("2026-08-05", 500, "Food & Dining", model.TypeExpense),
			},
			wantIncome:  "2000",
			wantExpense: "500",
			wantBalance: "1500",
		},
		{
			name: "expenses can exceed income",
			transactions: []model.Transaction{
				txn("2026-08-01", 100, "Salary", model.TypeIncome),
				txn("2026-08-02", 250, "Rent/Mortgage", model.TypeExpense),
			},
			wantIncome:  "100",
			wantExpense: "250",
			wantBalance: "-150",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := Totals(tt.transactions)
			assert.Equal(t, tt.wantIncome, stats.Income.String())
			assert.Equal(t, tt.wantExpense, stats.Expense.String())
			assert.Equal(t, tt.wantBalance, stats.Balance.String())
		})
	}
}

func TestCategoryBreakdown(t *testing.T) {
	transactions := []model.Transaction{
		txn("2026-08-01", 2000, "Salary", model.TypeIncome),
		txn("2026-08-02", 300, "Food & Dining", model.TypeExpense),
		txn("2026-08-03", 150, "Transport", model.TypeExpense),
		txn("2026-08-04", 200, "Food & Dining", model.TypeExpense),
	}

	breakdown := CategoryBreakdown(transactions)
	require.Len(t, breakdown, 2)

	// Income never appears; categories keep first-seen order.
	assert.Equal(t, "Food & Dining", breakdown[0].Category)
	assert.Equal(t, "500", breakdown[0].Amount.String())
	assert.Equal(t, "Transport", breakdown[1].Category)
	assert.Equal(t, "150", breakdown[1].Amount.String())

	// Breakdown total matches the expense total.
	sum := decimal.Zero
	for _, ct := range breakdown {
		sum = sum.Add(ct.Amount)
	}
	assert.True(t, sum.Equal(Totals(transactions).Expense))
}

func TestCategoryBreakdownEmpty(t *testing.T) {
	assert.Empty(t, CategoryBreakdown(nil))
	assert.Empty(t, CategoryBreakdown([]model.Transaction{
		txn("2026-08-01", 100, "Salary", model.TypeIncome),
	}))
}

func TestMonthlySeries(t *testing.T) {
	transactions := []model.Transaction{
		txn("2026-03-10", 400, "Shopping", model.TypeExpense),
		txn("2026-01-05", 2000, "Salary", model.TypeIncome),
		txn("2026-03-01", 2000, "Salary", model.TypeIncome),
		txn("2026-01-20", 800, "Rent/Mortgage", model.TypeExpense),
	}

	series := MonthlySeries(transactions)
	require.Len(t, series, 2)

	assert.Equal(t, "2026-01", series[0].Month.String())
	assert.Equal(t, "2000", series[0].Income.String())
	assert.Equal(t, "800", series[0].Expense.String())

	assert.Equal(t, "2026-03", series[1].Month.String())
	assert.Equal(t, "2000", series[1].Income.String())
	assert.Equal(t, "400", series[1].Expense.String())
}

func TestMonthlySeriesSpansYears(t *testing.T) {
	transactions := []model.Transaction{
		txn("2026-01-15", 10, "Other", model.TypeExpense),
		txn("2025-12-15", 20, "Other", model.TypeExpense),
	}

	series := MonthlySeries(transactions)
	require.Len(t, series, 2)
	assert.Equal(t, "2025-12", series[0].Month.String())
	assert.Equal(t, "2026-01", series[1].Month.String())
}

func TestCurrentMonthSpend(t *testing.T) {
	reference := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

	transactions := []model.Transaction{
		txn("2026-08-01", 300, "Food & Dining", model.TypeExpense),
		txn("2026-08-20", 200, "Food & Dining", model.TypeExpense),
		txn("2026-07-31", 999, "Food & Dining", model.TypeExpense), // prior month
		txn("2025-08-10", 999, "Food & Dining", model.TypeExpense), // prior year, same month
		txn("2026-08-10", 150, "Transport", model.TypeExpense),     // other category
		txn("2026-08-10", 2000, "Food & Dining", model.TypeIncome), // income ignored
	}

	spent := CurrentMonthSpend(transactions, "Food & Dining", reference)
	assert.Equal(t, "500", spent.String())
}

func TestCurrentMonthSpendEmpty(t *testing.T) {
	spent := CurrentMonthSpend(nil, "Food & Dining", time.Now())
	assert.True(t, spent.IsZero())
}

func TestMonth(t *testing.T) {
	m := NewMonth(2026, time.August)
	assert.Equal(t, "2026-08", m.String())

	assert.True(t, m.Contains(time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, m.Contains(time.Date(2026, time.August, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, m.Contains(time.Date(2026, time.July, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, m.Contains(time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)))

	earlier := NewMonth(2025, time.December)
	assert.True(t, earlier.Before(m))
	assert.False(t, m.Before(earlier))
	assert.True(t, m.Equal(MonthOf(time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC))))
}
