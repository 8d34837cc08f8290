package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionTypeValid(t *testing.T) {
	assert.True(t, TypeIncome.Valid())
	assert.True(t, TypeExpense.Valid())
	assert.False(t, TransactionType("transfer").Valid())
	assert.False(t, TransactionType("").Valid())
}

func TestFrequencyValid(t *testing.T) {
	assert.True(t, FrequencyDaily.Valid())
	assert.True(t, FrequencyWeekly.Valid())
	assert.True(t, FrequencyMonthly.Valid())
	assert.False(t, Frequency("yearly").Valid())
	assert.False(t, Frequency("").Valid())
}

func TestNewTransaction(t *testing.T) {
	date := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	txn := NewTransaction(date, decimal.NewFromInt(250), "Transport", "bus pass", TypeExpense)

	assert.NotEmpty(t, txn.ID)
	assert.Equal(t, date, txn.Date)
	assert.Equal(t, "Transport", txn.Category)
	assert.Equal(t, TypeExpense, txn.Type)

	other := NewTransaction(date, decimal.NewFromInt(250), "Transport", "bus pass", TypeExpense)
	assert.NotEqual(t, txn.ID, other.ID)
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory(TypeExpense, "Food & Dining"))
	assert.True(t, ValidCategory(TypeIncome, "Salary"))
	assert.True(t, ValidCategory(TypeIncome, "Other"))
	assert.True(t, ValidCategory(TypeExpense, "Other"))

	assert.False(t, ValidCategory(TypeExpense, "Salary"), "income categories are not valid for expenses")
	assert.False(t, ValidCategory(TypeIncome, "Transport"))
	assert.False(t, ValidCategory(TypeExpense, "food & dining"), "matching is case-sensitive")
	assert.False(t, ValidCategory(TypeExpense, ""))
}

func TestColorFor(t *testing.T) {
	assert.Equal(t, "#F87171", ColorFor("Food & Dining"))
	assert.Equal(t, DefaultCategoryColor, ColorFor("Education"))
	assert.Equal(t, DefaultCategoryColor, ColorFor("unknown"))
}

func TestTransactionJSONShape(t *testing.T) {
	txn := Transaction{
		ID:          "t1",
		Date:        time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.NewFromFloat(45.5),
		Category:    "Food & Dining",
		Description: "lunch",
		Type:        TypeExpense,
	}

	data, err := json.Marshal(txn)
	require.NoError(t, err)

	var decoded Transaction
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, txn.ID, decoded.ID)
	assert.True(t, txn.Amount.Equal(decoded.Amount))
	assert.True(t, txn.Date.Equal(decoded.Date))

	// Description is omitted when empty.
	txn.Description = ""
	data, err = json.Marshal(txn)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "description")
}
