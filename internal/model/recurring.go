package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Frequency describes how often a recurring item repeats.
type Frequency string

// Valid frequencies.
const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// Valid reports whether f is a known frequency.
func (f Frequency) Valid() bool {
	return f == FrequencyDaily || f == FrequencyWeekly || f == FrequencyMonthly
}

// RecurringItem is a future obligation such as a subscription or bill.
// It is never materialized into a Transaction automatically and its NextDate
// is never advanced by the system; it exists only for due-date alerting.
type RecurringItem struct {
	NextDate    time.Time       `json:"nextDate"`
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Frequency   Frequency       `json:"frequency"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
}

// NewRecurringItem builds a recurring item with a fresh unique id.
func NewRecurringItem(description string, amount decimal.Decimal, category string, freq Frequency, nextDate time.Time, txType TransactionType) RecurringItem {
	return RecurringItem{
		ID:          uuid.NewString(),
		Description: description,
		Amount:      amount,
		Category:    category,
		Frequency:   freq,
		NextDate:    nextDate,
		Type:        txType,
	}
}
