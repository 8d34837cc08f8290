// Package model defines the core domain types for the fintrack ledger.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

// Valid transaction types.
const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction represents a single recorded income or expense.
// Transactions are immutable once created; they can only be deleted.
type Transaction struct {
	Date        time.Time       `json:"date"`
	ID          string          `json:"id"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
}

// NewTransaction builds a transaction with a fresh unique id.
func NewTransaction(date time.Time, amount decimal.Decimal, category, description string, txType TransactionType) Transaction {
	return Transaction{
		ID:          uuid.NewString(),
		Date:        date,
		Amount:      amount,
		Category:    category,
		Description: description,
		Type:        txType,
	}
}
