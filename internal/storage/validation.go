package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ankitm/fintrack/internal/common"
	"github.com/ankitm/fintrack/internal/model"
)

// Validation errors.
var (
	ErrNilContext  = errors.New("context cannot be nil")
	ErrEmptyString = errors.New("string parameter cannot be empty")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTransaction enforces the mutation-boundary invariants: a positive
// amount, a valid type, and a category drawn from the set for that type. No
// partial transaction ever reaches the collections.
func validateTransaction(txn model.Transaction) error {
	if txn.ID == "" {
		return fmt.Errorf("%w: transaction id", ErrEmptyString)
	}
	if txn.Date.IsZero() {
		return fmt.Errorf("transaction %s: missing date", txn.ID)
	}
	if !txn.Type.Valid() {
		return fmt.Errorf("transaction %s: %w: %q", txn.ID, common.ErrInvalidType, txn.Type)
	}
	if txn.Amount.Sign() <= 0 {
		return fmt.Errorf("transaction %s: %w", txn.ID, common.ErrInvalidAmount)
	}
	if !model.ValidCategory(txn.Type, txn.Category) {
		return fmt.Errorf("transaction %s: %w: %q", txn.ID, common.ErrInvalidCategory, txn.Category)
	}
	return nil
}

// validateBudget enforces a known expense category and a positive limit.
func validateBudget(budget model.Budget) error {
	if !model.ValidCategory(model.TypeExpense, budget.Category) {
		return fmt.Errorf("budget: %w: %q", common.ErrInvalidCategory, budget.Category)
	}
	if budget.Limit.Sign() <= 0 {
		return fmt.Errorf("budget %s: %w", budget.Category, common.ErrInvalidAmount)
	}
	return nil
}

// validateRecurring enforces the invariants for a recurring item.
func validateRecurring(item model.RecurringItem) error {
	if item.ID == "" {
		return fmt.Errorf("%w: recurring item id", ErrEmptyString)
	}
	if strings.TrimSpace(item.Description) == "" {
		return fmt.Errorf("recurring item %s: %w: description", item.ID, ErrEmptyString)
	}
	if item.NextDate.IsZero() {
		return fmt.Errorf("recurring item %s: missing next date", item.ID)
	}
	if !item.Type.Valid() {
		return fmt.Errorf("recurring item %s: %w: %q", item.ID, common.ErrInvalidType, item.Type)
	}
	if !item.Frequency.Valid() {
		return fmt.Errorf("recurring item %s: %w: %q", item.ID, common.ErrInvalidFrequency, item.Frequency)
	}
	if item.Amount.Sign() <= 0 {
		return fmt.Errorf("recurring item %s: %w", item.ID, common.ErrInvalidAmount)
	}
	if !model.ValidCategory(item.Type, item.Category) {
		return fmt.Errorf("recurring item %s: %w: %q", item.ID, common.ErrInvalidCategory, item.Category)
	}
	return nil
}
