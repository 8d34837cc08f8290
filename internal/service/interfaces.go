// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/ankitm/fintrack/internal/model"
)

// Ledger defines the contract for the authoritative transaction store.
// All mutations are synchronous and atomic with respect to a single caller;
// after every mutation the full snapshot is persisted to the key-value
// collaborator. Persistence failures never roll back in-memory state.
type Ledger interface {
	// Transaction operations
	AddTransaction(ctx context.Context, txn model.Transaction) error
	RemoveTransaction(ctx context.Context, id string) error
	Transactions() []model.Transaction

	// Budget operations. SetBudget replaces any existing budget for the
	// same category.
	SetBudget(ctx context.Context, budget model.Budget) error
	RemoveBudget(ctx context.Context, category string) error
	Budgets() []model.Budget

	// Recurring item operations
	AddRecurring(ctx context.Context, item model.RecurringItem) error
	RemoveRecurring(ctx context.Context, id string) error
	Recurring() []model.RecurringItem

	Close() error
}

// Permission is the notification permission state.
type Permission string

// Notification permission states.
const (
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
	PermissionDefault Permission = "default"
)

// Notifier delivers alert notifications to the user. Notify is a no-op
// unless permission has been granted.
type Notifier interface {
	RequestPermission(ctx context.Context) (Permission, error)
	Permission() Permission
	Notify(title, body string)
}

// Summarizer produces a natural-language summary of spending habits.
// Implementations never propagate failures; they return a fallback message
// instead.
type Summarizer interface {
	Summarize(ctx context.Context, transactions []model.Transaction) string
}
