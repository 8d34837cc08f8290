package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ankitm/fintrack/internal/common"
	"github.com/ankitm/fintrack/internal/model"
	"github.com/ankitm/fintrack/internal/service"
)

var _ service.Ledger = (*LedgerStore)(nil)

// Persistence keys. The names are inherited from earlier versions of the
// product and must not change, or existing ledgers stop loading.
const (
	keyTransactions = "fin-track-tx"
	keyBudgets      = "fin-track-budgets"
	keyRecurring    = "fin-track-recurring"
)

// LedgerStore holds the authoritative in-memory collections and persists a
// full snapshot to the key-value collaborator after every mutation. The
// in-memory state is the source of truth for the session: persistence write
// failures are logged and swallowed, never rolled back into memory.
type LedgerStore struct {
	kv           KV
	transactions []model.Transaction
	budgets      []model.Budget
	recurring    []model.RecurringItem
}

// NewLedgerStore loads the persisted collections from kv. An absent or
// malformed blob yields an empty collection rather than an error, so a fresh
// or damaged database always produces a usable (if empty) ledger.
func NewLedgerStore(ctx context.Context, kv KV) (*LedgerStore, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	s := &LedgerStore{kv: kv}

	loadBlob(ctx, kv, keyTransactions, &s.transactions)
	loadBlob(ctx, kv, keyBudgets, &s.budgets)
	loadBlob(ctx, kv, keyRecurring, &s.recurring)

	return s, nil
}

// loadBlob decodes one persisted collection. Read errors and malformed JSON
// both degrade to an empty collection with a warning.
func loadBlob[T any](ctx context.Context, kv KV, key string, out *[]T) {
	value, ok, err := kv.Get(ctx, key)
	if err != nil {
		common.LogWarn("failed to load persisted collection, starting empty", common.Fields{
			"key":   key,
			"error": err.Error(),
		})
		return
	}
	if !ok {
		return
	}

	var decoded []T
	if err := json.Unmarshal([]byte(value), &decoded); err != nil {
		common.LogWarn("persisted collection is malformed, starting empty", common.Fields{
			"key":   key,
			"error": err.Error(),
		})
		return
	}

	common.LogDebug("loaded persisted collection", common.Fields{
		"key":   key,
		"count": len(decoded),
	})
	*out = decoded
}

// persist writes one collection back to the key-value store. Failures are
// logged and swallowed: the in-memory ledger stays authoritative.
func (s *LedgerStore) persist(ctx context.Context, key string, collection any) {
	encoded, err := json.Marshal(collection)
	if err != nil {
		common.LogError(err, "failed to encode collection for persistence", common.Fields{"key": key})
		return
	}
	if err := s.kv.Put(ctx, key, string(encoded)); err != nil {
		common.LogError(err, "failed to persist collection", common.Fields{"key": key})
	}
}

// AddTransaction validates and records a transaction, then persists the
// snapshot.
func (s *LedgerStore) AddTransaction(ctx context.Context, txn model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransaction(txn); err != nil {
		return err
	}
	for _, existing := range s.transactions {
		if existing.ID == txn.ID {
			return fmt.Errorf("transaction %s: duplicate id", txn.ID)
		}
	}

	s.transactions = append(s.transactions, txn)
	s.persist(ctx, keyTransactions, s.transactions)
	return nil
}

// RemoveTransaction deletes a transaction by id.
func (s *LedgerStore) RemoveTransaction(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	for i, txn := range s.transactions {
		if txn.ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			s.persist(ctx, keyTransactions, s.transactions)
			return nil
		}
	}

	return fmt.Errorf("transaction %s: %w", id, common.ErrNotFound)
}

// Transactions returns a copy of the transaction list in insertion order.
func (s *LedgerStore) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// SetBudget validates and stores a budget, replacing any existing budget for
// the same category.
func (s *LedgerStore) SetBudget(ctx context.Context, budget model.Budget) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateBudget(budget); err != nil {
		return err
	}

	replaced := false
	for i, existing := range s.budgets {
		if existing.Category == budget.Category {
			s.budgets[i] = budget
			replaced = true
			break
		}
	}
	if !replaced {
		s.budgets = append(s.budgets, budget)
	}

	s.persist(ctx, keyBudgets, s.budgets)
	return nil
}

// RemoveBudget deletes the budget for a category.
func (s *LedgerStore) RemoveBudget(ctx context.Context, category string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(category, "category"); err != nil {
		return err
	}

	for i, budget := range s.budgets {
		if budget.Category == category {
			s.budgets = append(s.budgets[:i], s.budgets[i+1:]...)
			s.persist(ctx, keyBudgets, s.budgets)
			return nil
		}
	}

	return fmt.Errorf("budget %s: %w", category, common.ErrNotFound)
}

// Budgets returns a copy of the budget list.
func (s *LedgerStore) Budgets() []model.Budget {
	out := make([]model.Budget, len(s.budgets))
	copy(out, s.budgets)
	return out
}

// AddRecurring validates and records a recurring item, then persists the
// snapshot.
func (s *LedgerStore) AddRecurring(ctx context.Context, item model.RecurringItem) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRecurring(item); err != nil {
		return err
	}
	for _, existing := range s.recurring {
		if existing.ID == item.ID {
			return fmt.Errorf("recurring item %s: duplicate id", item.ID)
		}
	}

	s.recurring = append(s.recurring, item)
	s.persist(ctx, keyRecurring, s.recurring)
	return nil
}

// RemoveRecurring deletes a recurring item by id.
func (s *LedgerStore) RemoveRecurring(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	for i, item := range s.recurring {
		if item.ID == id {
			s.recurring = append(s.recurring[:i], s.recurring[i+1:]...)
			s.persist(ctx, keyRecurring, s.recurring)
			return nil
		}
	}

	return fmt.Errorf("recurring item %s: %w", id, common.ErrNotFound)
}

// Recurring returns a copy of the recurring item list in insertion order.
func (s *LedgerStore) Recurring() []model.RecurringItem {
	out := make([]model.RecurringItem, len(s.recurring))
	copy(out, s.recurring)
	return out
}

// Close closes the underlying key-value store.
func (s *LedgerStore) Close() error {
	return s.kv.Close()
}
