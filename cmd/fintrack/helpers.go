package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/ankitm/fintrack/internal/alert"
	"github.com/ankitm/fintrack/internal/common"
	"github.com/ankitm/fintrack/internal/config"
	"github.com/ankitm/fintrack/internal/llm"
	"github.com/ankitm/fintrack/internal/notify"
	"github.com/ankitm/fintrack/internal/service"
	"github.com/ankitm/fintrack/internal/storage"
)

// dateLayout is the CLI input format for dates.
const dateLayout = "2006-01-02"

// initKV opens the key-value database with proper path expansion.
func initKV() (*storage.SQLiteKV, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/fintrack/fintrack.db"
	}
	dbPath = config.ExpandPath(dbPath)

	return storage.NewSQLiteKV(dbPath)
}

// initLedger opens the key-value database and loads the ledger from it.
// Closing the ledger closes the database.
func initLedger(ctx context.Context) (*storage.LedgerStore, *storage.SQLiteKV, error) {
	kv, err := initKV()
	if err != nil {
		return nil, nil, err
	}

	ledger, err := storage.NewLedgerStore(ctx, kv)
	if err != nil {
		_ = kv.Close()
		return nil, nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	return ledger, kv, nil
}

// newNotifier builds the terminal notifier over the shared key-value store.
func newNotifier(ctx context.Context, kv *storage.SQLiteKV) *notify.TerminalNotifier {
	return notify.NewTerminalNotifier(ctx, kv, os.Stdout)
}

// newSummarizer builds the configured AI summarizer.
func newSummarizer() (service.Summarizer, error) {
	provider := viper.GetString("llm.provider")
	if provider == "" {
		provider = "gemini"
	}

	client, err := llm.NewClient(llm.Config{
		Provider:    provider,
		APIKey:      viper.GetString("llm.api_key"),
		Model:       viper.GetString("llm.model"),
		Temperature: viper.GetFloat64("llm.temperature"),
		MaxTokens:   viper.GetInt("llm.max_tokens"),
	})
	if err != nil {
		return nil, common.NewUserError(
			"AI insights are not configured. Set llm.provider and llm.api_key in your config file.", err)
	}

	return llm.NewInsightSummarizer(client), nil
}

// currencySymbol returns the configured display currency symbol.
func currencySymbol() string {
	if symbol := viper.GetString("currency.symbol"); symbol != "" {
		return symbol
	}
	return "₹"
}

// money formats an amount with the currency symbol for display.
func money(amount decimal.Decimal) string {
	return currencySymbol() + amount.StringFixed(2)
}

// runEvaluators performs a full alert evaluation pass against the current
// ledger state and delivers any events through the notifier. It runs after
// every mutation; the notifier decides whether anything is shown.
func runEvaluators(ctx context.Context, ledger *storage.LedgerStore, kv *storage.SQLiteKV, now time.Time) {
	notifier := newNotifier(ctx, kv)

	for _, event := range alert.EvaluateBudgets(ledger.Transactions(), ledger.Budgets(), now) {
		switch event.Kind {
		case alert.KindExceeded:
			notifier.Notify("Budget Alert!", fmt.Sprintf("You've exceeded your %s budget.", event.Category))
		case alert.KindWarning:
			notifier.Notify("Budget Warning", fmt.Sprintf("You're at 80%% of your %s budget.", event.Category))
		}
	}

	for _, event := range alert.EvaluateRecurring(ledger.Recurring(), now) {
		notifier.Notify("Upcoming Bill", fmt.Sprintf("%s is due in %d day(s).", event.Item.Description, event.DaysUntil))
	}
}

// parseDate parses a --date flag value, defaulting to today when empty.
func parseDate(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", value, err)
	}
	return date, nil
}
