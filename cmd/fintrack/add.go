package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ankitm/fintrack/internal/cli"
	"github.com/ankitm/fintrack/internal/model"
)

func addCmd() *cobra.Command {
	var (
		amountFlag      string
		typeFlag        string
		categoryFlag    string
		descriptionFlag string
		dateFlag        string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an income or expense transaction",
		Long: `Record a transaction in the ledger. Budget and recurring-bill alerts are
re-evaluated immediately after the transaction is saved.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			txType := model.TransactionType(strings.ToLower(typeFlag))
			if !txType.Valid() {
				return fmt.Errorf("invalid --type %q (expected income or expense)", typeFlag)
			}

			amount, err := decimal.NewFromString(amountFlag)
			if err != nil {
				return fmt.Errorf("invalid --amount %q: %w", amountFlag, err)
			}

			category := categoryFlag
			if category == "" {
				// Default to the first category of the chosen type, the
				// same default the entry form pre-selects.
				category = model.CategoriesFor(txType)[0]
			}

			date, err := parseDate(dateFlag, time.Now())
			if err != nil {
				return err
			}

			ledger, kv, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = ledger.Close() }()

			txn := model.NewTransaction(date, amount, category, descriptionFlag, txType)
			if err := ledger.AddTransaction(ctx, txn); err != nil {
				return fmt.Errorf("failed to add transaction: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Recorded %s of %s in %s (ID: %s)",
				txType, money(amount), category, txn.ID)))

			runEvaluators(ctx, ledger, kv, time.Now())
			return nil
		},
	}

	cmd.Flags().StringVar(&amountFlag, "amount", "", "transaction amount (required)")
	cmd.Flags().StringVar(&typeFlag, "type", "expense", "transaction type (income or expense)")
	cmd.Flags().StringVar(&categoryFlag, "category", "", "category (defaults to the first category for the type)")
	cmd.Flags().StringVar(&descriptionFlag, "description", "", "optional description")
	cmd.Flags().StringVar(&dateFlag, "date", "", "transaction date as YYYY-MM-DD (defaults to today)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
