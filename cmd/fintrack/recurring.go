package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ankitm/fintrack/internal/alert"
	"github.com/ankitm/fintrack/internal/cli"
	"github.com/ankitm/fintrack/internal/model"
)

func recurringCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recurring",
		Short: "Manage recurring bills and income",
		Long:  `Track recurring items such as rent, subscriptions, and salary, and get reminded when they come due.`,
	}

	cmd.AddCommand(recurringAddCmd())
	cmd.AddCommand(recurringListCmd())
	cmd.AddCommand(recurringDeleteCmd())

	return cmd
}

func recurringAddCmd() *cobra.Command {
	var (
		amountStr   string
		txType      string
		category    string
		description string
		frequency   string
		nextDateStr string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a recurring item",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			now := time.Now()

			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", amountStr, err)
			}

			itemType := model.TransactionType(txType)
			if category == "" {
				categories := model.CategoriesFor(itemType)
				if len(categories) > 0 {
					category = categories[0]
				}
			}

			nextDate, err := parseDate(nextDateStr, now)
			if err != nil {
				return err
			}

			ledger, kv, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = ledger.Close() }()

			item := model.NewRecurringItem(description, amount, category, model.Frequency(frequency), nextDate, itemType)
			if err := ledger.AddRecurring(ctx, item); err != nil {
				return fmt.Errorf("failed to add recurring item: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Added recurring %s: %s (%s, next due %s)",
				itemType, description, frequency, nextDate.Format(dateLayout))))

			runEvaluators(ctx, ledger, kv, now)
			return nil
		},
	}

	cmd.Flags().StringVar(&amountStr, "amount", "", "Amount per occurrence (required)")
	cmd.Flags().StringVar(&txType, "type", "expense", "Item type: income or expense")
	cmd.Flags().StringVar(&category, "category", "", "Category (defaults to the first for the type)")
	cmd.Flags().StringVar(&description, "description", "", "Description, e.g. 'Rent' or 'Netflix'")
	cmd.Flags().StringVar(&frequency, "frequency", "monthly", "Frequency: daily, weekly, or monthly")
	cmd.Flags().StringVar(&nextDateStr, "next-date", "", "Next due date (YYYY-MM-DD, defaults to today)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func recurringListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recurring items with their next due dates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			ledger, _, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = ledger.Close() }()

			items := ledger.Recurring()
			if len(items) == 0 {
				fmt.Println(cli.InfoStyle.Render("No recurring items yet. Use 'fintrack recurring add' to create one."))
				return nil
			}

			sort.Slice(items, func(i, j int) bool {
				return items[i].NextDate.Before(items[j].NextDate)
			})

			now := time.Now()

			fmt.Println(cli.TitleStyle.Render("Recurring Items"))
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NEXT DUE\tDESCRIPTION\tCATEGORY\tFREQUENCY\tAMOUNT\tID")
			for _, item := range items {
				amount := cli.ExpenseStyle.Render("-" + money(item.Amount))
				if item.Type == model.TypeIncome {
					amount = cli.IncomeStyle.Render("+" + money(item.Amount))
				}

				due := item.NextDate.Format(dateLayout)
				if days := alert.DaysUntil(item.NextDate, now); days >= 0 && days <= 2 {
					due = cli.WarningStyle.Render(fmt.Sprintf("%s (due in %d day(s))", due, days))
				}

				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					due, item.Description, item.Category, item.Frequency, amount, cli.SubtleStyle.Render(item.ID))
			}
			return w.Flush()
		},
	}
}

func recurringDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a recurring item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ledger, _, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = ledger.Close() }()

			if err := ledger.RemoveRecurring(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete recurring item: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render("✓ Deleted recurring item " + args[0]))
			return nil
		},
	}
}
