package main

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ankitm/fintrack/internal/aggregate"
	"github.com/ankitm/fintrack/internal/cli"
	"github.com/ankitm/fintrack/internal/model"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage monthly category budgets",
		Long:  `Set, list, and delete monthly spending limits per expense category.`,
	}

	cmd.AddCommand(budgetSetCmd())
	cmd.AddCommand(budgetListCmd())
	cmd.AddCommand(budgetDeleteCmd())

	return cmd
}

func budgetSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <category> <limit>",
		Short: "Set (or replace) the budget for a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			category := args[0]

			limit, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("invalid limit %q: %w", args[1], err)
			}

			ledger, kv, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = ledger.Close() }()

			if err := ledger.SetBudget(ctx, model.Budget{Category: category, Limit: limit}); err != nil {
				return fmt.Errorf("failed to set budget: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Budget for %s set to %s/month", category, money(limit))))

			runEvaluators(ctx, ledger, kv, time.Now())
			return nil
		},
	}
}

func budgetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List budgets with current-month consumption",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			ledger, _, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = ledger.Close() }()

			budgets := ledger.Budgets()
			if len(budgets) == 0 {
				fmt.Println(cli.InfoStyle.Render("No budgets set yet. Use 'fintrack budget set' to create one."))
				return nil
			}

			transactions := ledger.Transactions()
			now := time.Now()

			fmt.Println(cli.TitleStyle.Render("Monthly Budgets"))
			for _, budget := range budgets {
				spent := aggregate.CurrentMonthSpend(transactions, budget.Category, now)

				progress := 0.0
				if budget.Limit.Sign() > 0 {
					progress, _ = spent.Div(budget.Limit).Float64()
				}
				percent := int(progress * 100)

				// Display thresholds: green below 70%, amber to 90%, red above.
				style := cli.IncomeStyle
				switch {
				case percent > 90:
					style = cli.ExpenseStyle
				case percent > 70:
					style = cli.WarningStyle
				}

				fmt.Printf("  %-16s %s %3d%%  %s / %s\n",
					budget.Category,
					cli.Bar(progress, barWidth, style),
					percent,
					money(spent),
					money(budget.Limit),
				)

				switch {
				case percent >= 100:
					fmt.Println(cli.ExpenseStyle.Render("                   ⚠ Budget Limit Exceeded"))
				case percent >= 90:
					fmt.Println(cli.WarningStyle.Render("                   ⚠ Approaching Budget Limit"))
				}
			}

			return nil
		},
	}
}

func budgetDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <category>",
		Short: "Delete the budget for a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			category := args[0]

			ledger, _, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = ledger.Close() }()

			if err := ledger.RemoveBudget(ctx, category); err != nil {
				return fmt.Errorf("failed to delete budget: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Deleted budget for %s", category)))
			return nil
		},
	}
}
