package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ankitm/fintrack/internal/aggregate"
	"github.com/ankitm/fintrack/internal/cli"
)

// barWidth is the width of the category and cash-flow chart bars.
const barWidth = 30

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show balance, category breakdown, and monthly cash flow",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			ledger, _, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = ledger.Close() }()

			transactions := ledger.Transactions()
			stats := aggregate.Totals(transactions)

			fmt.Println(cli.TitleStyle.Render("Overview"))
			fmt.Printf("  Total Balance  %s\n", money(stats.Balance))
			fmt.Printf("  Income         %s\n", cli.IncomeStyle.Render("+"+money(stats.Income)))
			fmt.Printf("  Expenses       %s\n", cli.ExpenseStyle.Render("-"+money(stats.Expense)))
			fmt.Println()

			breakdown := aggregate.CategoryBreakdown(transactions)
			fmt.Println(cli.TitleStyle.Render("Spending by Category"))
			if len(breakdown) == 0 {
				fmt.Println(cli.SubtleStyle.Render("  No expense data yet"))
			} else {
				max := breakdown[0].Amount
				for _, ct := range breakdown[1:] {
					if ct.Amount.GreaterThan(max) {
						max = ct.Amount
					}
				}
				for _, ct := range breakdown {
					ratio, _ := ct.Amount.Div(max).Float64()
					fmt.Printf("  %-16s %s %s\n",
						ct.Category,
						cli.Bar(ratio, barWidth, cli.CategoryStyle(ct.Category)),
						money(ct.Amount),
					)
				}
			}
			fmt.Println()

			series := aggregate.MonthlySeries(transactions)
			fmt.Println(cli.TitleStyle.Render("Cash Flow Trend"))
			if len(series) == 0 {
				fmt.Println(cli.SubtleStyle.Render("  No trend data yet"))
				return nil
			}

			max := series[0].Income
			for _, bucket := range series {
				if bucket.Income.GreaterThan(max) {
					max = bucket.Income
				}
				if bucket.Expense.GreaterThan(max) {
					max = bucket.Expense
				}
			}
			if max.Sign() == 0 {
				return nil
			}

			for _, bucket := range series {
				incomeRatio, _ := bucket.Income.Div(max).Float64()
				expenseRatio, _ := bucket.Expense.Div(max).Float64()
				fmt.Printf("  %s  %s %s\n", bucket.Month, cli.Bar(incomeRatio, barWidth, cli.IncomeStyle), cli.IncomeStyle.Render("+"+money(bucket.Income)))
				fmt.Printf("           %s %s\n", cli.Bar(expenseRatio, barWidth, cli.ExpenseStyle), cli.ExpenseStyle.Render("-"+money(bucket.Expense)))
			}

			return nil
		},
	}
}
