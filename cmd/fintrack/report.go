package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ankitm/fintrack/internal/cli"
	"github.com/ankitm/fintrack/internal/report"
)

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show the monthly savings report",
		Long:  `Break down income, expenses, net savings, and savings efficiency by month, most recent first.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			ledger, _, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = ledger.Close() }()

			transactions := ledger.Transactions()
			if len(transactions) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions yet. Add some to see your monthly report."))
				return nil
			}

			rows := report.Build(transactions)

			fmt.Println(cli.TitleStyle.Render("Monthly Savings Report"))
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "MONTH\tINCOME\tEXPENSES\tNET SAVINGS\tEFFICIENCY")

			var totalNet decimal.Decimal
			for _, row := range rows {
				net := cli.IncomeStyle.Render(money(row.Net))
				if row.Net.Sign() < 0 {
					net = cli.ExpenseStyle.Render(money(row.Net))
				}

				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d%%\n",
					row.Month, money(row.Income), money(row.Expense), net, row.Efficiency)
				totalNet = totalNet.Add(row.Net)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Println()
			fmt.Printf("  Total savings pool: %s\n", cli.IncomeStyle.Render(money(totalNet)))

			if top, ok := report.TopExpenseCategory(transactions); ok {
				fmt.Printf("  Top expense category: %s (%s)\n",
					cli.CategoryStyle(top.Category).Render(top.Category), money(top.Amount))
			}

			return nil
		},
	}
}
