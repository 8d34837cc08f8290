package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ankitm/fintrack/internal/cli"
	"github.com/ankitm/fintrack/internal/model"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List transaction history",
		Long:  `Display all recorded transactions, newest first.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			ledger, _, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = ledger.Close() }()

			transactions := ledger.Transactions()
			if len(transactions) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions found. Use 'fintrack add' to record one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintln(w, "DATE\tDESCRIPTION\tCATEGORY\tAMOUNT\tID")

			// Newest first for display; aggregation never depends on order.
			for i := len(transactions) - 1; i >= 0; i-- {
				txn := transactions[i]

				description := txn.Description
				if description == "" {
					description = "-"
				}

				amount := cli.ExpenseStyle.Render("-" + money(txn.Amount))
				if txn.Type == model.TypeIncome {
					amount = cli.IncomeStyle.Render("+" + money(txn.Amount))
				}

				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					txn.Date.Format(dateLayout),
					description,
					cli.CategoryStyle(txn.Category).Render(txn.Category),
					amount,
					cli.SubtleStyle.Render(txn.ID),
				)
			}

			return nil
		},
	}
}
