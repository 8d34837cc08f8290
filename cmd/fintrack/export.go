package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ankitm/fintrack/internal/cli"
	"github.com/ankitm/fintrack/internal/export"
)

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [filename]",
		Short: "Export the transaction history to CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ledger, _, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = ledger.Close() }()

			transactions := ledger.Transactions()
			if len(transactions) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions to export."))
				return nil
			}

			filename := export.Filename(time.Now())
			if len(args) == 1 {
				filename = args[0]
			}

			f, err := os.Create(filename)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", filename, err)
			}

			if err := export.WriteCSV(f, transactions); err != nil {
				_ = f.Close()
				return fmt.Errorf("failed to write CSV: %w", err)
			}
			if err := f.Close(); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Exported %d transactions to %s", len(transactions), filename)))
			return nil
		},
	}
}
