package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ankitm/fintrack/internal/cli"
)

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			ledger, kv, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = ledger.Close() }()

			if err := ledger.RemoveTransaction(ctx, id); err != nil {
				return fmt.Errorf("failed to delete transaction: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Deleted transaction %s", id)))

			runEvaluators(ctx, ledger, kv, time.Now())
			return nil
		},
	}
}
