package main

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ankitm/fintrack/internal/cli"
	"github.com/ankitm/fintrack/internal/llm"
)

func insightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Get AI-generated insights on your spending habits",
		Long:  `Send your transaction history to the configured LLM provider and print a short narrative analysis of your finances.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			ledger, _, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = ledger.Close() }()

			summarizer, err := newSummarizer()
			if err != nil {
				return err
			}

			runner := llm.NewRunner(summarizer)
			results := runner.Request(ctx, ledger.Transactions())

			bar := progressbar.NewOptions(-1,
				progressbar.OptionSetDescription("Analyzing your finances..."),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSpinnerType(14),
				progressbar.OptionClearOnFinish(),
			)

			ticker := time.NewTicker(100 * time.Millisecond)
			defer ticker.Stop()

			for {
				select {
				case <-ticker.C:
					_ = bar.Add(1)
				case summary, ok := <-results:
					_ = bar.Finish()
					if !ok {
						return nil
					}
					fmt.Println(cli.TitleStyle.Render("Financial Insights"))
					fmt.Println(cli.BoxStyle.Render(summary))
					return nil
				case <-ctx.Done():
					_ = bar.Finish()
					return ctx.Err()
				}
			}
		},
	}
}
