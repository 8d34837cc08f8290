package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ankitm/fintrack/internal/cli"
	"github.com/ankitm/fintrack/internal/service"
)

func notifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Manage notification permission",
		Long:  `Enable, disable, or inspect budget and bill notifications. The choice is persisted across runs.`,
	}

	cmd.AddCommand(notifyEnableCmd())
	cmd.AddCommand(notifyDisableCmd())
	cmd.AddCommand(notifyStatusCmd())

	return cmd
}

func notifyEnableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enable",
		Short: "Enable notifications",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			kv, err := initKV()
			if err != nil {
				return err
			}
			defer func() { _ = kv.Close() }()

			notifier := newNotifier(ctx, kv)
			if _, err := notifier.RequestPermission(ctx); err != nil {
				return fmt.Errorf("failed to enable notifications: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render("✓ Notifications enabled"))
			return nil
		},
	}
}

func notifyDisableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disable",
		Short: "Disable notifications",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			kv, err := initKV()
			if err != nil {
				return err
			}
			defer func() { _ = kv.Close() }()

			notifier := newNotifier(ctx, kv)
			if _, err := notifier.Deny(ctx); err != nil {
				return fmt.Errorf("failed to disable notifications: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render("✓ Notifications disabled"))
			return nil
		},
	}
}

func notifyStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current notification permission",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			kv, err := initKV()
			if err != nil {
				return err
			}
			defer func() { _ = kv.Close() }()

			notifier := newNotifier(ctx, kv)
			switch notifier.Permission() {
			case service.PermissionGranted:
				fmt.Println(cli.IncomeStyle.Render("Notifications: enabled"))
			case service.PermissionDenied:
				fmt.Println(cli.ExpenseStyle.Render("Notifications: disabled"))
			default:
				fmt.Println(cli.SubtleStyle.Render("Notifications: not configured (run 'fintrack notify enable')"))
			}
			return nil
		},
	}
}
