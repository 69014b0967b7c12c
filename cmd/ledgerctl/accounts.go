package main

import (
	"context"
	"fmt"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/ports/services"
	"github.com/spf13/cobra"
)

func newInitAccountsCmd() *cobra.Command {
	var createdBy string
	cmd := &cobra.Command{
		Use:   "init-accounts",
		Short: "Install the default chart of accounts on an empty registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, svc *services.ServiceContainer) error {
				accounts, err := svc.Account.InitializeDefaultAccounts(ctx, createdBy)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Installed %d accounts\n", len(accounts))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&createdBy, "created-by", "ledgerctl", "Recorded as the creator of the accounts")
	return cmd
}

func newAccountsCmd() *cobra.Command {
	var activeOnly bool
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List the chart of accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(ctx context.Context, svc *services.ServiceContainer) error {
				accounts, err := svc.Account.ListAccounts(ctx, activeOnly)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "  %-6s %-34s %-12s %-7s %s\n", "CODE", "NAME", "TYPE", "NORMAL", "ACTIVE")
				for _, a := range accounts {
					fmt.Fprintf(out, "  %-6s %-34s %-12s %-7s %t\n", a.Code, truncate(a.Name, 34), a.Type, a.NormalBalance, a.IsActive)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&activeOnly, "active-only", false, "Hide deactivated accounts")
	return cmd
}

func truncate(s string, w int) string {
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	return string(r[:w-2]) + ".."
}
