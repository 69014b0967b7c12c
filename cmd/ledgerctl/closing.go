package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_ledger/internal/utils"
	"github.com/spf13/cobra"
)

func newCloseCmd() *cobra.Command {
	var date string
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "close",
		Short: "Generate closing entries and replace the saved set",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireScope(); err != nil {
				return err
			}
			closingDate := time.Now().UTC().Truncate(24 * time.Hour)
			if date != "" {
				d, err := parseAsOf(date)
				if err != nil {
					return err
				}
				closingDate = *d
			}

			return withServices(cmd, func(ctx context.Context, svc *services.ServiceContainer) error {
				out := cmd.OutOrStdout()
				if dryRun {
					entries, netIncome, err := svc.Closing.GenerateClosingEntries(ctx, flagScope, closingDate)
					if err != nil {
						return err
					}
					printClosingEntries(out, entries)
					fmt.Fprintf(out, "\n  Net income %s (not saved)\n", utils.FormatRupiah(netIncome))
					return nil
				}

				entries, netIncome, result, err := svc.Closing.RunClosing(ctx, flagScope, closingDate)
				if err != nil {
					return err
				}
				printClosingEntries(out, entries)
				fmt.Fprintf(out, "\n  Net income %s\n  %s\n", utils.FormatRupiah(netIncome), result.Message)
				if !result.Success {
					return errors.New(result.Message)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Posting date of the closing entries (YYYY-MM-DD), default today")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the entries without saving them")
	return cmd
}

func printClosingEntries(out io.Writer, entries []domain.ClosingEntry) {
	fmt.Fprintf(out, "  %-26s %-6s %-6s %15s  %s\n", "REFERENCE", "DEBIT", "CREDIT", "AMOUNT", "DESCRIPTION")
	for _, e := range entries {
		fmt.Fprintf(out, "  %-26s %-6s %-6s %15s  %s\n", e.Reference, e.DebitAccountCode, e.CreditAccountCode, utils.FormatRupiah(e.Amount), e.Description)
	}
}
