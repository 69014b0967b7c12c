package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/domain"
	"github.com/SscSPs/bookkeeping_ledger/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_ledger/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

const reportWidth = 72

func parseAsOf(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, use YYYY-MM-DD", s)
	}
	return &d, nil
}

func newTrialBalanceCmd() *cobra.Command {
	var kind, asOf string
	cmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Print the unadjusted, adjusted or post-closing trial balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireScope(); err != nil {
				return err
			}
			tbKind := domain.TrialBalanceKind(kind)
			switch tbKind {
			case domain.TrialBalanceUnadjusted, domain.TrialBalanceAdjusted, domain.TrialBalancePostClosing:
			default:
				return fmt.Errorf("unknown trial balance kind %q", kind)
			}
			date, err := parseAsOf(asOf)
			if err != nil {
				return err
			}
			return withServices(cmd, func(ctx context.Context, svc *services.ServiceContainer) error {
				tb, err := svc.Reporting.TrialBalance(ctx, flagScope, tbKind, date)
				if err != nil {
					return err
				}
				printTrialBalance(cmd.OutOrStdout(), tb)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&kind, "kind", string(domain.TrialBalanceUnadjusted), "unadjusted, adjusted or post-closing")
	cmd.Flags().StringVar(&asOf, "as-of", "", "Report date (YYYY-MM-DD), inclusive")
	return cmd
}

func newStatementsCmd() *cobra.Command {
	var asOf string
	cmd := &cobra.Command{
		Use:   "statements",
		Short: "Print the income statement and balance sheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireScope(); err != nil {
				return err
			}
			date, err := parseAsOf(asOf)
			if err != nil {
				return err
			}
			return withServices(cmd, func(ctx context.Context, svc *services.ServiceContainer) error {
				st, err := svc.Reporting.FinancialStatements(ctx, flagScope, date)
				if err != nil {
					return err
				}
				printIncomeStatement(cmd.OutOrStdout(), st.IncomeStatement)
				printBalanceSheet(cmd.OutOrStdout(), st.BalanceSheet)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&asOf, "as-of", "", "Report date (YYYY-MM-DD), inclusive")
	return cmd
}

func newPostClosingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "post-closing",
		Short: "Print the post-closing trial balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireScope(); err != nil {
				return err
			}
			return withServices(cmd, func(ctx context.Context, svc *services.ServiceContainer) error {
				pc, err := svc.Reporting.PostClosingTrialBalance(ctx, flagScope)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				printTrialBalance(out, &pc.TrialBalance)
				for _, r := range pc.NominalResiduals {
					fmt.Fprintf(out, "  unclosed %-6s %-30s %15s\n", r.Code, r.Name, utils.FormatRupiah(r.Amount))
				}
				if pc.IsClean() {
					fmt.Fprintln(out, "\n  [CLEAN]")
				}
				return nil
			})
		},
	}
}

func printTrialBalance(out io.Writer, tb *domain.TrialBalance) {
	title := "TRIAL BALANCE (" + strings.ToUpper(string(tb.Kind)) + ")"
	fmt.Fprintln(out)
	fmt.Fprintln(out, center(title, reportWidth))
	if tb.AsOf != nil {
		fmt.Fprintln(out, center("as of "+tb.AsOf.Format(domain.DateLayout), reportWidth))
	}
	fmt.Fprintln(out)

	fmt.Fprintf(out, "  %-6s %-32s %15s %15s\n", "CODE", "NAME", "DEBIT", "CREDIT")
	for _, row := range tb.Rows {
		fmt.Fprintf(out, "  %-6s %-32s %15s %15s\n", row.Account.Code, truncate(row.Account.Name, 32), blankZero(row.Debit), blankZero(row.Credit))
	}
	fmt.Fprintf(out, "  %s\n", strings.Repeat("-", reportWidth-2))
	fmt.Fprintf(out, "  %-39s %15s %15s\n", "TOTALS", utils.FormatRupiah(tb.TotalDebit), utils.FormatRupiah(tb.TotalCredit))

	if tb.IsBalanced() {
		fmt.Fprintln(out, "\n  [BALANCED]")
	} else {
		fmt.Fprintf(out, "\n  [UNBALANCED by %s]\n", utils.FormatRupiah(tb.Difference()))
	}
}

func printIncomeStatement(out io.Writer, is domain.IncomeStatement) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, center("INCOME STATEMENT", reportWidth))
	fmt.Fprintln(out)
	for _, a := range is.RevenueAccounts {
		line(out, a.Name, a.Amount)
	}
	line(out, "Total revenue", is.Revenue)
	for _, a := range is.COGSAccounts {
		line(out, a.Name, a.Amount)
	}
	line(out, "Cost of goods sold", is.COGS)
	line(out, "Gross profit", is.GrossProfit)
	printBuckets(out, is.OperatingExpenses)
	line(out, "Total operating expenses", is.TotalOperatingExpenses)
	line(out, "Net income", is.NetIncome)
}

func printBalanceSheet(out io.Writer, bs domain.BalanceSheet) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, center("BALANCE SHEET", reportWidth))
	fmt.Fprintln(out)
	printBuckets(out, bs.Assets)
	line(out, "Total assets", bs.TotalAssets)
	printBuckets(out, bs.ContraAssets)
	line(out, "Net assets", bs.NetAssets)
	fmt.Fprintln(out)
	printBuckets(out, bs.Liabilities)
	line(out, "Total liabilities", bs.TotalLiabilities)
	line(out, "Opening equity", bs.OpeningEquity)
	line(out, "Net income", bs.NetIncome)
	line(out, "Drawings", bs.Drawings.Neg())
	if !bs.IncomeSummary.IsZero() {
		line(out, "Income summary", bs.IncomeSummary)
	}
	if !bs.OtherEquity.IsZero() {
		line(out, "Other equity", bs.OtherEquity)
	}
	line(out, "Ending equity", bs.EndingEquity)
	line(out, "Total liabilities and equity", bs.TotalLiabilitiesAndEquity)

	if bs.IsBalanced() {
		fmt.Fprintln(out, "\n  [BALANCED]")
	} else {
		fmt.Fprintf(out, "\n  [UNBALANCED by %s]\n", utils.FormatRupiah(bs.Difference()))
	}
}

func printBuckets(out io.Writer, buckets map[string]decimal.Decimal) {
	for _, name := range slices.Sorted(maps.Keys(buckets)) {
		line(out, "  "+name, buckets[name])
	}
}

func line(out io.Writer, label string, amount decimal.Decimal) {
	fmt.Fprintf(out, "  %-*s%15s\n", reportWidth-17, label, utils.FormatRupiah(amount))
}

func blankZero(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return utils.FormatRupiah(d)
}

func center(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return strings.Repeat(" ", (w-len(s))/2) + s
}
