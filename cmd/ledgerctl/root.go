package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/SscSPs/bookkeeping_ledger/internal/core/ports/services"
	coresvc "github.com/SscSPs/bookkeeping_ledger/internal/core/services"
	"github.com/SscSPs/bookkeeping_ledger/internal/platform/config"
	"github.com/SscSPs/bookkeeping_ledger/internal/platform/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// flagScope is the ledger scope (user ID) every journal command operates on.
var flagScope string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "ledgerctl",
		Short:        "Operate a double-entry bookkeeping ledger",
		Long:         "Installs the chart of accounts, prints trial balances and statements, and runs the period-end close against the configured store.",
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&flagScope, "scope", "", "Ledger scope (user ID)")
	flags.String("driver", "", "Storage driver: sqlite or postgres (overrides STORAGE_DRIVER)")
	flags.String("db", "", "SQLite database path (overrides SQLITE_PATH)")
	flags.String("pg-url", "", "PostgreSQL connection URL (overrides PGSQL_URL)")
	flags.Bool("strict", false, "Fail on journal entries that reference unknown accounts")
	flags.String("roles", "", "Chart roles file overriding the default account roles")
	flags.Bool("verbose", false, "Log storage activity to stderr")

	_ = viper.BindPFlag("STORAGE_DRIVER", flags.Lookup("driver"))
	_ = viper.BindPFlag("SQLITE_PATH", flags.Lookup("db"))
	_ = viper.BindPFlag("PGSQL_URL", flags.Lookup("pg-url"))
	_ = viper.BindPFlag("LEDGER_STRICT_ACCOUNT_REFS", flags.Lookup("strict"))
	_ = viper.BindPFlag("CHART_ROLES_FILE", flags.Lookup("roles"))

	root.AddCommand(
		newInitAccountsCmd(),
		newAccountsCmd(),
		newTrialBalanceCmd(),
		newStatementsCmd(),
		newPostClosingCmd(),
		newCloseCmd(),
		newIssueTokenCmd(),
	)
	return root
}

// withServices loads the configuration, opens the store and hands the wired services to fn.
func withServices(cmd *cobra.Command, fn func(ctx context.Context, svc *services.ServiceContainer) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	roles, err := config.LoadChartRoles(cfg.ChartRolesFile)
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logOut = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(logOut, nil))
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	repos, closeStore, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	svc := coresvc.NewServiceContainer(&repos,
		coresvc.WithChartRoles(roles),
		coresvc.WithStrictAccountRefs(cfg.StrictAccountRefs),
	)
	return fn(ctx, svc)
}

func requireScope() error {
	if flagScope == "" {
		return fmt.Errorf("--scope is required")
	}
	return nil
}
