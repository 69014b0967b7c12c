package main

import (
	"fmt"
	"time"

	"github.com/SscSPs/bookkeeping_ledger/internal/platform/config"
	"github.com/SscSPs/bookkeeping_ledger/internal/utils"
	"github.com/spf13/cobra"
)

func newIssueTokenCmd() *cobra.Command {
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "issue-token",
		Short: "Sign an API bearer token for --scope with the configured JWT secret",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireScope(); err != nil {
				return err
			}
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if ttl <= 0 {
				ttl = cfg.JWTExpiryDuration
			}
			token, expiresAt, err := utils.NewScopeTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer, ttl).Issue(flagScope)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", expiresAt.UTC().Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime, default JWT_EXPIRY_DURATION")
	return cmd
}
