package main

import (
	"context"
	"fmt"
	"time"

	"dealer-contracts/cmd/bootstrap"
	"dealer-contracts/internal/infra/repository"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func newPurgeCmd() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "purge-idempotency",
		Short: "Delete idempotency keys past their expiry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var deleted int64
			app := fx.New(
				bootstrap.CoreModule,
				fx.NopLogger,
				fx.Invoke(func(repo *repository.IdempotencyRepository) error {
					ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
					defer cancel()
					n, err := repo.DeleteExpired(ctx)
					deleted = n
					return err
				}),
			)
			if err := app.Err(); err != nil {
				return fmt.Errorf("purge: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d expired idempotency key(s)\n", deleted)
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "query timeout")
	return cmd
}
