package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/synthapp/synth/internal/app"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the schema and apply pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), opts, func(_ context.Context, _ app.AppInterface) error {
				fmt.Fprintln(cmd.OutOrStdout(), "Database is up to date")
				return nil
			})
		},
	}
}

func newTrustCmd(opts *rootOptions) *cobra.Command {
	trustCmd := &cobra.Command{
		Use:   "trust",
		Short: "Verification trust score maintenance",
	}

	trustCmd.AddCommand(&cobra.Command{
		Use:   "recompute",
		Short: "Recompute the trust score of every user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, a app.AppInterface) error {
				updated, failed, err := a.GetVerificationService().RecomputeAll(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Recomputed %d trust scores (%d failed)\n", updated, failed)
				return nil
			})
		},
	})

	return trustCmd
}

func newPassportCmd(opts *rootOptions) *cobra.Command {
	passportCmd := &cobra.Command{
		Use:   "passport",
		Short: "Passport maintenance",
	}

	var userIDs []string
	recalculateCmd := &cobra.Command{
		Use:   "recalculate",
		Short: "Recalculate passport identities",
		Long:  "Recalculate the passport identity of the given users, or of every user when --user is omitted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, a app.AppInterface) error {
				ids := userIDs
				if len(ids) == 0 {
					var err error
					ids, err = a.GetVerificationRepository().ListUserIDs(ctx)
					if err != nil {
						return fmt.Errorf("failed to list users: %w", err)
					}
				}

				updated, failed, err := a.GetPassportService().RecalculateAll(ctx, ids)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Recalculated %d passports (%d failed)\n", updated, failed)
				return nil
			})
		},
	}
	recalculateCmd.Flags().StringSliceVar(&userIDs, "user", nil, "user ids to recalculate")
	passportCmd.AddCommand(recalculateCmd)

	return passportCmd
}
