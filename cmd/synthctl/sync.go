package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/synthapp/synth/internal/app"
	"github.com/synthapp/synth/internal/domain"
)

func newSyncCmd(opts *rootOptions) *cobra.Command {
	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Import provider events into the catalog",
	}
	syncCmd.AddCommand(newSyncTicketmasterCmd(opts), newSyncJamBaseCmd(opts))
	return syncCmd
}

func newSyncTicketmasterCmd(opts *rootOptions) *cobra.Command {
	var (
		city  string
		state string
		size  string
	)

	cmd := &cobra.Command{
		Use:   "ticketmaster",
		Short: "Import upcoming music events for a city from Ticketmaster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			query := &domain.TicketmasterQuery{
				City:               city,
				StateCode:          state,
				ClassificationName: "music",
				Size:               size,
				Sort:               "date,asc",
				Persist:            true,
			}
			return withApp(cmd.Context(), opts, func(ctx context.Context, a app.AppInterface) error {
				result, err := a.GetDiscoveryService().TicketmasterEvents(ctx, query)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Fetched %d events, stored %d\n", len(result.Events), result.Persisted)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&city, "city", "", "city to import")
	cmd.Flags().StringVar(&state, "state", "", "state code, e.g. CA")
	cmd.Flags().StringVar(&size, "size", "100", "number of events to request")
	_ = cmd.MarkFlagRequired("city")

	return cmd
}

func newSyncJamBaseCmd(opts *rootOptions) *cobra.Command {
	var (
		artist  string
		perPage int
	)

	cmd := &cobra.Command{
		Use:   "jambase",
		Short: "Import an artist's upcoming shows from JamBase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			query := &domain.JamBaseQuery{
				ArtistName: artist,
				EventType:  "concerts",
				Page:       1,
				PerPage:    perPage,
				Persist:    true,
			}
			return withApp(cmd.Context(), opts, func(ctx context.Context, a app.AppInterface) error {
				result, err := a.GetDiscoveryService().JamBaseEvents(ctx, query)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Fetched %d events, stored %d\n", len(result.Events), result.Persisted)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&artist, "artist", "", "artist name")
	cmd.Flags().IntVar(&perPage, "per-page", 50, "number of events to request")
	_ = cmd.MarkFlagRequired("artist")

	return cmd
}
