package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"crtracker/internal/wiki"
)

func newFillCommand(cctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Backfill missing VOD links and runtimes from episode wiki pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := cctx.ensureLogger()
			if err != nil {
				return err
			}

			store, snap, release, err := cctx.openCatalog()
			if err != nil {
				return err
			}
			defer release()

			fetcher, closeCache, err := cctx.newFetcher()
			if err != nil {
				return err
			}
			defer closeCache()

			updated := wiki.Backfill(cmd.Context(), snap, fetcher, logger)
			fmt.Fprintf(cmd.OutOrStdout(), "Backfilled %d episodes.\n", updated)
			if updated == 0 {
				return nil
			}
			return store.Save(snap)
		},
	}
	return cmd
}
