package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"crtracker/internal/canon"
)

func newCanonCommand(cctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "canon",
		Short: "Stamp canon-tracking columns onto the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, snap, release, err := cctx.openCatalog()
			if err != nil {
				return err
			}
			defer release()

			marked := canon.Apply(snap)
			if err := store.Save(snap); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Annotated %d episodes, %d marked canon.\n",
				len(snap.Episodes), marked)
			return nil
		},
	}
	return cmd
}
