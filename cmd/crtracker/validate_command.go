package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"crtracker/internal/report"
	"crtracker/internal/validate"
)

func newValidateCommand(cctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the catalog for missing fields, duplicates, and format problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := cctx.loadCatalog()
			if err != nil {
				return err
			}

			issues := validate.Catalog(snap, time.Now())
			report.Issues(cmd.OutOrStdout(), issues)
			if validate.HasCritical(issues) {
				return fmt.Errorf("validation found critical issues")
			}
			return nil
		},
	}
	return cmd
}
