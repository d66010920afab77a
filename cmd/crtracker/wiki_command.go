package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"crtracker/internal/logging"
	"crtracker/internal/merge"
	"crtracker/internal/report"
	"crtracker/internal/wiki"
)

func newWikiCommand(cctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "wiki",
		Short: "Merge authoritative episode data from the wiki, upgrading placeholders",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
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

			body, err := fetcher.Page(cmd.Context(), cfg.Wiki.EpisodeListURL)
			if err != nil {
				return err
			}
			candidates, err := wiki.ParseEpisodeList(body, cfg.Wiki.BaseURL)
			if err != nil {
				return err
			}
			for i := range candidates {
				candidates[i].Source = "wiki"
			}
			logger.Info("episode list parsed", logging.Int("candidates", len(candidates)))

			engine, err := merge.NewEngine(cfg.Merge.PlaceholderPattern, logger)
			if err != nil {
				return err
			}
			summary, err := engine.Run(snap, candidates, merge.Options{AllowUpgrade: true})
			if err != nil {
				return err
			}
			report.MergeSummary(cmd.OutOrStdout(), summary)

			if dryRun {
				fmt.Fprintln(cmd.OutOrStdout(), "\nDry run: catalog not written.")
				return nil
			}
			return store.Save(snap)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Merge in memory but do not write the catalog")
	return cmd
}
