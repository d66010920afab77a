package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"crtracker/internal/catalog"
	"crtracker/internal/logging"
	"crtracker/internal/report"
	"crtracker/internal/wiki"
)

func newCatalogCommand(cctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect or initialize the episode catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newCatalogShowCommand(cctx))
	cmd.AddCommand(newCatalogStatsCommand(cctx))
	cmd.AddCommand(newCatalogInitCommand(cctx))
	return cmd
}

func newCatalogShowCommand(cctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "List catalog rows, most recent last",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := cctx.loadCatalog()
			if err != nil {
				return err
			}
			report.Episodes(cmd.OutOrStdout(), snap.Episodes, limit)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 25, "Maximum rows to show (0 for all)")
	return cmd
}

func newCatalogStatsCommand(cctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the catalog by show type",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := cctx.loadCatalog()
			if err != nil {
				return err
			}
			report.Stats(cmd.OutOrStdout(), snap)
			return nil
		},
	}
	return cmd
}

func newCatalogInitCommand(cctx *commandContext) *cobra.Command {
	var fromWiki bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the catalog file, empty or imported from the wiki",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := cctx.ensureLogger()
			if err != nil {
				return err
			}
			if _, err := os.Stat(cfg.Paths.CatalogPath); err == nil {
				return fmt.Errorf("catalog already exists: %s", cfg.Paths.CatalogPath)
			} else if !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("stat catalog: %w", err)
			}

			snap := catalog.NewSnapshot()
			if fromWiki {
				fetcher, closeCache, err := cctx.newFetcher()
				if err != nil {
					return err
				}
				defer closeCache()

				body, err := fetcher.Page(cmd.Context(), cfg.Wiki.EpisodeListURL)
				if err != nil {
					return err
				}
				episodes, err := wiki.ParseFullCatalog(body, cfg.Wiki.BaseURL)
				if err != nil {
					return err
				}
				snap.Episodes = episodes
				logger.Info("catalog imported from wiki", logging.Int("episodes", len(episodes)))
			}

			store := catalog.NewStore(cfg.Paths.CatalogPath, logger)
			if err := store.Save(snap); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created catalog at %s with %d episodes\n",
				cfg.Paths.CatalogPath, len(snap.Episodes))
			return nil
		},
	}
	cmd.Flags().BoolVar(&fromWiki, "from-wiki", false, "Seed the catalog from the wiki episode list")
	return cmd
}
