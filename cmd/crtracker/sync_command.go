package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"crtracker/internal/fetch"
	"crtracker/internal/logging"
	"crtracker/internal/merge"
	"crtracker/internal/report"
	"crtracker/internal/schedule"
)

func newSyncCommand(cctx *commandContext) *cobra.Command {
	var startFlag string
	var endFlag string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Scrape weekly programming schedules and merge new episodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := cctx.ensureLogger()
			if err != nil {
				return err
			}

			start, end, err := resolveDateRange(startFlag, endFlag, cfg.Fetch.StartDate)
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

			registry := schedule.DefaultRegistry()
			var candidates []schedule.Candidate
			for _, page := range fetch.ScheduleURLs(start, end) {
				body, variant, err := fetcher.FirstAvailable(cmd.Context(), page.Variants)
				if err != nil {
					if errors.Is(err, fetch.ErrNotFound) {
						logger.Debug("no schedule posted for week",
							logging.String(logging.FieldWeek, page.WeekStart.Format(schedule.DateLayout)))
						continue
					}
					return err
				}
				found := registry.Extract(body, page.WeekStart, variant.Source)
				logger.Info("schedule scanned",
					logging.String(logging.FieldWeek, page.WeekStart.Format(schedule.DateLayout)),
					logging.String(logging.FieldURL, variant.URL),
					logging.String(logging.FieldSource, variant.Source),
					logging.Int("candidates", len(found)))
				candidates = append(candidates, found...)
			}

			engine, err := merge.NewEngine(cfg.Merge.PlaceholderPattern, logger)
			if err != nil {
				return err
			}
			summary, err := engine.Run(snap, candidates, merge.Options{})
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

	cmd.Flags().StringVar(&startFlag, "start", "", "First week to scan (YYYY-MM-DD, default from config)")
	cmd.Flags().StringVar(&endFlag, "end", "", "Last week to scan (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Merge in memory but do not write the catalog")
	return cmd
}

func resolveDateRange(startFlag, endFlag, configStart string) (time.Time, time.Time, error) {
	start := configStart
	if startFlag != "" {
		start = startFlag
	}
	startTime, err := time.Parse(schedule.DateLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("parse start date: %w", err)
	}

	endTime := time.Now()
	if endFlag != "" {
		endTime, err = time.Parse(schedule.DateLayout, endFlag)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse end date: %w", err)
		}
	}
	if endTime.Before(startTime) {
		return time.Time{}, time.Time{}, fmt.Errorf("end date %s precedes start date %s",
			endTime.Format(schedule.DateLayout), startTime.Format(schedule.DateLayout))
	}
	return startTime, endTime, nil
}
