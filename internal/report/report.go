// Package report renders merge summaries, validation findings, and
// catalog listings as tables for the CLI.
package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"crtracker/internal/catalog"
	"crtracker/internal/merge"
	"crtracker/internal/validate"
)

// render draws one table. Rounded borders are for terminals; piped output
// gets the plain ASCII style.
func render(w io.Writer, headers []string, rows [][]string, rightAligned ...int) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(row))
		for i, cell := range row {
			r[i] = cell
		}
		tw.AppendRow(r)
	}

	var configs []table.ColumnConfig
	for _, col := range rightAligned {
		configs = append(configs, table.ColumnConfig{Number: col, Align: text.AlignRight})
	}
	if len(configs) > 0 {
		tw.SetColumnConfigs(configs)
	}
	tw.Render()
}

// MergeSummary prints the outcome of a merge run, including the rejection
// list when anything was turned away.
func MergeSummary(w io.Writer, summary *merge.Summary) {
	render(w, []string{"Result", "Count"}, [][]string{
		{"Added", strconv.Itoa(summary.Added)},
		{"Upgraded", strconv.Itoa(summary.Upgraded)},
		{"Rejected", strconv.Itoa(summary.Rejected)},
	}, 2)

	if len(summary.Rejections) == 0 {
		return
	}
	fmt.Fprintln(w)
	rows := make([][]string, 0, len(summary.Rejections))
	for _, rejection := range summary.Rejections {
		rows = append(rows, []string{rejection.Title, rejection.Source, rejection.Reason})
	}
	render(w, []string{"Rejected Title", "Source", "Reason"}, rows)
}

// Issues prints validation findings grouped by type.
func Issues(w io.Writer, issues []validate.Issue) {
	if len(issues) == 0 {
		fmt.Fprintln(w, "No issues found.")
		return
	}
	sorted := make([]validate.Issue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Type < sorted[j].Type })

	rows := make([][]string, 0, len(sorted))
	for _, issue := range sorted {
		rows = append(rows, []string{issue.Type, issue.Title, issue.Message})
	}
	render(w, []string{"Type", "Title", "Detail"}, rows)
	fmt.Fprintf(w, "\n%d issues found\n", len(issues))
}

// Episodes prints catalog rows, newest last. A non-positive limit prints
// everything; otherwise only the most recent rows appear.
func Episodes(w io.Writer, episodes []*catalog.Episode, limit int) {
	start := 0
	if limit > 0 && len(episodes) > limit {
		start = len(episodes) - limit
	}
	rows := make([][]string, 0, len(episodes)-start)
	for _, ep := range episodes[start:] {
		rows = append(rows, []string{ep.Airdate, ep.ShowType, ep.EpisodeNumber, ep.Title, ep.Watched})
	}
	render(w, []string{"Airdate", "Show Type", "Ep", "Title", "Watched"}, rows, 3)
}

// Stats prints per-show-type counts and the overall total.
func Stats(w io.Writer, snap *catalog.Snapshot) {
	counts := make(map[string]int)
	watched := 0
	for _, ep := range snap.Episodes {
		counts[ep.ShowType]++
		if ep.Watched == "True" {
			watched++
		}
	}

	types := make([]string, 0, len(counts))
	for showType := range counts {
		types = append(types, showType)
	}
	sort.Strings(types)

	rows := make([][]string, 0, len(types))
	for _, showType := range types {
		label := showType
		if label == "" {
			label = "(unset)"
		}
		rows = append(rows, []string{label, strconv.Itoa(counts[showType])})
	}
	render(w, []string{"Show Type", "Episodes"}, rows, 2)
	fmt.Fprintf(w, "\n%d episodes total, %d watched\n", len(snap.Episodes), watched)
}
