// Command statsdump prints a season table as plain text, sorted the same way
// the website sorts it.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"github.com/tamarindi/team-stats/internal/logic"
	"github.com/tamarindi/team-stats/internal/models"
)

func main() {
	source := flag.String("source", "data/team_stats.json", "stats file path or URL")
	season := flag.String("season", "", "season key (default: newest season)")
	sortCol := flag.String("sort", "", "column to sort by")
	dir := flag.String("dir", "", "sort direction: asc or desc")
	list := flag.Bool("list", false, "list season keys and exit")
	timeout := flag.Duration("timeout", 10*time.Second, "fetch timeout")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	store := logic.NewStatsStore(logic.NewSourceFetcher(*timeout), logger)
	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	if err := store.LoadFrom(ctx, *source); err != nil {
		// Keep going: an empty store still prints the informational row.
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	if *list {
		for _, s := range store.Seasons() {
			fmt.Printf("%s\t%s\t%d players\n", s.Key, s.Label, s.Players)
		}
		return
	}

	state := logic.NewViewState(store)
	if *season != "" {
		state.ChangeSeason(*season)
	}
	if *sortCol != "" {
		spec := models.SortSpec{Column: *sortCol, Direction: models.Direction(strings.ToLower(*dir))}
		if *dir == "" {
			spec, _ = logic.InitialSort(state.ActiveSeason, *sortCol)
		}
		if !state.SetSort(spec) {
			fmt.Fprintf(os.Stderr, "warning: unknown column %q, using default sort\n", *sortCol)
		}
	}

	if err := writeTable(os.Stdout, state.Render()); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}
}

func writeTable(out io.Writer, view models.TableView) error {
	fmt.Fprintf(out, "%s (sorted by %s %s)\n\n", view.SeasonLabel, view.Sort.Column, view.Sort.Direction)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	labels := make([]string, 0, len(view.Header))
	for _, hc := range view.Header {
		label := hc.Label
		if hc.Indicator != "" {
			label += " " + hc.Indicator
		}
		labels = append(labels, label)
	}
	fmt.Fprintln(tw, strings.Join(labels, "\t"))

	for _, row := range view.Rows {
		if row.Message != "" {
			fmt.Fprintln(tw, row.Message)
			continue
		}
		values := make([]string, 0, len(row.Cells))
		for _, c := range row.Cells {
			v := c.Value
			if c.Highlight {
				v = "*" + v + "*"
			}
			values = append(values, v)
		}
		fmt.Fprintln(tw, strings.Join(values, "\t"))
	}
	return tw.Flush()
}
