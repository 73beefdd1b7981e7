package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tableRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "team_stats_table_renders_total",
		Help: "Total number of table renders by view",
	}, []string{"view"})

	tableRenderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "team_stats_table_render_duration_seconds",
		Help:    "Duration of table renders",
		Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
	})

	renderCacheResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "team_stats_render_cache_results_total",
		Help: "Render cache lookups by result (hit, miss, error)",
	}, []string{"result"})
)

func viewLabel(empty, career bool) string {
	switch {
	case empty:
		return "empty"
	case career:
		return "career"
	default:
		return "season"
	}
}
