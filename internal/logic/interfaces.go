package logic

import (
	"context"

	"github.com/tamarindi/team-stats/internal/models"
)

// TableSource is what a ViewState renders from.
type TableSource interface {
	Table() models.SeasonTable
	DefaultSeason() string
}

// StatsService exposes the loaded stats file to the HTTP layer.
type StatsService interface {
	TableSource
	Season(key string) []models.Record
	Seasons() []models.SeasonOption
	Matches() []models.Match
	Gallery() []string
	Loaded() bool
	LoadID() string
}

// PayloadFetcher reads the raw stats document from a file path or URL.
type PayloadFetcher interface {
	Fetch(ctx context.Context, source string) ([]byte, error)
}
