package logic

import (
	"github.com/tamarindi/team-stats/internal/models"
)

// staticSource serves a fixed table to a ViewState.
type staticSource struct {
	table         models.SeasonTable
	defaultSeason string
}

func (s staticSource) Table() models.SeasonTable { return s.table }
func (s staticSource) DefaultSeason() string     { return s.defaultSeason }

func player(name string, goals models.StatValue) models.PlayerSeasonRecord {
	return models.PlayerSeasonRecord{Name: name, Goals: goals}
}

func names(view models.TableView) []string {
	var out []string
	for _, row := range view.Rows {
		for _, c := range row.Cells {
			if c.Column == models.ColName {
				out = append(out, c.Value)
			}
		}
	}
	return out
}

func columnValues(view models.TableView, column string) []string {
	var out []string
	for _, row := range view.Rows {
		for _, c := range row.Cells {
			if c.Column == column {
				out = append(out, c.Value)
			}
		}
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
