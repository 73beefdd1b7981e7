package logic

import (
	"cmp"
	"slices"
	"strings"

	"github.com/tamarindi/team-stats/internal/models"
)

// compareValues orders placeholders below numbers and numbers below text.
// Numbers compare numerically, text case-insensitively.
func compareValues(a, b models.StatValue) int {
	if a.Kind != b.Kind {
		return cmp.Compare(a.Kind, b.Kind)
	}
	switch a.Kind {
	case models.KindNumber:
		return cmp.Compare(a.Num, b.Num)
	case models.KindText:
		return strings.Compare(strings.ToLower(a.Text), strings.ToLower(b.Text))
	default:
		return 0
	}
}

func columnValue(r models.Record, col models.Column) models.StatValue {
	v := r.Field(col.Key)
	if col.Numeric {
		return v.Numeric()
	}
	return v
}

// sortRecords returns a stably sorted copy. Descending only reverses the
// comparison, so ties keep their input order in both directions.
func sortRecords(records []models.Record, col models.Column, dir models.Direction) []models.Record {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b models.Record) int {
		c := compareValues(columnValue(a, col), columnValue(b, col))
		if dir == models.Desc {
			return -c
		}
		return c
	})
	return out
}
