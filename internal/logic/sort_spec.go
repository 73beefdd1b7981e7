package logic

import (
	"github.com/tamarindi/team-stats/internal/models"
)

// DefaultSortFor returns the view default: total appearances for the career
// table, goals for a season, both descending.
func DefaultSortFor(seasonKey string) models.SortSpec {
	if models.IsCareerKey(seasonKey) {
		return models.SortSpec{Column: models.ColTotalApps, Direction: models.Desc}
	}
	return models.SortSpec{Column: models.ColGoals, Direction: models.Desc}
}

// ToggleSort applies a header click to current. Clicking the active column
// flips the direction; a new column starts ascending for identity fields and
// descending for performance fields. Columns outside the view's schema leave
// current untouched and report false.
func ToggleSort(seasonKey string, current models.SortSpec, column string) (models.SortSpec, bool) {
	col, ok := lookupColumn(seasonKey, column)
	if !ok {
		return current, false
	}
	if current.Column == col.Key {
		return models.SortSpec{Column: col.Key, Direction: current.Direction.Flip()}, true
	}
	dir := models.Desc
	if col.Identity {
		dir = models.Asc
	}
	return models.SortSpec{Column: col.Key, Direction: dir}, true
}

// normalizeSort falls back to the view default when spec names a column the
// view does not have, and to descending for an unknown direction.
func normalizeSort(seasonKey string, spec models.SortSpec) models.SortSpec {
	if _, ok := lookupColumn(seasonKey, spec.Column); !ok {
		return DefaultSortFor(seasonKey)
	}
	if spec.Direction != models.Asc && spec.Direction != models.Desc {
		spec.Direction = models.Desc
	}
	return spec
}

// InitialSort is the SortSpec a first click on column produces on a view that
// is not yet sorted by it.
func InitialSort(seasonKey, column string) (models.SortSpec, bool) {
	return ToggleSort(seasonKey, models.SortSpec{}, column)
}
