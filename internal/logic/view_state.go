package logic

import (
	"github.com/tamarindi/team-stats/internal/models"
)

// ViewState owns the active season and sort spec of one table view. Each
// HTTP request builds its own; nothing here is shared between callers.
type ViewState struct {
	ActiveSeason string
	Sort         models.SortSpec

	source TableSource
}

// NewViewState starts on the source's default season with its default sort.
func NewViewState(source TableSource) *ViewState {
	v := &ViewState{source: source}
	v.ChangeSeason(source.DefaultSeason())
	return v
}

// SetDefaultFor resets the sort spec to the default of seasonKey.
func (v *ViewState) SetDefaultFor(seasonKey string) {
	v.Sort = DefaultSortFor(seasonKey)
}

// Toggle applies a header click to the active view.
func (v *ViewState) Toggle(column string) bool {
	next, ok := ToggleSort(v.ActiveSeason, v.Sort, column)
	v.Sort = next
	return ok
}

// SetSort adopts spec if the active view has the column, otherwise keeps the
// view default.
func (v *ViewState) SetSort(spec models.SortSpec) bool {
	if _, ok := lookupColumn(v.ActiveSeason, spec.Column); !ok {
		v.SetDefaultFor(v.ActiveSeason)
		return false
	}
	v.Sort = normalizeSort(v.ActiveSeason, spec)
	return true
}

// ChangeSeason switches the active season, resets the sort and re-renders.
func (v *ViewState) ChangeSeason(seasonKey string) models.TableView {
	v.ActiveSeason = seasonKey
	v.SetDefaultFor(seasonKey)
	return v.Render()
}

// HandleSort toggles column and re-renders.
func (v *ViewState) HandleSort(column string) models.TableView {
	v.Toggle(column)
	return v.Render()
}

// Render renders the active season with the current sort.
func (v *ViewState) Render() models.TableView {
	return Render(v.ActiveSeason, v.Sort, v.source.Table())
}
