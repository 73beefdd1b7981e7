package logic

import (
	"github.com/tamarindi/team-stats/internal/models"
)

// EmptyTableMessage fills the informational row of an empty table.
const EmptyTableMessage = "No statistics available for this season."

// Render derives the header and body of a season table. It never mutates
// table and produces the same view for the same inputs. An unknown season
// key renders like an empty season.
func Render(seasonKey string, spec models.SortSpec, table models.SeasonTable) models.TableView {
	columns := ColumnsFor(seasonKey)
	spec = normalizeSort(seasonKey, spec)
	active, _ := lookupColumn(seasonKey, spec.Column)

	view := models.TableView{
		Season:      seasonKey,
		SeasonLabel: models.SeasonLabel(seasonKey),
		Career:      models.IsCareerKey(seasonKey),
		Sort:        spec,
		Header:      make([]models.HeaderCell, 0, len(columns)),
	}

	for _, c := range columns {
		next, _ := ToggleSort(seasonKey, spec, c.Key)
		cell := models.HeaderCell{
			Column: c.Key,
			Label:  c.Label,
			Active: c.Key == spec.Column,
			Next:   next,
		}
		if cell.Active {
			cell.Indicator = spec.Direction.Indicator()
		}
		view.Header = append(view.Header, cell)
	}

	records := table[seasonKey]
	if len(records) == 0 {
		view.Empty = true
		view.Rows = []models.Row{{Message: EmptyTableMessage, Span: len(columns)}}
		return view
	}

	sorted := sortRecords(records, active, spec.Direction)
	view.Rows = make([]models.Row, 0, len(sorted))
	for _, r := range sorted {
		cells := make([]models.Cell, 0, len(columns))
		for _, c := range columns {
			cells = append(cells, models.Cell{
				Column:    c.Key,
				Value:     r.Field(c.Key).String(),
				Highlight: c.Key == spec.Column,
			})
		}
		view.Rows = append(view.Rows, models.Row{Cells: cells})
	}
	return view
}
