package logic

import (
	"testing"

	"github.com/tamarindi/team-stats/internal/models"
)

func testSource() staticSource {
	return staticSource{
		table: models.SeasonTable{
			"season_25_26": seasonRecords([]models.PlayerSeasonRecord{
				player("Rossi", models.Number(5)),
				player("Verdi", models.Number(9)),
			}),
			models.CareerKey: careerRecords([]models.PlayerCareerRecord{
				{Name: "Rossi", Role: "Attaccante", TotalApps: models.Number(50)},
			}),
		},
		defaultSeason: "season_25_26",
	}
}

func TestNewViewState_StartsOnDefault(t *testing.T) {
	v := NewViewState(testSource())

	if v.ActiveSeason != "season_25_26" {
		t.Errorf("ActiveSeason = %q", v.ActiveSeason)
	}
	if v.Sort != DefaultSortFor("season_25_26") {
		t.Errorf("Sort = %+v, want default", v.Sort)
	}
}

func TestViewState_HandleSort(t *testing.T) {
	v := NewViewState(testSource())

	view := v.HandleSort(models.ColGoals)
	if view.Sort.Direction != models.Asc {
		t.Errorf("after one click: %+v, want goals asc", view.Sort)
	}
	if got, want := names(view), []string{"Rossi", "Verdi"}; !equalStrings(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}

	view = v.HandleSort(models.ColGoals)
	if view.Sort != DefaultSortFor("season_25_26") {
		t.Errorf("after two clicks: %+v, want default", view.Sort)
	}

	// Unknown columns leave the state alone.
	before := v.Sort
	if v.Toggle("total_apps") {
		t.Error("Toggle(total_apps) on season view reported ok")
	}
	if v.Sort != before {
		t.Errorf("Sort changed to %+v", v.Sort)
	}
}

func TestViewState_ChangeSeasonResetsSort(t *testing.T) {
	v := NewViewState(testSource())
	v.HandleSort(models.ColName)

	view := v.ChangeSeason(models.CareerKey)
	if view.Sort != DefaultSortFor(models.CareerKey) || v.Sort != view.Sort {
		t.Errorf("career sort = %+v, want total_apps desc", view.Sort)
	}
	if !view.Career {
		t.Error("expected career view")
	}

	v.HandleSort(models.ColRole)
	view = v.ChangeSeason("season_25_26")
	if view.Sort != DefaultSortFor("season_25_26") {
		t.Errorf("season sort = %+v, want goals desc", view.Sort)
	}
}

func TestViewState_ChangeSeasonUnknown(t *testing.T) {
	v := NewViewState(testSource())

	view := v.ChangeSeason("season_99_00")
	if !view.Empty || len(view.Rows) != 1 || view.Rows[0].Message != EmptyTableMessage {
		t.Errorf("view = %+v, want single informational row", view)
	}
}

func TestViewState_SetSort(t *testing.T) {
	v := NewViewState(testSource())

	if !v.SetSort(models.SortSpec{Column: models.ColName, Direction: models.Desc}) {
		t.Fatal("SetSort(name desc) rejected")
	}
	if got, want := names(v.Render()), []string{"Verdi", "Rossi"}; !equalStrings(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}

	if v.SetSort(models.SortSpec{Column: models.ColRole, Direction: models.Asc}) {
		t.Error("SetSort(role) accepted on a season view")
	}
	if v.Sort != DefaultSortFor("season_25_26") {
		t.Errorf("Sort = %+v, want default after rejected spec", v.Sort)
	}
}

func TestViewState_SetDefaultFor(t *testing.T) {
	v := NewViewState(testSource())
	v.SetDefaultFor(models.CareerKey)
	if v.Sort != DefaultSortFor(models.CareerKey) {
		t.Errorf("Sort = %+v", v.Sort)
	}
}

func TestViewState_EmptySource(t *testing.T) {
	v := NewViewState(staticSource{})

	view := v.Render()
	if !view.Empty || len(view.Rows) != 1 {
		t.Errorf("view = %+v, want empty-state row", view)
	}
}
