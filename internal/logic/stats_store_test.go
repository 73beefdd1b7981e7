package logic

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/tamarindi/team-stats/internal/models"
)

const samplePayload = `{
	"season_24_25": [
		{"name": "Rossi", "number": 9, "apps": 20, "goals": 11, "assists": 4, "yellow_cards": 2, "red_cards": 0}
	],
	"season_25_26": [
		{"name": "Rossi", "number": "9", "apps": "10", "goals": "5", "assists": "-"},
		{"name": "Verdi", "number": "10", "apps": 12, "goals": 9}
	],
	"all_time": [
		{"name": "Rossi", "role": "Attaccante", "total_apps": 30, "total_goals": 16, "total_assists": 4}
	],
	"matches": [
		{"date": "2025-10-04", "opponent": "Real Borgo", "score": "3-1", "result": "W", "scorers": ["Rossi"], "season": "25/26", "home_status": "Home"}
	],
	"gallery": ["team.jpg", "cup.png"],
	"generated_at": "2025-10-05"
}`

type stubFetcher struct {
	payload []byte
	err     error
	calls   int
}

func (f *stubFetcher) Fetch(ctx context.Context, source string) ([]byte, error) {
	f.calls++
	return f.payload, f.err
}

func newTestStore(f PayloadFetcher) *StatsStore {
	return NewStatsStore(f, zap.NewNop())
}

func TestStatsStore_Load(t *testing.T) {
	store := newTestStore(&stubFetcher{})

	table := store.Load([]byte(samplePayload))

	if len(table) != 3 {
		t.Fatalf("loaded %d season tables, want 3", len(table))
	}
	if !store.Loaded() || store.LoadID() == "" {
		t.Error("store not marked loaded")
	}
	if got := len(store.Season("season_25_26")); got != 2 {
		t.Errorf("season_25_26 has %d records, want 2", got)
	}
	career, ok := store.Season(models.CareerKey)[0].(models.PlayerCareerRecord)
	if !ok || career.Role != "Attaccante" || career.TotalApps.Num != 30 {
		t.Errorf("career record = %+v", store.Season(models.CareerKey)[0])
	}
	if got := store.Season("season_25_26")[0].Field(models.ColAssists); !got.IsPlaceholder() {
		t.Errorf("assists = %+v, want placeholder", got)
	}
	if len(store.Matches()) != 1 || store.Matches()[0].Opponent != "Real Borgo" {
		t.Errorf("matches = %+v", store.Matches())
	}
	if len(store.Gallery()) != 2 {
		t.Errorf("gallery = %v", store.Gallery())
	}
}

func TestStatsStore_Seasons(t *testing.T) {
	store := newTestStore(nil)
	store.Load([]byte(samplePayload))

	seasons := store.Seasons()
	want := []string{"season_25_26", "season_24_25", "all_time"}
	if len(seasons) != len(want) {
		t.Fatalf("seasons = %+v", seasons)
	}
	for i, key := range want {
		if seasons[i].Key != key {
			t.Errorf("seasons[%d] = %q, want %q", i, seasons[i].Key, key)
		}
	}
	if seasons[0].Label != "Season 25/26" || seasons[0].Players != 2 {
		t.Errorf("seasons[0] = %+v", seasons[0])
	}
	if !seasons[2].Career || seasons[2].Label != "All Time" {
		t.Errorf("seasons[2] = %+v", seasons[2])
	}
	if store.DefaultSeason() != "season_25_26" {
		t.Errorf("DefaultSeason() = %q", store.DefaultSeason())
	}
}

func TestStatsStore_SeasonReturnsCopy(t *testing.T) {
	store := newTestStore(nil)
	store.Load([]byte(samplePayload))

	records := store.Season("season_25_26")
	records[0], records[1] = records[1], records[0]
	records[0] = models.PlayerSeasonRecord{Name: "Intruder"}

	again := store.Season("season_25_26")
	if got := again[0].Field(models.ColName).String(); got != "Rossi" {
		t.Errorf("first record = %q, want Rossi", got)
	}
	if got := store.Table()["season_25_26"][1].Field(models.ColName).String(); got != "Verdi" {
		t.Errorf("stored second record = %q, want Verdi", got)
	}
}

func TestStatsStore_DefaultSeasonCareerOnly(t *testing.T) {
	store := newTestStore(nil)
	store.Load([]byte(`{"all_time": [{"name": "Rossi"}]}`))

	if got := store.DefaultSeason(); got != models.CareerKey {
		t.Errorf("DefaultSeason() = %q, want all_time", got)
	}
}

func TestStatsStore_LoadFailures(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"empty", ""},
		{"blank", "  \n"},
		{"null", "null"},
		{"malformed", `{"season_25_26": [`},
		{"array document", `[1, 2, 3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(nil)
			store.Load([]byte(samplePayload))

			table := store.Load([]byte(tt.payload))

			if len(table) != 0 {
				t.Errorf("table = %v, want empty", table)
			}
			if store.Loaded() {
				t.Error("store still marked loaded")
			}
			if len(store.Table()) != 0 || store.DefaultSeason() != "" {
				t.Error("previous data survived a failed load")
			}
			if got := store.Season("season_25_26"); got == nil || len(got) != 0 {
				t.Errorf("Season() = %v, want empty non-nil slice", got)
			}
		})
	}
}

func TestStatsStore_SkipsMalformedSeason(t *testing.T) {
	store := newTestStore(nil)

	table := store.Load([]byte(`{
		"season_24_25": [{"name": 5}],
		"season_25_26": [{"name": "Verdi", "goals": 3}],
		"all_time": "unavailable",
		"matches": {"broken": true},
		"club": "Tamarindi FC"
	}`))

	if len(table) != 1 {
		t.Fatalf("table = %v, want only season_25_26", table)
	}
	if _, ok := table["season_25_26"]; !ok {
		t.Error("season_25_26 missing")
	}
	if store.Matches() != nil {
		t.Errorf("matches = %v, want nil", store.Matches())
	}
	if !store.Loaded() {
		t.Error("partial document should still count as loaded")
	}
}

func TestStatsStore_LoadIDChangesPerLoad(t *testing.T) {
	store := newTestStore(nil)
	store.Load([]byte(samplePayload))
	first := store.LoadID()
	store.Load([]byte(samplePayload))

	if first == "" || first == store.LoadID() {
		t.Errorf("load IDs %q and %q should differ", first, store.LoadID())
	}
}

func TestStatsStore_LoadFrom(t *testing.T) {
	fetcher := &stubFetcher{payload: []byte(samplePayload)}
	store := newTestStore(fetcher)

	if err := store.LoadFrom(context.Background(), "team_stats.json"); err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if fetcher.calls != 1 || !store.Loaded() {
		t.Errorf("calls = %d, loaded = %v", fetcher.calls, store.Loaded())
	}
}

func TestStatsStore_LoadFromFetchError(t *testing.T) {
	fetchErr := errors.New("connection refused")
	store := newTestStore(&stubFetcher{err: fetchErr})

	err := store.LoadFrom(context.Background(), "http://example.invalid/stats.json")
	if !errors.Is(err, fetchErr) {
		t.Errorf("err = %v, want %v", err, fetchErr)
	}
	if store.Loaded() || len(store.Table()) != 0 {
		t.Error("store should be empty after a failed fetch")
	}
}

func TestStatsStore_LoadFromEmptyPayload(t *testing.T) {
	store := newTestStore(&stubFetcher{payload: []byte("")})

	if err := store.LoadFrom(context.Background(), "x"); !errors.Is(err, ErrEmptyPayload) {
		t.Errorf("err = %v, want ErrEmptyPayload", err)
	}
}

func TestSourceFetcher_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "team_stats.json")
	if err := os.WriteFile(path, []byte(samplePayload), 0o644); err != nil {
		t.Fatal(err)
	}

	data, err := NewSourceFetcher(0).Fetch(context.Background(), path)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if string(data) != samplePayload {
		t.Error("file contents differ")
	}

	if _, err := NewSourceFetcher(0).Fetch(context.Background(), filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := NewSourceFetcher(0).Fetch(context.Background(), ""); !errors.Is(err, ErrEmptyPayload) {
		t.Errorf("empty source err = %v", err)
	}
}

func TestSourceFetcher_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/team_stats.json":
			if r.Header.Get("Accept") != "application/json" {
				t.Errorf("Accept = %q", r.Header.Get("Accept"))
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(samplePayload))
		default:
			http.Error(w, "gone", http.StatusNotFound)
		}
	}))
	defer srv.Close()

	store := NewStatsStore(NewSourceFetcher(0), zap.NewNop())
	if err := store.LoadFrom(context.Background(), srv.URL+"/team_stats.json"); err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if len(store.Seasons()) != 3 {
		t.Errorf("seasons = %+v", store.Seasons())
	}

	if err := store.LoadFrom(context.Background(), srv.URL+"/missing.json"); err == nil {
		t.Error("expected error for 404")
	}
	if store.Loaded() {
		t.Error("store should be empty after a 404")
	}
}

func TestStatsStore_LoadSampleFile(t *testing.T) {
	store := NewStatsStore(NewSourceFetcher(0), zap.NewNop())
	if err := store.LoadFrom(context.Background(), filepath.Join("..", "..", "data", "team_stats.json")); err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	view := NewViewState(store).Render()
	if view.Season != "season_25_26" || view.Empty {
		t.Fatalf("view = %+v", view)
	}
	if got := names(view); got[0] != "Giulio Verdi" {
		t.Errorf("top scorer = %q, want Giulio Verdi", got[0])
	}
	if len(store.Matches()) != 3 || len(store.Gallery()) != 2 {
		t.Errorf("matches = %d, gallery = %d", len(store.Matches()), len(store.Gallery()))
	}
}
