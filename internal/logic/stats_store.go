package logic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/tamarindi/team-stats/internal/models"
)

// Top-level keys of the stats document that are not season tables.
const (
	matchesKey = "matches"
	galleryKey = "gallery"
)

// maxPayloadSize caps the stats document at 32MB.
const maxPayloadSize = 32 << 20

// ErrEmptyPayload is reported when the stats document is missing or blank.
var ErrEmptyPayload = errors.New("stats payload is empty")

var (
	statsLoadFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "team_stats_load_failures_total",
		Help: "Total number of failed stats document loads",
	})

	statsRecordsLoaded = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "team_stats_records_loaded",
		Help: "Player records held per season key",
	}, []string{"season"})
)

type snapshot struct {
	table   models.SeasonTable
	matches []models.Match
	gallery []string
}

// StatsStore holds the stats document. It is filled once at startup and
// only read afterwards.
type StatsStore struct {
	mu      sync.RWMutex
	snap    snapshot
	loaded  bool
	loadID  string
	fetcher PayloadFetcher
	logger  *zap.SugaredLogger
}

// NewStatsStore creates an empty store. A nil fetcher uses a file/HTTP
// fetcher with a 10s timeout.
func NewStatsStore(fetcher PayloadFetcher, logger *zap.Logger) *StatsStore {
	if fetcher == nil {
		fetcher = NewSourceFetcher(10 * time.Second)
	}
	return &StatsStore{
		snap:    snapshot{table: models.SeasonTable{}},
		fetcher: fetcher,
		logger:  logger.Sugar(),
	}
}

// LoadFrom fetches the document at source and loads it. On failure the store
// is left empty and the error is returned after being logged.
func (s *StatsStore) LoadFrom(ctx context.Context, source string) error {
	payload, err := s.fetcher.Fetch(ctx, source)
	if err != nil {
		s.fail(err, "source", source)
		return err
	}
	if _, err := s.load(payload); err != nil {
		return err
	}
	s.logger.Infow("Stats loaded", "source", source, "seasons", len(s.Table()), "loadID", s.LoadID())
	return nil
}

// Load parses payload into the store and returns the resulting table. An
// absent or malformed payload is logged and leaves the table empty.
func (s *StatsStore) Load(payload []byte) models.SeasonTable {
	table, _ := s.load(payload)
	return table
}

func (s *StatsStore) load(payload []byte) (models.SeasonTable, error) {
	snap, err := parseSnapshot(payload, s.logger)
	if err != nil {
		s.fail(err)
		return models.SeasonTable{}, err
	}

	s.mu.Lock()
	s.snap = snap
	s.loaded = true
	s.loadID = uuid.NewString()
	s.mu.Unlock()

	statsRecordsLoaded.Reset()
	for key, records := range snap.table {
		statsRecordsLoaded.WithLabelValues(key).Set(float64(len(records)))
	}
	return snap.table, nil
}

func (s *StatsStore) fail(err error, kv ...interface{}) {
	statsLoadFailures.Inc()
	s.logger.Errorw("Failed to load stats", append(kv, "error", err)...)

	s.mu.Lock()
	s.snap = snapshot{table: models.SeasonTable{}}
	s.loaded = false
	s.mu.Unlock()
}

func parseSnapshot(payload []byte, logger *zap.SugaredLogger) (snapshot, error) {
	if len(bytes.TrimSpace(payload)) == 0 {
		return snapshot{}, ErrEmptyPayload
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return snapshot{}, fmt.Errorf("malformed stats payload: %w", err)
	}
	if raw == nil {
		return snapshot{}, ErrEmptyPayload
	}

	snap := snapshot{table: models.SeasonTable{}}
	for key, value := range raw {
		switch {
		case key == matchesKey:
			if err := json.Unmarshal(value, &snap.matches); err != nil {
				logger.Warnw("Skipping malformed match list", "error", err)
				snap.matches = nil
			}
		case key == galleryKey:
			if err := json.Unmarshal(value, &snap.gallery); err != nil {
				logger.Warnw("Skipping malformed gallery list", "error", err)
				snap.gallery = nil
			}
		case models.IsCareerKey(key):
			var records []models.PlayerCareerRecord
			if err := json.Unmarshal(value, &records); err != nil {
				logger.Warnw("Skipping malformed season", "season", key, "error", err)
				continue
			}
			snap.table[key] = careerRecords(records)
		default:
			trimmed := bytes.TrimSpace(value)
			if len(trimmed) == 0 || trimmed[0] != '[' {
				continue
			}
			var records []models.PlayerSeasonRecord
			if err := json.Unmarshal(trimmed, &records); err != nil {
				logger.Warnw("Skipping malformed season", "season", key, "error", err)
				continue
			}
			snap.table[key] = seasonRecords(records)
		}
	}
	return snap, nil
}

func seasonRecords(in []models.PlayerSeasonRecord) []models.Record {
	out := make([]models.Record, len(in))
	for i, r := range in {
		out[i] = r
	}
	return out
}

func careerRecords(in []models.PlayerCareerRecord) []models.Record {
	out := make([]models.Record, len(in))
	for i, r := range in {
		out[i] = r
	}
	return out
}

// Table returns the loaded table. Callers must not modify it.
func (s *StatsStore) Table() models.SeasonTable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.table
}

// Season returns a copy of the records of key, or an empty slice for
// unknown keys. Reordering the copy never touches the store.
func (s *StatsStore) Season(key string) []models.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if records, ok := s.snap.table[key]; ok {
		return slices.Clone(records)
	}
	return []models.Record{}
}

// Seasons lists per-season keys newest first, followed by the career table.
func (s *StatsStore) Seasons() []models.SeasonOption {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.snap.table))
	for key := range s.snap.table {
		if !models.IsCareerKey(key) {
			keys = append(keys, key)
		}
	}
	slices.SortFunc(keys, func(a, b string) int { return strings.Compare(b, a) })
	if _, ok := s.snap.table[models.CareerKey]; ok {
		keys = append(keys, models.CareerKey)
	}

	options := make([]models.SeasonOption, 0, len(keys))
	for _, key := range keys {
		options = append(options, models.SeasonOption{
			Key:     key,
			Label:   models.SeasonLabel(key),
			Career:  models.IsCareerKey(key),
			Players: len(s.snap.table[key]),
		})
	}
	return options
}

// DefaultSeason is the newest season, the career table when no season is
// loaded, or "" for an empty store.
func (s *StatsStore) DefaultSeason() string {
	seasons := s.Seasons()
	if len(seasons) == 0 {
		return ""
	}
	return seasons[0].Key
}

func (s *StatsStore) Matches() []models.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.matches
}

func (s *StatsStore) Gallery() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.gallery
}

// Loaded reports whether the last load succeeded.
func (s *StatsStore) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// LoadID changes on every successful load; cache keys are namespaced by it.
func (s *StatsStore) LoadID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadID
}

// SourceFetcher reads http(s) URLs with a client and anything else from disk.
type SourceFetcher struct {
	client *http.Client
}

func NewSourceFetcher(timeout time.Duration) *SourceFetcher {
	return &SourceFetcher{client: &http.Client{Timeout: timeout}}
}

func (f *SourceFetcher) Fetch(ctx context.Context, source string) ([]byte, error) {
	if source == "" {
		return nil, ErrEmptyPayload
	}
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("read stats file: %w", err)
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("build stats request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch stats: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch stats: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadSize))
	if err != nil {
		return nil, fmt.Errorf("read stats response: %w", err)
	}
	return data, nil
}
