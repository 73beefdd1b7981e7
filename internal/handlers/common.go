package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/tamarindi/team-stats/internal/logic"
	"github.com/tamarindi/team-stats/internal/models"
)

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// Ready check endpoint. A failed stats load still serves empty tables, but
// the instance is reported as not ready.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	checks := map[string]bool{
		"stats": h.stats.Loaded(),
	}
	if h.redis != nil {
		checks["redis"] = h.redis.Ping(ctx).Err() == nil
	}

	allHealthy := true
	for _, ok := range checks {
		if !ok {
			allHealthy = false
			break
		}
	}

	queueDepth := 0
	if h.cacheQueue != nil {
		queueDepth = h.cacheQueue.QueueDepth()
	}

	status := http.StatusOK
	if !allHealthy {
		status = http.StatusServiceUnavailable
	}
	h.jsonResponse(w, status, map[string]interface{}{
		"ready":      allHealthy,
		"checks":     checks,
		"queueDepth": queueDepth,
	})
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}

// tableQuery reads and validates season/sort/dir from the request.
func (h *Handler) tableQuery(r *http.Request, season string) (models.TableQuery, error) {
	q := r.URL.Query()
	if season == "" {
		season = q.Get("season")
	}
	tq := models.TableQuery{
		Season: strings.TrimSpace(season),
		Sort:   strings.TrimSpace(q.Get("sort")),
		Dir:    strings.ToLower(strings.TrimSpace(q.Get("dir"))),
	}
	if err := h.validator.Struct(tq); err != nil {
		return models.TableQuery{}, err
	}
	return tq, nil
}

// seasonOnlyQuery keeps the requested season when it is valid on its own,
// dropping sort and direction.
func (h *Handler) seasonOnlyQuery(r *http.Request) models.TableQuery {
	tq := models.TableQuery{Season: strings.TrimSpace(r.URL.Query().Get("season"))}
	if err := h.validator.Struct(tq); err != nil {
		return models.TableQuery{}
	}
	return tq
}

// resolveSeason picks the requested season, then the configured default if
// the store has it, then the store's own default.
func (h *Handler) resolveSeason(requested string) string {
	if requested != "" {
		return requested
	}
	if h.defaultSeason != "" {
		for _, s := range h.stats.Seasons() {
			if s.Key == h.defaultSeason {
				return h.defaultSeason
			}
		}
	}
	return h.stats.DefaultSeason()
}

// viewState builds the per-request view: switch season (which resets the
// sort to the view default), then apply an explicit sort if one was asked
// for. A sort without a direction behaves like a first header click.
func (h *Handler) viewState(tq models.TableQuery) *logic.ViewState {
	state := logic.NewViewState(h.stats)
	state.ChangeSeason(h.resolveSeason(tq.Season))

	if tq.Sort == "" {
		return state
	}
	if tq.Dir == "" {
		spec, _ := logic.InitialSort(state.ActiveSeason, tq.Sort)
		state.SetSort(spec)
		return state
	}
	state.SetSort(models.SortSpec{Column: tq.Sort, Direction: models.Direction(tq.Dir)})
	return state
}
