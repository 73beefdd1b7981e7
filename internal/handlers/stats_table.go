package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tamarindi/team-stats/internal/models"
)

// GetSeasons lists the seasons available to the selector
// @Summary List seasons
// @Tags Stats
// @Produce json
// @Success 200 {object} map[string]interface{} "Seasons"
// @Router /api/v1/seasons [get]
func (h *Handler) GetSeasons(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"seasons": h.stats.Seasons(),
		"default": h.resolveSeason(""),
		"loaded":  h.stats.Loaded(),
	})
}

// GetSeasonTable returns one season's table, sorted
// @Summary Season table
// @Description Header and rows of a season (or the all_time career table). Unknown seasons render a single informational row.
// @Tags Stats
// @Produce json
// @Param season path string true "Season key (e.g. season_25_26, all_time)"
// @Param sort query string false "Column to sort by"
// @Param dir query string false "asc or desc"
// @Success 200 {object} models.TableView
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Router /api/v1/stats/{season} [get]
func (h *Handler) GetSeasonTable(w http.ResponseWriter, r *http.Request) {
	tq, err := h.tableQuery(r, chi.URLParam(r, "season"))
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid table parameters")
		return
	}

	state := h.viewState(tq)
	key := viewCacheKey(h.stats.LoadID(), state.ActiveSeason, state.Sort)
	if payload, ok := h.cachedView(r.Context(), key); ok {
		writeJSONBytes(w, payload)
		return
	}

	_, payload, err := h.renderJSON(tq)
	if err != nil {
		h.logger.Errorw("Failed to encode table view", "season", state.ActiveSeason, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to render table")
		return
	}
	h.storeView(key, payload)
	writeJSONBytes(w, payload)
}

// renderView renders the view a query asks for and records metrics.
func (h *Handler) renderView(tq models.TableQuery) models.TableView {
	start := time.Now()
	view := h.viewState(tq).Render()
	tableRenderDuration.Observe(time.Since(start).Seconds())
	tableRenders.WithLabelValues(viewLabel(view.Empty, view.Career)).Inc()
	return view
}

func (h *Handler) renderJSON(tq models.TableQuery) (models.TableView, []byte, error) {
	view := h.renderView(tq)
	payload, err := json.Marshal(view)
	if err != nil {
		return view, nil, err
	}
	return view, payload, nil
}

func writeJSONBytes(w http.ResponseWriter, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}
