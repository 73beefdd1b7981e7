package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/tamarindi/team-stats/internal/logic"
	"github.com/tamarindi/team-stats/internal/models"
)

// GetMatches returns the match history as display cards, newest first
// @Summary Match history
// @Tags Matches
// @Produce json
// @Param season query string false "Season key; empty for every season"
// @Param limit query int false "Maximum number of matches"
// @Success 200 {object} map[string]interface{} "Matches"
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Router /api/v1/matches [get]
func (h *Handler) GetMatches(w http.ResponseWriter, r *http.Request) {
	mq, err := h.matchQuery(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid match parameters")
		return
	}

	cards := logic.MatchCards(h.stats.Matches(), h.clubName, mq.Season, mq.Limit)
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"season":  mq.Season,
		"matches": cards,
		"total":   len(cards),
	})
}

// GetGallery returns the photo archive
// @Summary Photo gallery
// @Tags Gallery
// @Produce json
// @Success 200 {object} map[string]interface{} "Photos"
// @Router /api/v1/gallery [get]
func (h *Handler) GetGallery(w http.ResponseWriter, r *http.Request) {
	photos := logic.GalleryPhotos(h.stats.Gallery())
	resp := map[string]interface{}{
		"photos": photos,
	}
	if len(photos) == 0 {
		resp["message"] = logic.EmptyGalleryMessage
	}
	h.jsonResponse(w, http.StatusOK, resp)
}

func (h *Handler) matchQuery(r *http.Request) (models.MatchQuery, error) {
	q := r.URL.Query()
	mq := models.MatchQuery{Season: strings.TrimSpace(q.Get("season"))}
	if l := q.Get("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil {
			return models.MatchQuery{}, err
		}
		mq.Limit = parsed
	}
	if err := h.validator.Struct(mq); err != nil {
		return models.MatchQuery{}, err
	}
	return mq, nil
}
