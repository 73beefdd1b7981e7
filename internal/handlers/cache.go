package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tamarindi/team-stats/internal/models"
)

const cacheReadTimeout = 250 * time.Millisecond

// viewCacheKey namespaces cached views by load so a reload never serves a
// view of the previous document.
func viewCacheKey(loadID string, season string, spec models.SortSpec) string {
	return fmt.Sprintf("team_stats:view:%s:%s:%s:%s", loadID, season, spec.Column, spec.Direction)
}

// cachedView returns a cached JSON view. Redis errors count as misses.
func (h *Handler) cachedView(ctx context.Context, key string) ([]byte, bool) {
	if h.redis == nil {
		return nil, false
	}

	ctx, cancel := context.WithTimeout(ctx, cacheReadTimeout)
	defer cancel()

	data, err := h.redis.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		renderCacheResults.WithLabelValues("hit").Inc()
		return data, true
	case errors.Is(err, redis.Nil):
		renderCacheResults.WithLabelValues("miss").Inc()
	default:
		renderCacheResults.WithLabelValues("error").Inc()
		h.logger.Warnw("Render cache read failed", "key", key, "error", err)
	}
	return nil, false
}

// storeView hands a rendered view to the write-behind pool.
func (h *Handler) storeView(key string, payload []byte) {
	if h.cacheQueue == nil || h.redis == nil {
		return
	}
	h.cacheQueue.Enqueue(key, payload)
}

// WarmSeason renders the default view of season and queues it for caching.
func (h *Handler) WarmSeason(ctx context.Context, season string) error {
	if h.cacheQueue == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	view, payload, err := h.renderJSON(models.TableQuery{Season: season})
	if err != nil {
		return err
	}
	h.storeView(viewCacheKey(h.stats.LoadID(), view.Season, view.Sort), payload)
	return nil
}
