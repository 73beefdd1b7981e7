package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/tamarindi/team-stats/internal/logic"
)

// CacheQueue defines the interface for the render cache write-behind pool
type CacheQueue interface {
	Enqueue(key string, payload []byte) bool
	QueueDepth() int
}

// CacheReader is the slice of the Redis client the handlers read through.
type CacheReader interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

type Config struct {
	Stats         logic.StatsService
	Redis         CacheReader
	CacheQueue    CacheQueue
	Logger        *zap.Logger
	ClubName      string
	DefaultSeason string
}

type Handler struct {
	stats         logic.StatsService
	redis         CacheReader
	cacheQueue    CacheQueue
	logger        *zap.SugaredLogger
	validator     *validator.Validate
	clubName      string
	defaultSeason string
}

func New(cfg Config) *Handler {
	return &Handler{
		stats:         cfg.Stats,
		redis:         cfg.Redis,
		cacheQueue:    cfg.CacheQueue,
		logger:        cfg.Logger.Sugar(),
		validator:     validator.New(),
		clubName:      cfg.ClubName,
		defaultSeason: cfg.DefaultSeason,
	}
}
