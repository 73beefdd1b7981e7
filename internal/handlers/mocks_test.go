package handlers

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
)

// MockCacheReader
type MockCacheReader struct {
	GetFunc  func(ctx context.Context, key string) *redis.StringCmd
	PingFunc func(ctx context.Context) *redis.StatusCmd
}

func (m *MockCacheReader) Get(ctx context.Context, key string) *redis.StringCmd {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (m *MockCacheReader) Ping(ctx context.Context) *redis.StatusCmd {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return redis.NewStatusResult("PONG", nil)
}

// MockCacheQueue records every enqueued view.
type MockCacheQueue struct {
	mu    sync.Mutex
	Keys  []string
	Depth int
}

func (m *MockCacheQueue) Enqueue(key string, payload []byte) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Keys = append(m.Keys, key)
	return true
}

func (m *MockCacheQueue) QueueDepth() int { return m.Depth }

func (m *MockCacheQueue) enqueued() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.Keys...)
}
