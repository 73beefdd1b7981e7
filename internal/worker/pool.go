// Package worker implements the buffered worker pool that writes rendered
// table views to the Redis render cache. Request handlers never wait on
// Redis: they enqueue the payload and move on.
// - Backpressure handling via load shedding
// - Pipelined batch writes
// - Graceful shutdown with flush guarantees

package worker

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Prometheus metrics
var (
	cacheWritesQueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "team_stats_cache_writes_queued_total",
		Help: "Total number of render cache writes queued",
	})

	cacheWritesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "team_stats_cache_writes_processed_total",
		Help: "Total number of render cache writes flushed to Redis",
	})

	cacheWritesFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "team_stats_cache_writes_failed_total",
		Help: "Total number of render cache writes that failed",
	})

	cacheWritesShed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "team_stats_cache_writes_load_shed_total",
		Help: "Total number of render cache writes dropped because the queue was full",
	})

	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "team_stats_cache_queue_depth",
		Help: "Current depth of the render cache write queue",
	})

	batchWriteDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "team_stats_cache_batch_write_duration_seconds",
		Help:    "Duration of pipelined render cache writes",
		Buckets: prometheus.DefBuckets,
	})
)

// Pipeliner is the slice of the Redis client the pool writes through.
type Pipeliner interface {
	Pipeline() redis.Pipeliner
}

// Job is one rendered view waiting to be cached.
type Job struct {
	Key       string
	Payload   []byte
	Timestamp time.Time
}

// PoolConfig configures the worker pool
type PoolConfig struct {
	WorkerCount   int
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration
	TTL           time.Duration
	Redis         Pipeliner
	Logger        *zap.Logger
}

// Pool manages a pool of workers for async cache writes
type Pool struct {
	config   PoolConfig
	jobQueue chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	logger   *zap.SugaredLogger
	stopOnce sync.Once
}

// NewPool creates a new worker pool
func NewPool(cfg PoolConfig) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 32
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = 500 * time.Millisecond
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Pool{
		config:   cfg,
		jobQueue: make(chan Job, cfg.QueueSize),
		logger:   cfg.Logger.Sugar(),
	}
}

// Start launches the worker goroutines. Cancelling ctx only stops the
// queue depth reporter; the workers run until Stop.
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	go p.reportQueueDepth()

	p.logger.Infow("Cache worker pool started",
		"workers", p.config.WorkerCount,
		"queueSize", p.config.QueueSize,
		"batchSize", p.config.BatchSize,
	)
}

// Stop flushes queued writes and waits for the workers to exit.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		p.logger.Info("Stopping cache worker pool...")
		close(p.jobQueue)
		p.wg.Wait()
		if p.cancel != nil {
			p.cancel()
		}
		p.logger.Info("Cache worker pool stopped")
	})
}

// Enqueue queues a cache write. It never blocks: when the queue is full or
// the pool is stopped the write is shed and false is returned.
func (p *Pool) Enqueue(key string, payload []byte) bool {
	job := Job{
		Key:       key,
		Payload:   payload,
		Timestamp: time.Now(),
	}

	// Protect against sending on closed channel
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warnw("Failed to enqueue cache write (pool stopped)", "key", key)
			cacheWritesShed.Inc()
		}
	}()

	select {
	case p.jobQueue <- job:
		cacheWritesQueued.Inc()
		return true
	default:
		p.logger.Warnw("Cache write queue full, dropping write", "key", key)
		cacheWritesShed.Inc()
		return false
	}
}

// QueueDepth returns current queue size
func (p *Pool) QueueDepth() int {
	return len(p.jobQueue)
}

// worker drains the queue in batches. It exits only once Stop has closed
// the queue, so every accepted write is flushed.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	batch := make([]Job, 0, p.config.BatchSize)
	ticker := time.NewTicker(p.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}

		start := time.Now()
		if err := p.processBatch(batch); err != nil {
			p.logger.Errorw("Cache batch write failed",
				"worker", id,
				"batchSize", len(batch),
				"error", err,
			)
			cacheWritesFailed.Add(float64(len(batch)))
		} else {
			p.logger.Debugw("Cache batch written", "worker", id, "batchSize", len(batch), "duration", time.Since(start))
			cacheWritesProcessed.Add(float64(len(batch)))
		}
		batchWriteDuration.Observe(time.Since(start).Seconds())

		batch = batch[:0]
	}

	for {
		select {
		case job, ok := <-p.jobQueue:
			if !ok {
				flush()
				return
			}

			batch = append(batch, job)
			if len(batch) >= p.config.BatchSize {
				flush()
			}

		case <-ticker.C:
			flush()
		}
	}
}

// processBatch writes a batch through one Redis pipeline
func (p *Pool) processBatch(batch []Job) error {
	if len(batch) == 0 || p.config.Redis == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pipe := p.config.Redis.Pipeline()
	for _, job := range batch {
		pipe.Set(ctx, job.Key, job.Payload, p.config.TTL)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (p *Pool) reportQueueDepth() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			queueDepth.Set(float64(len(p.jobQueue)))
		case <-p.ctx.Done():
			return
		}
	}
}
