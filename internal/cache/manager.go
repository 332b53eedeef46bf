// Package cache holds the loaded dataset with a TTL and an explicit
// invalidate/reload cycle. The dataset slice is immutable once published;
// reloads build a new slice and swap it in one step.
package cache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"desglose/internal/metrics"
	"desglose/internal/model"
)

// DefaultTTL matches the original 5-minute dataset freshness window.
const DefaultTTL = 5 * time.Minute

// LoadFunc produces a fresh dataset.
type LoadFunc func(ctx context.Context) ([]model.Piece, error)

// Info is a read-only snapshot of the cache state.
type Info struct {
	HasData      bool   `json:"hasCachedData"`
	Records      int    `json:"recordsCount"`
	AgeSeconds   int    `json:"cacheAge"`
	AgeMinutes   int    `json:"cacheAgeMinutes"`
	IsExpired    bool   `json:"isExpired"`
	TimeToExpire int    `json:"timeToExpire"`
	Version      uint64 `json:"cacheVersion"`
}

// Manager guards the single mutable slot of the process: the cached dataset.
// The clock and loader are injected so tests control time and failure paths.
type Manager struct {
	load LoadFunc
	now  func() time.Time
	ttl  time.Duration
	log  *zap.Logger

	// reloadMu serializes fetches; mu guards the published slot. Readers
	// take mu alone, so they never wait on an in-flight fetch.
	reloadMu sync.Mutex
	mu       sync.RWMutex
	data     []model.Piece
	loadedAt time.Time
	version  uint64
}

// Option configures a Manager.
type Option func(*Manager)

// WithTTL overrides the freshness window.
func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) { m.ttl = ttl }
}

// WithClock injects the time source.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// New creates a cache manager over the given loader.
func New(load LoadFunc, log *zap.Logger, opts ...Option) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	m := &Manager{
		load: load,
		now:  time.Now,
		ttl:  DefaultTTL,
		log:  log,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Dataset returns the cached dataset, reloading when forced, expired or
// empty. The reload mutex serializes fetches: concurrent callers that observe
// an expired cache queue on it and re-check freshness before loading, so a
// stampede produces a single fetch, while fresh readers proceed under the
// read lock without waiting. On reload failure the previous dataset is served
// if one exists (stale-on-error); otherwise the error propagates.
func (m *Manager) Dataset(ctx context.Context, force bool) ([]model.Piece, error) {
	if !force {
		if data, ok := m.cached(); ok {
			return data, nil
		}
	}

	m.reloadMu.Lock()
	defer m.reloadMu.Unlock()

	// Another caller may have reloaded while this one waited for the lock.
	if !force {
		if data, ok := m.cached(); ok {
			return data, nil
		}
	}

	data, err := m.load(ctx)
	if err != nil {
		metrics.DatasetLoads.WithLabelValues("error").Inc()
		m.mu.RLock()
		stale := m.data
		m.mu.RUnlock()
		if stale != nil {
			metrics.StaleFallbacks.Inc()
			m.log.Warn("reload failed, serving stale dataset",
				zap.Int("records", len(stale)), zap.Error(err))
			return stale, nil
		}
		return nil, err
	}

	m.mu.Lock()
	m.data = data
	m.loadedAt = m.now()
	version := m.version
	m.mu.Unlock()

	metrics.DatasetLoads.WithLabelValues("ok").Inc()
	metrics.DatasetRecords.Set(float64(len(data)))
	m.log.Info("dataset cached",
		zap.Int("records", len(data)), zap.Uint64("version", version))

	return data, nil
}

// Invalidate clears the cached dataset so the next read reloads regardless of
// TTL, and bumps the version counter. Called when the source workbook is
// replaced.
func (m *Manager) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = nil
	m.loadedAt = time.Time{}
	m.version++
	metrics.CacheInvalidations.Inc()
	m.log.Info("cache invalidated", zap.Uint64("version", m.version))
}

// Info returns a snapshot of the cache state.
func (m *Manager) Info() Info {
	m.mu.RLock()
	defer m.mu.RUnlock()

	info := Info{
		HasData: m.data != nil,
		Records: len(m.data),
		Version: m.version,
	}
	if m.data != nil {
		age := m.now().Sub(m.loadedAt)
		info.AgeSeconds = int(age / time.Second)
		info.AgeMinutes = int(age / time.Minute)
		info.IsExpired = age > m.ttl
		if !info.IsExpired {
			info.TimeToExpire = int((m.ttl - age) / time.Second)
		}
	} else {
		info.IsExpired = true
	}
	return info
}

// cached returns the published dataset when it exists and is within TTL.
func (m *Manager) cached() ([]model.Piece, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.fresh() {
		return m.data, true
	}
	return nil, false
}

// fresh reports whether the cached dataset exists and is within TTL.
// Caller holds the slot lock, read or write.
func (m *Manager) fresh() bool {
	return m.data != nil && m.now().Sub(m.loadedAt) < m.ttl
}
