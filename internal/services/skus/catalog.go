package skus

import (
	"context"
	"sync"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/pricedash/internal/metrics"
	"github.com/ternarybob/pricedash/internal/models"
)

// LoadFunc fetches a fresh copy of the record list
type LoadFunc func(ctx context.Context) ([]models.SkuRecord, error)

// Catalog holds the in-memory dashboard record list and reloads it once it is
// older than the refresh interval. A zero interval reloads on every read.
type Catalog struct {
	mu       sync.RWMutex
	records  []models.SkuRecord
	loadedAt time.Time
	loaded   bool

	load     LoadFunc
	interval time.Duration
	seq      Sequencer
	now      func() time.Time
	metrics  *metrics.Registry
	logger   arbor.ILogger
}

// NewCatalog creates an empty catalog backed by load
func NewCatalog(load LoadFunc, interval time.Duration, registry *metrics.Registry, logger arbor.ILogger) *Catalog {
	return &Catalog{
		load:     load,
		interval: interval,
		now:      time.Now,
		metrics:  registry,
		logger:   logger,
	}
}

// Records returns the current record list, reloading it when stale.
// The returned slice is shared and must not be modified.
func (c *Catalog) Records(ctx context.Context) ([]models.SkuRecord, error) {
	c.mu.RLock()
	if c.loaded && c.now().Sub(c.loadedAt) < c.interval {
		records := c.records
		c.mu.RUnlock()
		return records, nil
	}
	c.mu.RUnlock()

	return c.Refresh(ctx)
}

// Refresh reloads the record list. The caller always receives the records it
// loaded; they replace the shared list only if no newer refresh has already
// been applied.
func (c *Catalog) Refresh(ctx context.Context) ([]models.SkuRecord, error) {
	seq := c.seq.Next()

	records, err := c.load(ctx)
	if err != nil {
		c.metrics.RecordRefresh(metrics.RefreshFailed, 0)
		return nil, err
	}

	c.apply(seq, records)
	return records, nil
}

func (c *Catalog) apply(seq uint64, records []models.SkuRecord) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.seq.Accept(seq) {
		c.metrics.RecordRefresh(metrics.RefreshDiscarded, 0)
		c.logger.Debug().Int("seq", int(seq)).Int("latest", int(c.seq.Latest())).Msg("Discarding stale catalog refresh")
		return false
	}

	c.records = records
	c.loadedAt = c.now()
	c.loaded = true
	c.metrics.RecordRefresh(metrics.RefreshApplied, len(records))
	c.logger.Debug().Int("records", len(records)).Int("seq", int(seq)).Msg("Catalog refreshed")
	return true
}

// Invalidate forces the next read to reload
func (c *Catalog) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = false
}
