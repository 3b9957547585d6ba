package skus

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/pricedash/internal/metrics"
	"github.com/ternarybob/pricedash/internal/models"
)

func TestSequencer(t *testing.T) {
	var seq Sequencer

	first := seq.Next()
	second := seq.Next()
	assert.Equal(t, uint64(2), seq.Latest())

	assert.True(t, seq.Accept(second))
	assert.False(t, seq.Accept(first), "older request must not be applied after a newer one")
	assert.False(t, seq.Accept(second), "a request is applied at most once")

	third := seq.Next()
	assert.True(t, seq.Accept(third))
}

func TestCatalog_CachesWithinInterval(t *testing.T) {
	calls := 0
	load := func(ctx context.Context) ([]models.SkuRecord, error) {
		calls++
		return []models.SkuRecord{{ID: "1001-1"}}, nil
	}

	catalog := NewCatalog(load, time.Minute, metrics.NewRegistry(), arbor.NewLogger())
	now := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	catalog.now = func() time.Time { return now }

	ctx := context.Background()
	_, err := catalog.Records(ctx)
	require.NoError(t, err)
	_, err = catalog.Records(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	now = now.Add(2 * time.Minute)
	_, err = catalog.Records(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)

	catalog.Invalidate()
	_, err = catalog.Records(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestCatalog_FailedRefreshKeepsPreviousRecords(t *testing.T) {
	fail := false
	load := func(ctx context.Context) ([]models.SkuRecord, error) {
		if fail {
			return nil, errors.New("unavailable")
		}
		return []models.SkuRecord{{ID: "1001-1"}}, nil
	}

	catalog := NewCatalog(load, time.Minute, metrics.NewRegistry(), arbor.NewLogger())
	ctx := context.Background()

	_, err := catalog.Refresh(ctx)
	require.NoError(t, err)

	fail = true
	_, err = catalog.Refresh(ctx)
	assert.Error(t, err)

	records, err := catalog.Records(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestCatalog_StaleRefreshIsDiscarded(t *testing.T) {
	slowStarted := make(chan struct{})
	releaseSlow := make(chan struct{})
	var mu sync.Mutex
	call := 0

	load := func(ctx context.Context) ([]models.SkuRecord, error) {
		mu.Lock()
		call++
		n := call
		mu.Unlock()

		if n == 1 {
			close(slowStarted)
			<-releaseSlow
			return []models.SkuRecord{{ID: "old"}}, nil
		}
		return []models.SkuRecord{{ID: "new"}}, nil
	}

	registry := metrics.NewRegistry()
	catalog := NewCatalog(load, time.Hour, registry, arbor.NewLogger())
	ctx := context.Background()

	done := make(chan []models.SkuRecord)
	go func() {
		records, _ := catalog.Refresh(ctx)
		done <- records
	}()
	<-slowStarted

	newer, err := catalog.Refresh(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", newer[0].ID)

	close(releaseSlow)
	older := <-done
	assert.Equal(t, "old", older[0].ID, "the slow caller still receives its own result")

	records, err := catalog.Records(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "new", records[0].ID)
}
