package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractStats_Snapshot(t *testing.T) {
	stats := NewExtractStats(time.Hour)
	stats.Record(10, 3)
	stats.Record(20, 5)
	stats.Record(30, 2)

	snap := stats.Snapshot()
	assert.Equal(t, 3, snap.Documents)
	assert.Equal(t, 10, snap.TotalHeadings)
	assert.Equal(t, int64(10), snap.MinMs)
	assert.Equal(t, int64(30), snap.MaxMs)
	assert.InDelta(t, 20.0, snap.AvgMs, 0.001)
	assert.InDelta(t, 20.0, snap.P50Ms, 0.001)
}

func TestExtractStats_Empty(t *testing.T) {
	snap := NewExtractStats(time.Hour).Snapshot()
	assert.Equal(t, StatsSnapshot{}, snap)
}

func TestExtractStats_NegativeDurationClamped(t *testing.T) {
	stats := NewExtractStats(time.Hour)
	stats.Record(-5, 1)

	snap := stats.Snapshot()
	assert.Equal(t, int64(0), snap.MinMs)
}

func TestExtractStats_WindowPrunes(t *testing.T) {
	stats := NewExtractStats(10 * time.Millisecond)
	stats.Record(100, 4)
	time.Sleep(20 * time.Millisecond)
	stats.Record(200, 1)

	snap := stats.Snapshot()
	assert.Equal(t, 1, snap.Documents)
	assert.Equal(t, 1, snap.TotalHeadings)
}

func TestPercentile(t *testing.T) {
	values := []int64{10, 20, 30, 40, 50}
	assert.InDelta(t, 30.0, percentile(values, 50), 0.001)
	assert.InDelta(t, 10.0, percentile(values, 0), 0.001)
	assert.InDelta(t, 50.0, percentile(values, 100), 0.001)
	assert.InDelta(t, 48.0, percentile(values, 95), 0.001)
	assert.Equal(t, 0.0, percentile(nil, 50))
}
