package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotCounters(t *testing.T) {
	c := NewCollector()

	c.RecordMessage(10 * time.Millisecond)
	c.RecordMessage(30 * time.Millisecond)
	c.RecordCacheHit()
	c.RecordRemote()
	c.RecordLocal()
	c.RecordError()

	snap := c.Snapshot()
	require.NotNil(t, snap)

	assert.Equal(t, int64(2), snap.Messages)
	assert.Equal(t, int64(1), snap.CacheHits)
	assert.Equal(t, int64(1), snap.RemoteReplies)
	assert.Equal(t, int64(1), snap.LocalReplies)
	assert.Equal(t, int64(1), snap.Errors)
	assert.InDelta(t, 20.0, snap.AvgLatencyMs, 0.01)
	assert.Positive(t, snap.Goroutines)
}

func TestSnapshotZeroMessages(t *testing.T) {
	snap := NewCollector().Snapshot()

	assert.Zero(t, snap.AvgLatencyMs)
}

func TestNilCollectorIsSafe(t *testing.T) {
	var c *Collector

	c.RecordMessage(time.Millisecond)
	c.RecordCacheHit()
	c.RecordRemote()
	c.RecordLocal()
	c.RecordError()

	assert.Nil(t, c.Snapshot())
}
