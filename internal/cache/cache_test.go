package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutThenGet(t *testing.T) {
	c := New(true, time.Hour, 10)

	c.Put("hello", "hi there")
	got, ok := c.Get("hello")

	require.True(t, ok)
	assert.Equal(t, "hi there", got)
}

func TestDisabledCacheStoresNothing(t *testing.T) {
	c := New(false, time.Hour, 10)

	c.Put("hello", "hi there")
	_, ok := c.Get("hello")

	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestFIFOEviction(t *testing.T) {
	c := New(true, time.Hour, 2)

	c.Put("a", "x")
	c.Put("b", "y")
	c.Put("c", "z")

	// First-inserted key is gone; capacity holds at two.
	_, ok := c.Get("a")
	assert.False(t, ok)

	gotB, okB := c.Get("b")
	require.True(t, okB)
	assert.Equal(t, "y", gotB)

	gotC, okC := c.Get("c")
	require.True(t, okC)
	assert.Equal(t, "z", gotC)

	assert.Equal(t, 2, c.Len())
}

func TestEvictionIgnoresReads(t *testing.T) {
	c := New(true, time.Hour, 2)

	c.Put("a", "x")
	c.Put("b", "y")

	// Reading "a" does not protect it: eviction is FIFO, not LRU.
	_, _ = c.Get("a")
	c.Put("c", "z")

	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestRePutTakesFreshInsertionPosition(t *testing.T) {
	c := New(true, time.Hour, 2)

	c.Put("a", "x")
	c.Put("b", "y")
	c.Put("a", "x2") // moves "a" to the back of the order
	c.Put("c", "z")  // evicts "b", now the oldest

	gotA, okA := c.Get("a")
	require.True(t, okA)
	assert.Equal(t, "x2", gotA)

	_, okB := c.Get("b")
	assert.False(t, okB)
}

func TestTTLExpiryDeletesOnRead(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }
	c := New(true, time.Second, 10, WithClock(clock))

	c.Put("a", "x")

	now = now.Add(2 * time.Second)

	_, ok := c.Get("a")
	assert.False(t, ok)
	// The expired entry was purged as a side effect of the read.
	assert.Equal(t, 0, c.Len())
}

func TestWithinTTLSurvives(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }
	c := New(true, 10*time.Second, 10, WithClock(clock))

	c.Put("a", "x")
	now = now.Add(9 * time.Second)

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "x", got)
}

func TestClear(t *testing.T) {
	c := New(true, time.Hour, 10)

	for i := 0; i < 5; i++ {
		c.Put(fmt.Sprintf("k%d", i), "v")
	}
	require.Equal(t, 5, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())

	_, ok := c.Get("k0")
	assert.False(t, ok)
}

func TestCapacityScenario(t *testing.T) {
	// ttl 1s, max 2: put a, b, c ⇒ a absent, b and c present.
	c := New(true, time.Second, 2)

	c.Put("a", "x")
	c.Put("b", "y")
	c.Put("c", "z")

	_, okA := c.Get("a")
	gotB, okB := c.Get("b")
	gotC, okC := c.Get("c")

	assert.False(t, okA)
	require.True(t, okB)
	require.True(t, okC)
	assert.Equal(t, "y", gotB)
	assert.Equal(t, "z", gotC)
}
