// Package stats provides usage statistics tracking for Chronex.
package stats

import (
	"runtime"
	"sync/atomic"
	"time"
)

// Collector accumulates conversation counters. All record methods are
// safe for concurrent use and safe on a nil receiver, so callers never
// need to guard the optional collector.
type Collector struct {
	startTime time.Time

	messages      atomic.Int64
	cacheHits     atomic.Int64
	remoteReplies atomic.Int64
	localReplies  atomic.Int64
	errors        atomic.Int64
	totalLatency  atomic.Int64 // nanoseconds
}

// NewCollector creates a stats collector.
func NewCollector() *Collector {
	return &Collector{
		startTime: time.Now(),
	}
}

// Stats is a point-in-time snapshot.
type Stats struct {
	MemoryStats MemoryStats `json:"memory"`
	Goroutines  int         `json:"goroutines"`
	Uptime      string      `json:"uptime"`

	Messages      int64   `json:"messages"`
	CacheHits     int64   `json:"cache_hits"`
	RemoteReplies int64   `json:"remote_replies"`
	LocalReplies  int64   `json:"local_replies"`
	Errors        int64   `json:"errors"`
	AvgLatencyMs  float64 `json:"avg_latency_ms"`
}

// MemoryStats represents memory usage.
type MemoryStats struct {
	HeapAllocMB  float64 `json:"heap_alloc_mb"`
	HeapInuseMB  float64 `json:"heap_inuse_mb"`
	StackInuseMB float64 `json:"stack_inuse_mb"`
	NumGC        uint32  `json:"num_gc"`
}

// Snapshot returns current statistics.
func (c *Collector) Snapshot() *Stats {
	if c == nil {
		return nil
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	messages := c.messages.Load()
	avgLatency := float64(0)
	if messages > 0 {
		avgLatency = float64(c.totalLatency.Load()) / float64(messages) / 1e6
	}

	return &Stats{
		MemoryStats: MemoryStats{
			HeapAllocMB:  bytesToMB(int64(m.HeapAlloc)),
			HeapInuseMB:  bytesToMB(int64(m.HeapInuse)),
			StackInuseMB: bytesToMB(int64(m.StackInuse)),
			NumGC:        m.NumGC,
		},
		Goroutines:    runtime.NumGoroutine(),
		Uptime:        time.Since(c.startTime).String(),
		Messages:      messages,
		CacheHits:     c.cacheHits.Load(),
		RemoteReplies: c.remoteReplies.Load(),
		LocalReplies:  c.localReplies.Load(),
		Errors:        c.errors.Load(),
		AvgLatencyMs:  avgLatency,
	}
}

// RecordMessage records a completed chat turn.
func (c *Collector) RecordMessage(duration time.Duration) {
	if c == nil {
		return
	}
	c.messages.Add(1)
	c.totalLatency.Add(duration.Nanoseconds())
}

// RecordCacheHit records a response served from the cache.
func (c *Collector) RecordCacheHit() {
	if c == nil {
		return
	}
	c.cacheHits.Add(1)
}

// RecordRemote records a response computed by the remote backend.
func (c *Collector) RecordRemote() {
	if c == nil {
		return
	}
	c.remoteReplies.Add(1)
}

// RecordLocal records a response computed by the local pipeline.
func (c *Collector) RecordLocal() {
	if c == nil {
		return
	}
	c.localReplies.Add(1)
}

// RecordError records an internal fault.
func (c *Collector) RecordError() {
	if c == nil {
		return
	}
	c.errors.Add(1)
}

func bytesToMB(b int64) float64 {
	return float64(b) / 1024 / 1024
}
