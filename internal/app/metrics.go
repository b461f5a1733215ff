package app

import (
	"sync/atomic"
	"time"
)

// Metrics tracks dispatch loop timing.
type Metrics struct {
	// Action application
	actionCount   atomic.Uint64
	actionTotalNs atomic.Int64

	// Frame timing
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	frameMinNs   atomic.Int64
	frameMaxNs   atomic.Int64
	lastFrameNs  atomic.Int64

	// Input
	keyCount    atomic.Uint64
	resizeCount atomic.Uint64

	// Start time for uptime calculation
	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{
		startTime: time.Now(),
	}
	// Initialize min to max int64 so first frame will be smaller
	m.frameMinNs.Store(1<<63 - 1)
	return m
}

// RecordAction records the time spent applying one action.
func (m *Metrics) RecordAction(duration time.Duration) {
	m.actionCount.Add(1)
	m.actionTotalNs.Add(duration.Nanoseconds())
}

// RecordFrame records frame timing.
func (m *Metrics) RecordFrame(duration time.Duration) {
	ns := duration.Nanoseconds()

	m.frameCount.Add(1)
	m.frameTotalNs.Add(ns)
	m.lastFrameNs.Store(ns)

	// Update min (atomic compare-and-swap loop)
	for {
		old := m.frameMinNs.Load()
		if ns >= old {
			break
		}
		if m.frameMinNs.CompareAndSwap(old, ns) {
			break
		}
	}

	// Update max (atomic compare-and-swap loop)
	for {
		old := m.frameMaxNs.Load()
		if ns <= old {
			break
		}
		if m.frameMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordKey records a key event read from the backend.
func (m *Metrics) RecordKey() {
	m.keyCount.Add(1)
}

// RecordResize records a resize event read from the backend.
func (m *Metrics) RecordResize() {
	m.resizeCount.Add(1)
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	Actions   uint64
	ActionAvg time.Duration
	Frames    uint64
	FrameAvg  time.Duration
	FrameMin  time.Duration
	FrameMax  time.Duration
	LastFrame time.Duration
	Keys      uint64
	Resizes   uint64
	Uptime    time.Duration
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		Actions:   m.actionCount.Load(),
		Frames:    m.frameCount.Load(),
		FrameMax:  time.Duration(m.frameMaxNs.Load()),
		LastFrame: time.Duration(m.lastFrameNs.Load()),
		Keys:      m.keyCount.Load(),
		Resizes:   m.resizeCount.Load(),
		Uptime:    time.Since(m.startTime),
	}
	if s.Actions > 0 {
		s.ActionAvg = time.Duration(m.actionTotalNs.Load() / int64(s.Actions))
	}
	if s.Frames > 0 {
		s.FrameAvg = time.Duration(m.frameTotalNs.Load() / int64(s.Frames))
		s.FrameMin = time.Duration(m.frameMinNs.Load())
	}
	return s
}
