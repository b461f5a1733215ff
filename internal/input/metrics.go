package input

import "sync/atomic"

// Metrics counts interpreter activity.
type Metrics struct {
	keyEventsTotal atomic.Uint64
	actionsTotal   atomic.Uint64
	cancelledTotal atomic.Uint64
	ignoredTotal   atomic.Uint64
}

// MetricsSnapshot is a point-in-time copy of Metrics.
type MetricsSnapshot struct {
	KeyEvents uint64
	Actions   uint64
	Cancelled uint64
	Ignored   uint64
}

// Snapshot returns the current counter values.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		KeyEvents: m.keyEventsTotal.Load(),
		Actions:   m.actionsTotal.Load(),
		Cancelled: m.cancelledTotal.Load(),
		Ignored:   m.ignoredTotal.Load(),
	}
}
