package mode

import "sync"

// ChangeCallback is called after the mode changes.
type ChangeCallback func(from, to Mode)

// State is a mode value shared between goroutines.
// The zero value holds Normal and is ready to use.
type State struct {
	mu        sync.RWMutex
	current   Mode
	callbacks []ChangeCallback
}

// NewState creates a shared mode cell holding the given mode.
func NewState(initial Mode) *State {
	return &State{current: initial}
}

// Current returns the most recently committed mode.
func (s *State) Current() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set commits a new mode and reports whether it differed from the old one.
// Callbacks run outside the lock and only on an actual change.
func (s *State) Set(m Mode) bool {
	s.mu.Lock()
	old := s.current
	if old == m {
		s.mu.Unlock()
		return false
	}
	s.current = m
	callbacks := make([]ChangeCallback, len(s.callbacks))
	copy(callbacks, s.callbacks)
	s.mu.Unlock()

	for _, cb := range callbacks {
		if cb != nil {
			cb(old, m)
		}
	}
	return true
}

// OnChange registers a callback for mode changes.
func (s *State) OnChange(cb ChangeCallback) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callbacks = append(s.callbacks, cb)
}
