package describe

import "sync"

// State is the latest description and whether one is being fetched.
type State struct {
	mu       sync.RWMutex
	text     string
	loading  bool
	received int
}

// Snapshot returns the current text and loading flag.
func (s *State) Snapshot() (text string, loading bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.text, s.loading
}

// Received counts completed requests.
func (s *State) Received() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.received
}

func (s *State) begin() {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
}

func (s *State) finish(text string) {
	s.mu.Lock()
	s.text = text
	s.loading = false
	s.received++
	s.mu.Unlock()
}
