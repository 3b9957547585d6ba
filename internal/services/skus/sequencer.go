package skus

import "sync"

// Sequencer issues monotonically increasing request numbers and decides which
// completed requests may update shared state. A completion is accepted only
// when it is newer than every completion accepted before it, so a slow
// request can never overwrite the result of a request issued after it.
type Sequencer struct {
	mu       sync.Mutex
	issued   uint64
	accepted uint64
}

// Next issues a new request number
func (s *Sequencer) Next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// Accept reports whether the completion of request seq may be applied,
// recording it as the latest applied request when it may
func (s *Sequencer) Accept(seq uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq <= s.accepted {
		return false
	}
	s.accepted = seq
	return true
}

// Latest returns the most recently issued request number
func (s *Sequencer) Latest() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.issued
}
