package sample

import "sync"

// Fixed is a deterministic Source that replays a sequence of raw draws.
// Each call to IntN returns the next value reduced modulo n; the sequence
// wraps around when exhausted. An empty sequence always yields 0.
type Fixed struct {
	mu     sync.Mutex
	values []int
	next   int
}

// NewFixed returns a Source replaying values in order.
func NewFixed(values ...int) *Fixed {
	return &Fixed{values: append([]int(nil), values...)}
}

// IntN returns the next replayed value modulo n.
func (f *Fixed) IntN(n int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.values) == 0 || n <= 0 {
		return 0
	}
	v := f.values[f.next%len(f.values)]
	f.next++
	if v < 0 {
		v = -v
	}
	return v % n
}

// Draws reports how many values have been consumed.
func (f *Fixed) Draws() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.next
}
