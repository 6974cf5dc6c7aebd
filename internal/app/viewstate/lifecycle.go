package viewstate

import "sync"

// lifecycle hands out load generations. A result is applied only if its
// generation is still current: a newer load or Close bumps the
// generation, so in-flight results for older generations land nowhere.
type lifecycle struct {
	mu     sync.Mutex
	gen    uint64
	closed bool
}

// next starts a new generation and returns it.
func (l *lifecycle) next() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.gen++

	return l.gen
}

// active returns the current generation without starting a new one.
func (l *lifecycle) active() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.gen
}

// current reports whether gen is still the live generation.
func (l *lifecycle) current(gen uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return !l.closed && gen == l.gen
}

// open reports whether the orchestrator has not been closed.
func (l *lifecycle) open() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return !l.closed
}

// close tears the lifecycle down. Every outstanding generation becomes
// stale and no future generation is handed out as current.
func (l *lifecycle) close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	l.gen++
}
