package simrun

import "sync"

// Token identifies one outstanding request issued through a Tracker.
type Token uint64

// Tracker guards against stale responses: every fetch takes a token before
// starting, and applies its result only if it still holds the latest token
// when the response arrives. Responses racing a newer request are discarded
// instead of overwriting newer state. Begin is also how a caller abandons an
// in-flight request (e.g. on navigation away): issuing a new token
// invalidates every older one.
type Tracker struct {
	mu      sync.Mutex
	current Token
}

// Begin registers a new outstanding request and invalidates all earlier
// tokens.
func (t *Tracker) Begin() Token {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current++
	return t.current
}

// Accept reports whether a response produced under the given token may still
// be applied.
func (t *Tracker) Accept(tok Token) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tok == t.current
}

// Cancel invalidates every outstanding token without starting a new request.
func (t *Tracker) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current++
}
