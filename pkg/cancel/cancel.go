// Package cancel provides a broadcast one-shot cancellation signal. Any number
// of readers can wait on the same token without consuming the firing.
package cancel

import "sync"

const (
	statePending = iota
	stateFired
	stateDropped
)

// Source is the write side of the signal. It fires at most once.
type Source struct {
	tok *Token
}

// Token is the read side of the signal. Done, Fired and Dropped may be called
// any number of times by any number of goroutines.
type Token struct {
	mu    sync.Mutex
	done  chan struct{}
	state int
}

// NewSource creates an unfired signal.
func NewSource() *Source {
	return &Source{tok: &Token{done: make(chan struct{})}}
}

// Token returns the shared read side.
func (s *Source) Token() *Token {
	return s.tok
}

// Fire delivers the signal to every current and future reader. Firing more
// than once, or after Drop, is a no-op.
func (s *Source) Fire() {
	s.tok.close(stateFired)
}

// Drop abandons the source without firing. A reader that observes a dropped
// source has hit a programming error: the owner went away while someone was
// still relying on the signal.
func (s *Source) Drop() {
	s.tok.close(stateDropped)
}

func (t *Token) close(state int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != statePending {
		return
	}
	t.state = state
	close(t.done)
}

// Done returns a channel closed once the source has fired or been dropped.
func (t *Token) Done() <-chan struct{} {
	return t.done
}

// Fired reports whether the source has fired.
func (t *Token) Fired() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state == stateFired
}

// Dropped reports whether the source was abandoned without firing.
func (t *Token) Dropped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state == stateDropped
}
