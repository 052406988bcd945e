// Package credential hands out validation API keys in round-robin order.
package credential

import (
	"slices"
	"sync"
)

// Rotator owns an ordered list of credentials and a cursor into it.
//
// The cursor is always a valid index into keys, or keys is empty. All methods
// are safe for concurrent use; Next performs its read-and-advance under one
// lock so no two callers observe the same cursor position.
type Rotator struct {
	mu     sync.Mutex
	keys   []string
	cursor int
}

// NewRotator creates a Rotator over a copy of keys.
func NewRotator(keys []string) *Rotator {
	return &Rotator{keys: slices.Clone(keys)}
}

// Next returns the credential at the cursor and advances the cursor. With a
// single credential the cursor never moves. With no credentials it returns
// false.
func (r *Rotator) Next() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch len(r.keys) {
	case 0:
		return "", false
	case 1:
		return r.keys[0], true
	}

	key := r.keys[r.cursor]
	r.cursor = (r.cursor + 1) % len(r.keys)

	return key, true
}

// Reload replaces the credential list wholesale and resets the cursor.
func (r *Rotator) Reload(keys []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.keys = slices.Clone(keys)
	r.cursor = 0
}

// Len returns the number of loaded credentials.
func (r *Rotator) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.keys)
}

// Cursor returns the index of the credential Next will hand out.
func (r *Rotator) Cursor() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.cursor
}
