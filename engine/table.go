package engine

import (
	"sync"

	"github.com/verbatik/speechkit/native"
)

// table is an in-memory handle table. Handles start at 1; handle 0 is the
// invalid marker. Freed slots are reused through a free list. Drop succeeds
// at most once per handle.
type table struct {
	mu       sync.RWMutex
	entries  []tableEntry
	freeList []native.Handle
}

type tableEntry struct {
	value any
	valid bool
}

func newTable() *table {
	return &table{
		entries:  make([]tableEntry, 0, 16),
		freeList: make([]native.Handle, 0, 8),
	}
}

// create stores a value and returns its handle.
func (t *table) create(value any) native.Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	e := tableEntry{value: value, valid: true}
	if n := len(t.freeList); n > 0 {
		h := t.freeList[n-1]
		t.freeList = t.freeList[:n-1]
		t.entries[h-1] = e
		return h
	}
	t.entries = append(t.entries, e)
	return native.Handle(len(t.entries))
}

// get retrieves a value by handle.
func (t *table) get(h native.Handle) (any, bool) {
	if h == native.InvalidHandle {
		return nil, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	idx := int(h) - 1
	if idx >= len(t.entries) || !t.entries[idx].valid {
		return nil, false
	}
	return t.entries[idx].value, true
}

// drop removes a handle and returns its value. A second drop of the same
// handle fails.
func (t *table) drop(h native.Handle) (any, bool) {
	if h == native.InvalidHandle {
		return nil, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	idx := int(h) - 1
	if idx >= len(t.entries) || !t.entries[idx].valid {
		return nil, false
	}

	value := t.entries[idx].value
	t.entries[idx] = tableEntry{}
	t.freeList = append(t.freeList, h)
	return value, true
}

// size returns the number of live entries.
func (t *table) size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := 0
	for _, e := range t.entries {
		if e.valid {
			n++
		}
	}
	return n
}
