// Package keylock provides mutual exclusion per string key.
//
// Every mutating meeting operation runs inside Lock(meetingID) so that join,
// leave, stream toggles and teardown of the same meeting never interleave,
// while different meetings proceed in parallel. Entries are reference
// counted and removed once the last holder or waiter is gone.
package keylock

import "sync"

type entry struct {
	mu   sync.Mutex
	refs int
}

// Locker is a map of mutexes keyed by string. The zero value is not usable;
// create one with New.
type Locker struct {
	mu      sync.Mutex
	entries map[string]*entry
}

func New() *Locker {
	return &Locker{entries: make(map[string]*entry)}
}

// Lock blocks until the section for key is free and returns the function
// that releases it. The unlock function must be called exactly once.
func (l *Locker) Lock(key string) (unlock func()) {
	l.mu.Lock()
	e, ok := l.entries[key]
	if !ok {
		e = &entry{}
		l.entries[key] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Unlock()

			l.mu.Lock()
			e.refs--
			if e.refs == 0 {
				delete(l.entries, key)
			}
			l.mu.Unlock()
		})
	}
}

// Len returns the number of keys currently held or waited on.
func (l *Locker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
