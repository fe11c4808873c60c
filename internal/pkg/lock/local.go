package lock

import (
	"context"
	"sync"

	"github.com/KirkDiggler/cultivation-api/internal/errors"
)

// Local is an in-process Locker. Entries are reference counted and removed
// once nobody holds or waits on them.
type Local struct {
	mu      sync.Mutex
	entries map[string]*localEntry
}

type localEntry struct {
	sem  chan struct{}
	refs int
}

// NewLocal creates an in-process locker
func NewLocal() *Local {
	return &Local{entries: make(map[string]*localEntry)}
}

// Acquire implements Locker
func (l *Local) Acquire(ctx context.Context, key string) (Release, error) {
	if key == "" {
		return nil, errors.InvalidArgument("lock key is required")
	}

	l.mu.Lock()
	entry, ok := l.entries[key]
	if !ok {
		entry = &localEntry{sem: make(chan struct{}, 1)}
		l.entries[key] = entry
	}
	entry.refs++
	l.mu.Unlock()

	select {
	case entry.sem <- struct{}{}:
	case <-ctx.Done():
		l.unref(key, entry)
		return nil, errors.LockWait(ctx, key)
	}

	var once sync.Once
	return func(context.Context) error {
		once.Do(func() {
			<-entry.sem
			l.unref(key, entry)
		})
		return nil
	}, nil
}

func (l *Local) unref(key string, entry *localEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry.refs--
	if entry.refs == 0 {
		delete(l.entries, key)
	}
}

// held returns the number of keys with holders or waiters
func (l *Local) held() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
