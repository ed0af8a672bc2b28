// Package locking provides the named mutual-exclusion locks that serialize
// signature completions per spreadsheet. The remote store offers no
// concurrency control of its own, so every worker must hold the store's lock
// before mutating its document table or snapshot folder.
package locking

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/jyoo0515/docuflow/internal/apperrors"
)

// KeyedLock hands out one weight-1 semaphore per key. Locks are coarse by
// design: one key covers a whole spreadsheet, not a single row, because
// snapshot generation touches folder state that is not row-scoped either.
type KeyedLock struct {
	mu   sync.Mutex
	sems map[string]*semaphore.Weighted
}

func NewKeyedLock() *KeyedLock {
	return &KeyedLock{sems: make(map[string]*semaphore.Weighted)}
}

func (l *KeyedLock) sem(key string) *semaphore.Weighted {
	l.mu.Lock()
	defer l.mu.Unlock()
	s, ok := l.sems[key]
	if !ok {
		s = semaphore.NewWeighted(1)
		l.sems[key] = s
	}
	return s
}

// Acquire blocks until the key's lock is held or the wait bound elapses.
// On success it returns a release function that must be called exactly once,
// normally via defer. On timeout it returns apperrors.ErrLockTimeout.
func (l *KeyedLock) Acquire(ctx context.Context, key string, wait time.Duration) (func(), error) {
	s := l.sem(key)

	acquireCtx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()

	if err := s.Acquire(acquireCtx, 1); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.ErrLockTimeout
		}
		return nil, err
	}

	var once sync.Once
	return func() {
		once.Do(func() { s.Release(1) })
	}, nil
}
