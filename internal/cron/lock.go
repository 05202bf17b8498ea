package cron

import (
	"context"
	"sync"
)

// Lock coordinates exclusive scheduler cycles. The quote store lives in
// process memory, so a single-process try-lock is enough here; a
// multi-instance deployment would need a shared lock instead.
type Lock interface {
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}

// LocalLock implements Lock with an in-process mutex.
type LocalLock struct {
	mu sync.Mutex
}

// NewLocalLock constructs an in-process lock.
func NewLocalLock() *LocalLock {
	return &LocalLock{}
}

// Acquire reports whether the lock was free and is now owned.
func (l *LocalLock) Acquire(ctx context.Context) (bool, error) {
	return l.mu.TryLock(), nil
}

// Release frees the lock.
func (l *LocalLock) Release(ctx context.Context) error {
	l.mu.Unlock()
	return nil
}
