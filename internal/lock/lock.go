// Package lock serializes bookings per slot key. The Redis implementation
// spans every API replica; the local one is enough for a single process.
package lock

import (
	"context"
	"errors"
)

var ErrLockNotAcquired = errors.New("slot lock not acquired")

type Locker interface {
	// WithLock runs fn while holding key. It does not wait: if another holder
	// owns key it returns ErrLockNotAcquired without calling fn.
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}
