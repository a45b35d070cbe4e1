package lock

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestLocalLocker_RejectsConcurrentHolder(t *testing.T) {
	l := NewLocalLocker()
	ctx := context.Background()

	err := l.WithLock(ctx, "slot:b1:2025-06-01:10:00", func(ctx context.Context) error {
		inner := l.WithLock(ctx, "slot:b1:2025-06-01:10:00", func(context.Context) error {
			t.Fatal("inner fn must not run while the key is held")
			return nil
		})
		if !errors.Is(inner, ErrLockNotAcquired) {
			t.Fatalf("expected ErrLockNotAcquired, got %v", inner)
		}

		// outra chave segue livre
		return l.WithLock(ctx, "slot:b1:2025-06-01:10:30", func(context.Context) error { return nil })
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Held("slot:b1:2025-06-01:10:00") {
		t.Fatal("expected key to be released")
	}
}

func TestLocalLocker_PropagatesError(t *testing.T) {
	l := NewLocalLocker()
	boom := errors.New("boom")

	err := l.WithLock(context.Background(), "k", func(context.Context) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error, got %v", err)
	}
	if l.Held("k") {
		t.Fatal("expected key to be released after error")
	}
}

func TestLocalLocker_CancelledContext(t *testing.T) {
	l := NewLocalLocker()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := l.WithLock(ctx, "k", func(context.Context) error { return nil }); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestLocalLocker_MutualExclusion(t *testing.T) {
	l := NewLocalLocker()

	var (
		inside  int32
		maxSeen int32
		wg      sync.WaitGroup
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = l.WithLock(context.Background(), "k", func(context.Context) error {
				n := atomic.AddInt32(&inside, 1)
				if n > atomic.LoadInt32(&maxSeen) {
					atomic.StoreInt32(&maxSeen, n)
				}
				atomic.AddInt32(&inside, -1)
				return nil
			})
		}()
	}
	wg.Wait()

	if maxSeen > 1 {
		t.Fatalf("expected at most one holder at a time, saw %d", maxSeen)
	}
}
