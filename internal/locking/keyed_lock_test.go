package locking_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyoo0515/docuflow/internal/apperrors"
	"github.com/jyoo0515/docuflow/internal/locking"
)

func TestAcquire_SameKeyBlocks(t *testing.T) {
	lock := locking.NewKeyedLock()
	ctx := context.Background()

	release, err := lock.Acquire(ctx, "store-a", time.Second)
	require.NoError(t, err)

	_, err = lock.Acquire(ctx, "store-a", 50*time.Millisecond)
	assert.ErrorIs(t, err, apperrors.ErrLockTimeout)

	release()

	release2, err := lock.Acquire(ctx, "store-a", time.Second)
	require.NoError(t, err)
	release2()
}

func TestAcquire_DifferentKeysDoNotContend(t *testing.T) {
	lock := locking.NewKeyedLock()
	ctx := context.Background()

	releaseA, err := lock.Acquire(ctx, "store-a", time.Second)
	require.NoError(t, err)
	defer releaseA()

	releaseB, err := lock.Acquire(ctx, "store-b", 50*time.Millisecond)
	require.NoError(t, err)
	releaseB()
}

func TestAcquire_ReleaseIsIdempotent(t *testing.T) {
	lock := locking.NewKeyedLock()
	ctx := context.Background()

	release, err := lock.Acquire(ctx, "store-a", time.Second)
	require.NoError(t, err)

	release()
	release() // second call must not release someone else's hold

	release2, err := lock.Acquire(ctx, "store-a", time.Second)
	require.NoError(t, err)
	defer release2()

	_, err = lock.Acquire(ctx, "store-a", 50*time.Millisecond)
	assert.ErrorIs(t, err, apperrors.ErrLockTimeout)
}

func TestAcquire_SerializesWorkers(t *testing.T) {
	lock := locking.NewKeyedLock()
	ctx := context.Background()

	var mu sync.Mutex
	inCritical := 0
	maxInCritical := 0

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := lock.Acquire(ctx, "store-a", 5*time.Second)
			require.NoError(t, err)
			defer release()

			mu.Lock()
			inCritical++
			if inCritical > maxInCritical {
				maxInCritical = inCritical
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inCritical--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxInCritical)
}
