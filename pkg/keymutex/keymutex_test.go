package keymutex

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockSerializesSameKey(t *testing.T) {
	m := New()
	ctx := context.Background()

	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := m.Lock(ctx, "slot:05/06")
			if !assert.NoError(t, err) {
				return
			}
			defer release()

			n := atomic.AddInt32(&inside, 1)
			for {
				cur := atomic.LoadInt32(&maxInside)
				if n <= cur || atomic.CompareAndSwapInt32(&maxInside, cur, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInside)
	assert.Equal(t, 0, m.Len(), "entries must be released after use")
}

func TestLockDifferentKeysDoNotBlock(t *testing.T) {
	m := New()
	ctx := context.Background()

	releaseA, err := m.Lock(ctx, "a")
	require.NoError(t, err)
	defer releaseA()

	done := make(chan struct{})
	go func() {
		releaseB, err := m.Lock(ctx, "b")
		if err == nil {
			releaseB()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different key should not block")
	}
}

func TestLockHonoursContext(t *testing.T) {
	m := New()

	release, err := m.Lock(context.Background(), "k")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = m.Lock(ctx, "k")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	release()
	assert.Equal(t, 0, m.Len(), "a cancelled waiter must not leak its entry")
}

func TestReleaseIsIdempotent(t *testing.T) {
	m := New()
	release, err := m.Lock(context.Background(), "k")
	require.NoError(t, err)
	release()
	release()

	release2, err := m.Lock(context.Background(), "k")
	require.NoError(t, err)
	release2()
	assert.Equal(t, 0, m.Len())
}

func TestLockAllReleasesPartialOnFailure(t *testing.T) {
	m := New()
	held, err := m.Lock(context.Background(), "b")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = m.LockAll(ctx, "a", "b")
	require.Error(t, err)

	// "a" must have been released again.
	releaseA, err := m.Lock(context.Background(), "a")
	require.NoError(t, err)
	releaseA()
	held()
	assert.Equal(t, 0, m.Len())
}

func TestLockAllDeduplicatesKeys(t *testing.T) {
	m := New()
	release, err := m.LockAll(context.Background(), "b", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())
	release()
	assert.Equal(t, 0, m.Len())
}
