package browser

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSession struct {
	resetErr error
	closed   atomic.Bool
	resets   atomic.Int32
}

func (f *fakeSession) Navigate(context.Context, string) error { return nil }
func (f *fakeSession) WaitFor(context.Context, string, time.Duration) error {
	return nil
}
func (f *fakeSession) CurrentMarkup(context.Context) (string, error) { return "", nil }
func (f *fakeSession) TypeAndSubmit(context.Context, string, string) error {
	return nil
}
func (f *fakeSession) Reset(context.Context) error {
	f.resets.Add(1)
	return f.resetErr
}
func (f *fakeSession) Close() { f.closed.Store(true) }

func newFakeFactory() (func() (Session, error), *[]*fakeSession) {
	var mu sync.Mutex
	created := []*fakeSession{}
	factory := func() (Session, error) {
		mu.Lock()
		defer mu.Unlock()
		s := &fakeSession{}
		created = append(created, s)
		return s, nil
	}
	return factory, &created
}

func TestPoolBoundsCheckouts(t *testing.T) {
	factory, _ := newFakeFactory()
	pool, err := NewPool(3, factory, zap.NewNop())
	require.NoError(t, err)
	defer pool.Drain()

	var checkedOut atomic.Int32
	var peak atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < 12; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s, err := pool.Acquire(context.Background())
			require.NoError(t, err)

			n := checkedOut.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			checkedOut.Add(-1)
			pool.Release(s)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, peak.Load(), int32(3), "more sessions checked out than the pool holds")
}

func TestPoolReleaseWakesWaiter(t *testing.T) {
	factory, _ := newFakeFactory()
	pool, err := NewPool(1, factory, zap.NewNop())
	require.NoError(t, err)
	defer pool.Drain()

	s, err := pool.Acquire(context.Background())
	require.NoError(t, err)

	acquired := make(chan Session)
	go func() {
		s2, err := pool.Acquire(context.Background())
		require.NoError(t, err)
		acquired <- s2
	}()

	select {
	case <-acquired:
		t.Fatal("acquire returned while the only session was checked out")
	case <-time.After(20 * time.Millisecond):
	}

	pool.Release(s)

	select {
	case s2 := <-acquired:
		pool.Release(s2)
	case <-time.After(time.Second):
		t.Fatal("release did not wake the waiting acquire")
	}
}

func TestPoolAcquireHonorsContext(t *testing.T) {
	factory, _ := newFakeFactory()
	pool, err := NewPool(1, factory, zap.NewNop())
	require.NoError(t, err)
	defer pool.Drain()

	s, err := pool.Acquire(context.Background())
	require.NoError(t, err)
	defer pool.Release(s)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = pool.Acquire(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPoolDiscardsSessionOnFailedReset(t *testing.T) {
	factory, created := newFakeFactory()
	pool, err := NewPool(1, factory, zap.NewNop())
	require.NoError(t, err)
	defer pool.Drain()

	s, err := pool.Acquire(context.Background())
	require.NoError(t, err)

	bad := s.(*fakeSession)
	bad.resetErr = errors.New("session corrupt")
	pool.Release(s)

	assert.True(t, bad.closed.Load(), "corrupt session must be closed, not pooled")

	// The refill keeps the pool serviceable.
	next, err := pool.Acquire(context.Background())
	require.NoError(t, err)
	assert.NotSame(t, bad, next)
	assert.Len(t, *created, 2)
	pool.Release(next)
}

func TestPoolConstructionFailureIsFatal(t *testing.T) {
	calls := 0
	factory := func() (Session, error) {
		calls++
		if calls == 2 {
			return nil, errors.New("no more browsers")
		}
		return &fakeSession{}, nil
	}

	_, err := NewPool(3, factory, zap.NewNop())
	assert.ErrorIs(t, err, ErrResourcePool)
}

func TestPoolDrainClosesEverything(t *testing.T) {
	factory, created := newFakeFactory()
	pool, err := NewPool(3, factory, zap.NewNop())
	require.NoError(t, err)

	pool.Drain()
	for _, s := range *created {
		assert.True(t, s.closed.Load())
	}
}
