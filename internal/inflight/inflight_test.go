package inflight_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhushansable/Gurukrupa-Mess/internal/inflight"
)

func TestDuplicateCallsShareOneExecution(t *testing.T) {
	g := inflight.New()
	var calls atomic.Int32
	release := make(chan struct{})
	started := make(chan struct{})

	first := make(chan any, 1)
	go func() {
		v, shared, err := g.Do("checkout", func() (any, error) {
			calls.Add(1)
			close(started)
			<-release
			return "order-1", nil
		})
		assert.NoError(t, err)
		assert.False(t, shared)
		first <- v
	}()

	<-started
	assert.True(t, g.InFlight("checkout"))

	var wg sync.WaitGroup
	results := make(chan bool, 1)
	wg.Add(1)
	go func() {
		defer wg.Done()
		v, shared, err := g.Do("checkout", func() (any, error) {
			calls.Add(1)
			return "order-2", nil
		})
		assert.NoError(t, err)
		assert.Equal(t, "order-1", v)
		results <- shared
	}()

	// Give the duplicate a moment to join the running call.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, "order-1", <-first)
	assert.True(t, <-results)
	assert.Equal(t, int32(1), calls.Load())
	assert.False(t, g.InFlight("checkout"))
}

func TestDifferentKeysRunIndependently(t *testing.T) {
	g := inflight.New()

	a, _, err := g.Do("status:a", func() (any, error) { return 1, nil })
	require.NoError(t, err)
	b, _, err := g.Do("status:b", func() (any, error) { return 2, nil })
	require.NoError(t, err)
	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
}

func TestSequentialCallsRunAgain(t *testing.T) {
	g := inflight.New()
	var calls int
	for i := 0; i < 3; i++ {
		_, shared, err := g.Do("k", func() (any, error) {
			calls++
			return nil, nil
		})
		require.NoError(t, err)
		assert.False(t, shared)
	}
	assert.Equal(t, 3, calls)
}

func TestErrorIsReturned(t *testing.T) {
	g := inflight.New()
	boom := errors.New("boom")
	_, _, err := g.Do("k", func() (any, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, g.InFlight("k"))
}
