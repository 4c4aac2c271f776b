package async_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/recordkit/pkg/async"
)

func TestAsync(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	futureString := async.Async(ctx, 42, func(ctx context.Context, num int) (string, error) {
		time.Sleep(20 * time.Millisecond)
		return fmt.Sprintf("Number: %d", num), nil
	})
	futureErr := async.Async(ctx, "x", func(ctx context.Context, s string) (int, error) {
		return 0, errors.New("failed " + s)
	})

	s, err := futureString.Await()
	require.NoError(t, err)
	assert.Equal(t, "Number: 42", s)

	_, err = futureErr.Await()
	assert.EqualError(t, err, "failed x")
}

func TestAsyncCanceledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var called atomic.Bool
	f := async.Async(ctx, 1, func(ctx context.Context, n int) (int, error) {
		called.Store(true)
		return n, nil
	})

	_, err := f.Await()
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called.Load())
}

func TestMapPreservesOrder(t *testing.T) {
	t.Parallel()

	items := []int{5, 1, 4, 2, 3, 0, 6}
	results := async.Map(context.Background(), items, 3, func(_ context.Context, i int, n int) (string, error) {
		// later items finish first within a window
		time.Sleep(time.Duration(10-n) * time.Millisecond)
		return fmt.Sprintf("%d:%d", i, n), nil
	})

	require.Len(t, results, len(items))
	for i, n := range items {
		require.NoError(t, results[i].Err)
		assert.Equal(t, fmt.Sprintf("%d:%d", i, n), results[i].Value)
	}
}

func TestMapBoundsConcurrency(t *testing.T) {
	t.Parallel()

	var inFlight, peak atomic.Int32
	items := make([]int, 20)
	async.Map(context.Background(), items, 4, func(_ context.Context, _ int, _ int) (struct{}, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return struct{}{}, nil
	})

	assert.LessOrEqual(t, peak.Load(), int32(4))
}

func TestMapEdgeCases(t *testing.T) {
	t.Parallel()

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		results := async.Map(context.Background(), []int(nil), 2, func(context.Context, int, int) (int, error) {
			return 0, nil
		})
		assert.Empty(t, results)
	})

	t.Run("limit below one runs sequentially", func(t *testing.T) {
		t.Parallel()
		results := async.Map(context.Background(), []int{1, 2}, 0, func(_ context.Context, _ int, n int) (int, error) {
			return n * 10, nil
		})
		require.Len(t, results, 2)
		assert.Equal(t, 10, results[0].Value)
		assert.Equal(t, 20, results[1].Value)
	})

	t.Run("canceled context fails every item", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		results := async.Map(ctx, []int{1, 2, 3}, 2, func(_ context.Context, _ int, n int) (int, error) {
			return n, nil
		})
		require.Len(t, results, 3)
		for _, r := range results {
			assert.ErrorIs(t, r.Err, context.Canceled)
		}
	})
}
