package async

import (
	"context"
	"sync"
)

// Future represents the result of an asynchronous computation.
type Future[U any] struct {
	result U
	err    error
	once   sync.Once
	done   chan struct{}
}

// Await waits for the asynchronous function to complete and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// Async executes a function asynchronously and returns a Future.
// The function accepts a context.Context and a parameter of any type T, and returns (U, error).
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		// Early exit prevents goroutine leak when context is pre-canceled
		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		res, err := fn(ctx, param)

		f.once.Do(func() {
			f.result = res
			f.err = err
		})
	}()

	return f
}

// Result pairs a value produced by Map with its error.
type Result[U any] struct {
	Value U
	Err   error
}

type indexed[T any] struct {
	index int
	item  T
}

// Map calls fn for every item with at most limit calls in flight and returns
// the results aligned with items. A limit below 1 is treated as 1.
func Map[T any, U any](ctx context.Context, items []T, limit int, fn func(context.Context, int, T) (U, error)) []Result[U] {
	if limit < 1 {
		limit = 1
	}

	call := func(ctx context.Context, in indexed[T]) (U, error) {
		return fn(ctx, in.index, in.item)
	}

	results := make([]Result[U], len(items))
	for start := 0; start < len(items); start += limit {
		end := min(start+limit, len(items))

		futures := make([]*Future[U], 0, end-start)
		for i := start; i < end; i++ {
			futures = append(futures, Async(ctx, indexed[T]{index: i, item: items[i]}, call))
		}
		for j, f := range futures {
			v, err := f.Await()
			results[start+j] = Result[U]{Value: v, Err: err}
		}
	}
	return results
}
