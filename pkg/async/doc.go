// Package async provides generic helpers for running computations
// concurrently and collecting their results.
//
// Async starts a function in its own goroutine and returns a *Future that is
// completed with the function's result. Map fans a slice out over Async in
// bounded windows and returns the results in input order, which is what the
// batch processor needs to parallelise validation without reordering output.
//
// # Usage
//
//	results := async.Map(ctx, records, 4, func(ctx context.Context, i int, r Record) (Outcome, error) {
//	    return validate(r), nil
//	})
//	for i, res := range results {
//	    // results[i] belongs to records[i]
//	}
//
// # Error Handling
//
// If the context is cancelled before a goroutine starts its work, the Future
// completes with ctx.Err() and the callback is never invoked. Errors returned
// by the callback are passed through unchanged.
package async
