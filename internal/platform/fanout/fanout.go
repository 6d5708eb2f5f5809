// Package fanout runs a function over a slice of items on a bounded pool of
// goroutines and returns the outcomes in input order. The health registry
// uses it to probe every backend at once so that one slow dependency does
// not delay the others.
package fanout

import (
	"context"
	"sync"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for each item using at most limit worker goroutines; a
// non-positive limit starts one worker per item. results[i] always belongs
// to items[i].
//
// Items not yet picked up when ctx is done are not passed to fn; their
// result carries ctx.Err(). Calls already in progress run to completion.
// Run blocks until every item has a result.
func Run[T, R any](ctx context.Context, limit int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}
	if limit <= 0 || limit > len(items) {
		limit = len(items)
	}

	next := make(chan int)
	var wg sync.WaitGroup
	for range limit {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range next {
				if err := ctx.Err(); err != nil {
					results[idx] = Result[R]{Err: err}
					continue
				}
				val, err := fn(ctx, items[idx])
				results[idx] = Result[R]{Value: val, Err: err}
			}
		}()
	}

	for i := range items {
		next <- i
	}
	close(next)

	wg.Wait()
	return results
}
