// Package workerpool runs a bounded set of goroutines over a slice of work
// items and collects their results.
package workerpool

import (
	"context"
	"sync"
	"sync/atomic"
)

// Map processes every item with up to workerCount goroutines and returns the
// results in input order. The first error cancels the remaining work and is
// returned alone; partial results are discarded.
func Map[T, R any](ctx context.Context, workerCount int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	if len(items) == 0 {
		return nil, ctx.Err()
	}
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > len(items) {
		workerCount = len(items)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		next     atomic.Int64
		errOnce  sync.Once
		firstErr error
	)
	results := make([]R, len(items))

	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				idx := int(next.Add(1)) - 1
				if idx >= len(items) {
					return
				}
				if ctx.Err() != nil {
					return
				}
				res, err := fn(ctx, items[idx])
				if err != nil {
					errOnce.Do(func() {
						firstErr = err
						cancel()
					})
					return
				}
				results[idx] = res
			}
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
