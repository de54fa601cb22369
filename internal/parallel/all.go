// Package parallel joins a fixed group of independent tasks.
package parallel

import "context"

type Task[T any] func(ctx context.Context) (T, error)

type outcome[T any] struct {
	index int
	value T
	err   error
}

// All starts every task at once and returns their results in task order.
// The first error observed is returned immediately; tasks still in flight are
// not cancelled, they run to completion and their results are dropped.
func All[T any](ctx context.Context, tasks ...Task[T]) ([]T, error) {
	results := make([]T, len(tasks))
	if len(tasks) == 0 {
		return results, nil
	}

	done := make(chan outcome[T], len(tasks))
	for i, task := range tasks {
		go func() {
			v, err := task(ctx)
			done <- outcome[T]{index: i, value: v, err: err}
		}()
	}

	for range tasks {
		select {
		case o := <-done:
			if o.err != nil {
				return nil, o.err
			}
			results[o.index] = o.value
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return results, nil
}
