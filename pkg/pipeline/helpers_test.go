package pipeline_test

import (
	"context"
	"testing"
)

func rootFromSlice[T any](t *testing.T, values []T) func(ctx context.Context, rootChan chan<- T) error {
	t.Helper()

	return func(ctx context.Context, rootChan chan<- T) error {
		for _, v := range values {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case rootChan <- v:
			}
		}

		return nil
	}
}

func sequence(total int) []int {
	res := make([]int, total)
	for i := range res {
		res[i] = i
	}

	return res
}
