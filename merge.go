package sluice

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

// Merge performs a fan-in operation on the list of input streams, returning a
// single output stream.
//
// All inputs are driven concurrently, one goroutine each, and their items are
// interleaved in arrival order. The merged stream ends when all inputs end,
// and fails with the first error any of them returns. Stopping the merged
// stream early stops all inputs.
func Merge[A any](ins ...Stream[A]) Stream[A] {
	if len(ins) == 1 {
		return ins[0]
	}

	return func(emit func(A) bool) error {
		var mu sync.Mutex
		stopped := false

		var g errgroup.Group
		for _, in := range ins {
			g.Go(func() error {
				err := in(func(a A) bool {
					mu.Lock()
					defer mu.Unlock()
					if stopped {
						return false
					}
					if !emit(a) {
						stopped = true
						return false
					}
					return true
				})

				if err != nil {
					mu.Lock()
					stopped = true
					mu.Unlock()
				}
				return err
			})
		}

		return g.Wait()
	}
}

// Concat concatenates the input streams, driving them one after another.
// The output stream ends when the last input ends, and fails at the first
// input that fails, without driving the remaining ones.
func Concat[A any](ins ...Stream[A]) Stream[A] {
	return func(emit func(A) bool) error {
		stopped := false
		for _, in := range ins {
			err := in(func(a A) bool {
				if !emit(a) {
					stopped = true
					return false
				}
				return true
			})
			if err != nil {
				return err
			}
			if stopped {
				return nil
			}
		}
		return nil
	}
}
