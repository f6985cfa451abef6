package sluice

import (
	"cmp"
	"sort"

	"github.com/weirlab/sluice/internal/topk"
)

// Sort buffers the entire input stream, then emits its items in ascending
// order. Nothing is emitted until the input stream ends; if it fails, the
// failure is propagated and no items are emitted.
func Sort[A cmp.Ordered](in Stream[A]) Stream[A] {
	return SortBy(in, func(a1, a2 A) bool { return a1 < a2 })
}

// SortBy buffers the entire input stream, then emits its items ordered by the
// less function. Nothing is emitted until the input stream ends; if it fails,
// the failure is propagated and no items are emitted.
func SortBy[A any](in Stream[A], less func(A, A) bool) Stream[A] {
	return func(emit func(A) bool) error {
		var items []A
		err := in(func(a A) bool {
			items = append(items, a)
			return true
		})
		if err != nil {
			return err
		}

		sort.SliceStable(items, func(i, j int) bool {
			return less(items[i], items[j])
		})

		for _, a := range items {
			if !emit(a) {
				return nil
			}
		}
		return nil
	}
}

// Top consumes the stream and returns its k best items according to the less
// function, where less(a1, a2) means a1 ranks before a2. The result is ordered
// best-first. At most k items are kept in memory.
// If k is not positive, the stream is never driven.
//
// This is a blocking function that drives the stream to the end.
func Top[A any](in Stream[A], k int, less func(A, A) bool) ([]A, error) {
	if k <= 0 {
		return nil, nil
	}

	h := topk.New(k, less)
	err := in(func(a A) bool {
		h.Offer(a)
		return true
	})
	if err != nil {
		return nil, err
	}

	return h.Sorted(), nil
}
