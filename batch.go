package sluice

// Batch groups items of the input stream into slices of the given size.
//
// A batch is emitted when it reaches the maximum size or when the input stream
// ends. This function never emits empty batches. Emitted slices are owned by
// the downstream and are never reused.
//
// There is no timeout variant: streams are driven synchronously on a single
// goroutine, so a partial batch can never be left waiting for more items.
func Batch[A any](in Stream[A], size int) Stream[[]A] {
	if size < 1 {
		size = 1
	}

	return func(emit func([]A) bool) error {
		batch := make([]A, 0, size)
		stopped := false

		err := in(func(a A) bool {
			batch = append(batch, a)
			if len(batch) < size {
				return true
			}
			if !emit(batch) {
				stopped = true
				return false
			}
			batch = make([]A, 0, size)
			return true
		})
		if err != nil {
			return err
		}

		if !stopped && len(batch) > 0 {
			emit(batch)
		}
		return nil
	}
}

// Unbatch is the inverse of [Batch]. It takes a stream of slices and returns
// a stream of individual items.
func Unbatch[A any](in Stream[[]A]) Stream[A] {
	return func(emit func(A) bool) error {
		return in(func(batch []A) bool {
			for _, a := range batch {
				if !emit(a) {
					return false
				}
			}
			return true
		})
	}
}
