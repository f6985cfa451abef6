package sluice

// failOn wraps a stream to fail with err right before yielding the given value.
func failOn[A comparable](in Stream[A], value A, err error) Stream[A] {
	return func(emit func(A) bool) error {
		var fErr error
		drvErr := in(func(a A) bool {
			if a == value {
				fErr = err
				return false
			}
			return emit(a)
		})
		if fErr != nil {
			return fErr
		}
		return drvErr
	}
}

// counting wraps a stream to count how many items it yields.
func counting[A any](in Stream[A], n *int) Stream[A] {
	return func(emit func(A) bool) error {
		return in(func(a A) bool {
			*n++
			return emit(a)
		})
	}
}
