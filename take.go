package sluice

// Take passes through the first n items of the input stream, then stops it.
// If n is not positive, the upstream is never driven.
func Take[A any](in Stream[A], n int) Stream[A] {
	return func(emit func(A) bool) error {
		if n <= 0 {
			return nil
		}
		taken := 0
		return in(func(a A) bool {
			if !emit(a) {
				return false
			}
			taken++
			return taken < n
		})
	}
}

// Drop discards the first n items of the input stream and passes through the rest.
func Drop[A any](in Stream[A], n int) Stream[A] {
	return func(emit func(A) bool) error {
		dropped := 0
		return in(func(a A) bool {
			if dropped < n {
				dropped++
				return true
			}
			return emit(a)
		})
	}
}

// TakeWhile passes items through while the condition f holds, then stops the
// stream at the first item that does not satisfy it.
// If the function f fails, the stream stops and fails with the same error.
func TakeWhile[A any](in Stream[A], f func(A) (bool, error)) Stream[A] {
	return func(emit func(A) bool) error {
		var fErr error
		err := in(func(a A) bool {
			ok, err := f(a)
			if err != nil {
				fErr = err
				return false
			}
			if !ok {
				return false
			}
			return emit(a)
		})
		if fErr != nil {
			return fErr
		}
		return err
	}
}

// DropWhile discards items while the condition f holds, then passes through
// everything starting from the first item that does not satisfy it.
// If the function f fails, the stream stops and fails with the same error.
func DropWhile[A any](in Stream[A], f func(A) (bool, error)) Stream[A] {
	return func(emit func(A) bool) error {
		var fErr error
		dropping := true
		err := in(func(a A) bool {
			if dropping {
				ok, err := f(a)
				if err != nil {
					fErr = err
					return false
				}
				if ok {
					return true
				}
				dropping = false
			}
			return emit(a)
		})
		if fErr != nil {
			return fErr
		}
		return err
	}
}
