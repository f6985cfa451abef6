package sluice

// Map applies a transformation function to each item of the input stream.
// If the function f fails, the stream stops and fails with the same error.
func Map[A, B any](in Stream[A], f func(A) (B, error)) Stream[B] {
	return func(emit func(B) bool) error {
		var fErr error
		err := in(func(a A) bool {
			b, err := f(a)
			if err != nil {
				fErr = err
				return false
			}
			return emit(b)
		})
		if fErr != nil {
			return fErr
		}
		return err
	}
}

// Filter removes items that do not meet a specified condition.
// If the function f fails, the stream stops and fails with the same error.
func Filter[A any](in Stream[A], f func(A) (bool, error)) Stream[A] {
	return func(emit func(A) bool) error {
		var fErr error
		err := in(func(a A) bool {
			keep, err := f(a)
			if err != nil {
				fErr = err
				return false
			}
			if !keep {
				return true
			}
			return emit(a)
		})
		if fErr != nil {
			return fErr
		}
		return err
	}
}

// FlatMap applies a function to each item of the input stream, where the
// function returns a stream of items. These items are then flattened into a
// single output stream, preserving the order of the inner streams.
func FlatMap[A, B any](in Stream[A], f func(A) Stream[B]) Stream[B] {
	return func(emit func(B) bool) error {
		var innerErr error
		err := in(func(a A) bool {
			stopped := false
			err := f(a)(func(b B) bool {
				if !emit(b) {
					stopped = true
					return false
				}
				return true
			})
			if err != nil {
				innerErr = err
				return false
			}
			return !stopped
		})
		if innerErr != nil {
			return innerErr
		}
		return err
	}
}

// Tap calls a function for each item of the input stream, passing items
// through unchanged. If the function f fails, the stream stops and fails with
// the same error.
func Tap[A any](in Stream[A], f func(A) error) Stream[A] {
	return func(emit func(A) bool) error {
		var fErr error
		err := in(func(a A) bool {
			if err := f(a); err != nil {
				fErr = err
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

// Distinct removes duplicate items from the stream, keeping the first
// occurrence of each. All distinct items seen so far are kept in memory.
func Distinct[A comparable](in Stream[A]) Stream[A] {
	return DistinctBy(in, func(a A) A { return a })
}

// DistinctBy removes items with duplicate keys from the stream, keeping the
// first item for each key. All distinct keys seen so far are kept in memory.
func DistinctBy[A any, K comparable](in Stream[A], key func(A) K) Stream[A] {
	return func(emit func(A) bool) error {
		seen := make(map[K]struct{})
		return in(func(a A) bool {
			k := key(a)
			if _, ok := seen[k]; ok {
				return true
			}
			seen[k] = struct{}{}
			return emit(a)
		})
	}
}
