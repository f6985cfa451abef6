package sluice

// Any checks if there is an item in the stream that satisfies the condition f.
// It blocks until a matching item is found, the stream ends, or an error is
// encountered either in the stream or in the function f. On a match the
// stream is stopped early.
func Any[A any](in Stream[A], f func(A) (bool, error)) (bool, error) {
	found := false
	var fErr error

	err := in(func(a A) bool {
		ok, err := f(a)
		if err != nil {
			fErr = err
			return false
		}
		if ok {
			found = true
			return false
		}
		return true
	})

	if fErr != nil {
		return false, fErr
	}
	if found {
		return true, nil
	}
	return false, err
}

// All checks if all items of the stream satisfy the condition f.
// It blocks until a non-matching item is found, the stream ends, or an error
// is encountered either in the stream or in the function f. All returns true
// for an empty stream.
func All[A any](in Stream[A], f func(A) (bool, error)) (bool, error) {
	res, err := Any(in, func(a A) (bool, error) {
		ok, err := f(a)
		return !ok, err
	})
	return !res, err
}
