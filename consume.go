package sluice

// ForEach applies a function f to each item of the stream.
//
// This is a blocking function that drives the stream until it ends, the
// function f fails, or the stream itself fails. The first error encountered is
// returned.
func ForEach[A any](in Stream[A], f func(A) error) error {
	var fErr error
	err := in(func(a A) bool {
		if err := f(a); err != nil {
			fErr = err
			return false
		}
		return true
	})
	if fErr != nil {
		return fErr
	}
	return err
}

// Drain consumes and discards all items of the stream, blocking until it
// ends. It returns the stream's error, if any.
func Drain[A any](in Stream[A]) error {
	return in(func(A) bool { return true })
}

// ToSlice collects all items of the stream into a slice.
// If the stream fails, the items collected so far are returned along with the error.
//
// This is a blocking function that drives the stream to the end.
func ToSlice[A any](in Stream[A]) ([]A, error) {
	var res []A
	err := in(func(a A) bool {
		res = append(res, a)
		return true
	})
	return res, err
}

// First returns the first item of the stream, stopping it right after.
// The found flag is false if the stream ended without yielding anything.
func First[A any](in Stream[A]) (value A, found bool, err error) {
	err = in(func(a A) bool {
		value = a
		found = true
		return false
	})
	if found {
		return value, true, nil
	}
	var zero A
	return zero, false, err
}

// Count consumes the stream and returns the number of items it yielded.
//
// This is a blocking function that drives the stream to the end.
func Count[A any](in Stream[A]) (int, error) {
	n := 0
	err := in(func(A) bool {
		n++
		return true
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}
