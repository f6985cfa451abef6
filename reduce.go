package sluice

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Fold combines all items of the stream into a single value, starting from
// init and applying the function f to the accumulator and each item in order.
//
// Fold blocks until one of the following conditions is met:
//   - The stream fails. Fold returns the error.
//   - The function f fails. Fold returns the error.
//   - The end of the stream is reached. Fold returns the accumulated value.
func Fold[A, B any](in Stream[A], init B, f func(B, A) (B, error)) (B, error) {
	acc := init
	var fErr error
	err := in(func(a A) bool {
		var err error
		acc, err = f(acc, a)
		if err != nil {
			fErr = err
			return false
		}
		return true
	})
	if fErr != nil {
		return acc, fErr
	}
	if err != nil {
		return acc, err
	}
	return acc, nil
}

// Reduce combines all items of the stream into a single value by applying a
// binary function f to pairs of items in order. The hasResult flag is false
// if the stream was empty.
func Reduce[A any](in Stream[A], f func(A, A) (A, error)) (result A, hasResult bool, err error) {
	var fErr error
	drvErr := in(func(a A) bool {
		if !hasResult {
			result = a
			hasResult = true
			return true
		}
		var err error
		result, err = f(result, a)
		if err != nil {
			fErr = err
			return false
		}
		return true
	})
	if fErr != nil {
		return result, hasResult, fErr
	}
	if drvErr != nil {
		return result, hasResult, drvErr
	}
	return result, hasResult, nil
}

// Sum consumes a stream of numbers and returns their sum.
func Sum[A constraints.Integer | constraints.Float](in Stream[A]) (A, error) {
	var sum A
	err := in(func(a A) bool {
		sum += a
		return true
	})
	if err != nil {
		var zero A
		return zero, err
	}
	return sum, nil
}

// Min consumes the stream and returns its smallest item.
// The found flag is false if the stream was empty.
func Min[A cmp.Ordered](in Stream[A]) (A, bool, error) {
	res, found, err := Reduce(in, func(a1, a2 A) (A, error) {
		return min(a1, a2), nil
	})
	return res, found, err
}

// Max consumes the stream and returns its largest item.
// The found flag is false if the stream was empty.
func Max[A cmp.Ordered](in Stream[A]) (A, bool, error) {
	res, found, err := Reduce(in, func(a1, a2 A) (A, error) {
		return max(a1, a2), nil
	})
	return res, found, err
}
