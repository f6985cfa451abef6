package sluice

import (
	"iter"
)

// FromSeq converts an iterator into a stream.
// If err is not nil, the stream fails immediately, before yielding any values.
//
// Such function signature allows concise wrapping of functions that return an
// iterator and an error:
//
//	stream := sluice.FromSeq(someFunc())
func FromSeq[A any](seq iter.Seq[A], err error) Stream[A] {
	return func(emit func(A) bool) error {
		if err != nil {
			return err
		}
		if seq == nil {
			return nil
		}
		for a := range seq {
			if !emit(a) {
				return nil
			}
		}
		return nil
	}
}

// FromSeq2 converts a sequence of value-error pairs into a stream.
// The stream fails on the first pair carrying a non-nil error.
func FromSeq2[A any](seq iter.Seq2[A, error]) Stream[A] {
	return func(emit func(A) bool) error {
		if seq == nil {
			return nil
		}
		for a, err := range seq {
			if err != nil {
				return err
			}
			if !emit(a) {
				return nil
			}
		}
		return nil
	}
}

// ToSeq2 converts a stream into a sequence of value-error pairs.
//
// All values are yielded with a nil error. If the stream fails, the failure is
// yielded as the final pair, with a zero value. This lets the client iterate
// with a for-range loop and decide when to stop.
func ToSeq2[A any](s Stream[A]) iter.Seq2[A, error] {
	return func(yield func(A, error) bool) {
		stopped := false
		err := s(func(a A) bool {
			if !yield(a, nil) {
				stopped = true
				return false
			}
			return true
		})
		if err != nil && !stopped {
			var zero A
			yield(zero, err)
		}
	}
}
