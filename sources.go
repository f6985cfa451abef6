package sluice

// FromSlice converts a slice into a stream.
// If err is not nil, the stream fails immediately, before yielding any values.
//
// Such function signature allows concise wrapping of functions that return a
// slice and an error:
//
//	stream := sluice.FromSlice(someFunc())
func FromSlice[A any](slice []A, err error) Stream[A] {
	return func(emit func(A) bool) error {
		if err != nil {
			return err
		}
		for _, a := range slice {
			if !emit(a) {
				return nil
			}
		}
		return nil
	}
}

// FromChan converts a channel into a stream that yields values until the
// channel is closed. A nil channel produces an empty stream.
// If err is not nil, the stream fails immediately, before reading from the channel.
//
// When the stream is stopped early, remaining items are drained in a background
// goroutine, so that writers blocked on the channel are allowed to complete.
func FromChan[A any](ch <-chan A, err error) Stream[A] {
	return func(emit func(A) bool) error {
		if err != nil {
			return err
		}
		if ch == nil {
			return nil
		}
		for a := range ch {
			if !emit(a) {
				go func() {
					for range ch {
					}
				}()
				return nil
			}
		}
		return nil
	}
}

// Range produces integers from start (inclusive) to stop (exclusive).
func Range(start, stop int) Stream[int] {
	return func(emit func(int) bool) error {
		for i := start; i < stop; i++ {
			if !emit(i) {
				return nil
			}
		}
		return nil
	}
}
