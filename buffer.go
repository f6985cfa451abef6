package sluice

// Buffer introduces an asynchronous boundary: the input stream is driven on a
// separate goroutine and up to size items are held in a buffer between it and
// the caller. This prevents a slow consumer from stalling the producer until
// the buffer fills up, at which point back pressure is applied.
func Buffer[A any](in Stream[A], size int) Stream[A] {
	if size < 0 {
		size = 0
	}

	return func(emit func(A) bool) error {
		ch := make(chan A, size)
		stop := make(chan struct{})
		done := make(chan struct{})

		var driveErr error
		go func() {
			defer close(done)
			defer close(ch)
			driveErr = in(func(a A) bool {
				select {
				case ch <- a:
					return true
				case <-stop:
					return false
				}
			})
		}()

		stopped := false
		for a := range ch {
			if !stopped && !emit(a) {
				stopped = true
				close(stop)
			}
		}
		<-done

		if stopped {
			return nil
		}
		return driveErr
	}
}
