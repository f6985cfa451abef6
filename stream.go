package sluice

// Stream is a push-based sequence of items.
//
// Driving a stream means calling it with an emit callback. The stream produces
// items one at a time, on the caller's goroutine, by invoking emit once per item.
// Emit returns false to request an early stop; after that the stream must not
// call emit again. The stream returns once production is over: nil when the
// sequence ended or was stopped cooperatively, or an error when production
// itself failed.
//
// A stream is single-use. Most streams in this package can technically be
// driven multiple times, but sources backed by external resources (channels,
// iterators, message subscriptions) can not, so callers should not rely on it.
type Stream[A any] func(emit func(A) bool) error
