// Package ringbuffer provides a fixed-capacity FIFO ring.
package ringbuffer

// Buffer is a FIFO queue over a fixed backing array.
// The capacity is set once at construction and never changes:
// writes to a full buffer are rejected rather than grown.
type Buffer[T any] struct {
	data         []T
	offset, size int
}

func New[T any](capacity int) *Buffer[T] {
	return &Buffer[T]{data: make([]T, capacity)}
}

func (b *Buffer[T]) Cap() int {
	return len(b.data)
}

func (b *Buffer[T]) Len() int {
	return b.size
}

func (b *Buffer[T]) Full() bool {
	return b.size == len(b.data)
}

// write to end
func (b *Buffer[T]) Write(v T) bool {
	if b.size == len(b.data) {
		return false
	}

	pos := (b.offset + b.size) % len(b.data)
	b.data[pos] = v
	b.size++
	return true
}

// read from start
func (b *Buffer[T]) Read() (T, bool) {
	if b.size == 0 {
		var zero T
		return zero, false
	}

	v := b.data[b.offset]
	b.discard()
	return v, true
}

func (b *Buffer[T]) discard() {
	var zero T
	b.data[b.offset] = zero // let GC do its work

	b.offset = (b.offset + 1) % len(b.data)
	b.size--
}

func (b *Buffer[T]) Reset() {
	var zero T
	for i := 0; i < b.size; i++ {
		b.data[(b.offset+i)%len(b.data)] = zero
	}
	b.offset = 0
	b.size = 0
}
