// Package topk retains the k best items of a sequence using a bounded heap.
package topk

// Heap holds at most k items, keeping the best ones seen so far according to
// a ranking function. Core heap operations (up/down) follow standard textbook
// algorithms, arranged so that the worst retained item sits at the root and
// is the first to be evicted.
type Heap[T any] struct {
	k    int
	less func(item1, item2 T) bool // reports whether item1 ranks before item2
	data []T
}

func New[T any](k int, less func(item1, item2 T) bool) *Heap[T] {
	return &Heap[T]{
		k:    k,
		less: less,
		data: make([]T, 0, k),
	}
}

func (h *Heap[T]) Len() int {
	return len(h.data)
}

// Offer considers a single item. It is retained when fewer than k items are
// held, or when it ranks before the current worst item, which is then evicted.
func (h *Heap[T]) Offer(item T) {
	if len(h.data) < h.k {
		h.data = append(h.data, item)
		h.up(len(h.data) - 1)
		return
	}

	if !h.less(item, h.data[0]) {
		return
	}

	h.data[0] = item
	h.down(0, len(h.data))
}

// Sorted removes and returns all retained items, best first.
func (h *Heap[T]) Sorted() []T {
	res := make([]T, len(h.data))
	for i := len(h.data) - 1; i >= 0; i-- {
		res[i] = h.pop()
	}
	return res
}

// worse reports whether data[i] ranks after data[j], i.e. belongs above it.
func (h *Heap[T]) worse(i, j int) bool {
	return h.less(h.data[j], h.data[i])
}

func (h *Heap[T]) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !h.worse(j, i) {
			break
		}

		h.swap(i, j)
		j = i
	}
}

func (h *Heap[T]) down(i0, n int) {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.worse(j2, j1) {
			j = j2 // = 2*i + 2  // right child
		}
		if !h.worse(j, i) {
			break
		}

		h.swap(i, j)
		i = j
	}
}

func (h *Heap[T]) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
}

func (h *Heap[T]) pop() T {
	n := len(h.data) - 1
	h.swap(0, n)
	h.down(0, n)

	var zero T
	res := h.data[n]
	h.data[n] = zero // for GC
	h.data = h.data[:n]
	return res
}
