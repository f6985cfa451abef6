package sluice

import (
	"fmt"
	"testing"

	"github.com/weirlab/sluice/internal/th"
)

func TestBatch(t *testing.T) {
	t.Run("even batches", func(t *testing.T) {
		out, err := ToSlice(Batch(Range(0, 6), 2))
		th.ExpectNoError(t, err)
		th.ExpectSlice(t, out[0], []int{0, 1})
		th.ExpectSlice(t, out[1], []int{2, 3})
		th.ExpectSlice(t, out[2], []int{4, 5})
	})

	t.Run("partial last batch", func(t *testing.T) {
		out, err := ToSlice(Batch(Range(0, 5), 3))
		th.ExpectNoError(t, err)
		th.ExpectValue(t, len(out), 2)
		th.ExpectSlice(t, out[0], []int{0, 1, 2})
		th.ExpectSlice(t, out[1], []int{3, 4})
	})

	t.Run("empty stream", func(t *testing.T) {
		out, err := ToSlice(Batch(Range(0, 0), 3))
		th.ExpectNoError(t, err)
		th.ExpectValue(t, len(out), 0)
	})

	t.Run("batches are not reused", func(t *testing.T) {
		var first []int
		err := ForEach(Batch(Range(0, 6), 2), func(batch []int) error {
			if first == nil {
				first = batch
			}
			return nil
		})

		th.ExpectNoError(t, err)
		th.ExpectSlice(t, first, []int{0, 1})
	})

	t.Run("early stop", func(t *testing.T) {
		produced := 0
		out, err := ToSlice(Take(Batch(counting(Range(0, 100), &produced), 4), 2))

		th.ExpectNoError(t, err)
		th.ExpectValue(t, len(out), 2)
		th.ExpectValue(t, produced, 8) // no partial batch is flushed after a stop
	})

	t.Run("error from upstream", func(t *testing.T) {
		out, err := ToSlice(Batch(failOn(Range(0, 10), 5, fmt.Errorf("err005")), 2))
		th.ExpectError(t, err, "err005")
		th.ExpectValue(t, len(out), 2)
	})
}

func TestUnbatch(t *testing.T) {
	t.Run("correctness", func(t *testing.T) {
		in := FromSlice([][]int{{0, 1}, {2}, {}, {3, 4, 5}}, nil)
		out, err := ToSlice(Unbatch(in))

		th.ExpectNoError(t, err)
		th.ExpectSlice(t, out, []int{0, 1, 2, 3, 4, 5})
	})

	t.Run("early stop mid batch", func(t *testing.T) {
		produced := 0
		in := counting(FromSlice([][]int{{0, 1, 2}, {3, 4, 5}}, nil), &produced)
		out, err := ToSlice(Take(Unbatch(in), 2))

		th.ExpectNoError(t, err)
		th.ExpectSlice(t, out, []int{0, 1})
		th.ExpectValue(t, produced, 1)
	})

	t.Run("error from upstream", func(t *testing.T) {
		in := Map(FromSlice([][]int{{0, 1}, {2, 3}}, nil), func(batch []int) ([]int, error) {
			if batch[0] == 2 {
				return nil, fmt.Errorf("err002")
			}
			return batch, nil
		})

		out, err := ToSlice(Unbatch(in))
		th.ExpectError(t, err, "err002")
		th.ExpectSlice(t, out, []int{0, 1})
	})
}
