package sluice

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"

	"github.com/weirlab/sluice/internal/th"
)

func TestJoinCorrectness(t *testing.T) {
	expected, _ := ToSlice(Map(Filter(Range(0, 1000), func(x int) (bool, error) {
		return x%2 == 0, nil
	}), func(x int) (int, error) {
		return x + 1, nil
	}))

	for _, workers := range []int{1, 2, 3, 4, 5, 6, 7, 8} {
		t.Run(th.Name("workers", workers), func(t *testing.T) {
			job := Fork(Range(0, 1000))
			job = ParFilter(job, func(x int) (bool, error) {
				return x%2 == 0, nil
			})
			mapped := ParMap(job, func(x int) (int, error) {
				return x + 1, nil
			})

			out, err := ToSlice(Join(mapped, workers))
			th.ExpectNoError(t, err)

			th.Sort(out)
			th.ExpectSlice(t, out, expected)
		})
	}
}

func TestJoinWorkerCount(t *testing.T) {
	for _, workers := range []int{0, -1} {
		t.Run(th.Name("workers", workers), func(t *testing.T) {
			produced := 0
			job := ParMap(Fork(counting(Range(0, 100), &produced)), func(x int) (int, error) {
				return x, nil
			})

			_, err := ToSlice(Join(job, workers))
			assert.IsError(t, err, ErrWorkerCount)
			th.ExpectValue(t, produced, 0) // the upstream is never touched
		})
	}
}

func TestJoinSingleWorkerKeepsOrder(t *testing.T) {
	job := ParMap(Fork(Range(0, 1000)), func(x int) (int, error) {
		return x * 10, nil
	})

	out, err := ToSlice(Join(job, 1))
	th.ExpectNoError(t, err)

	expected, _ := ToSlice(Map(Range(0, 1000), func(x int) (int, error) {
		return x * 10, nil
	}))
	th.ExpectSlice(t, out, expected)
}

func TestJoinUnordered(t *testing.T) {
	out, err := ToSlice(Join(Fork(Range(0, 10000)), 8))
	th.ExpectNoError(t, err)

	th.ExpectUnsorted(t, out)
	th.Sort(out)
	expected, _ := ToSlice(Range(0, 10000))
	th.ExpectSlice(t, out, expected)
}

func TestJoinEarlyStop(t *testing.T) {
	const workers = 8

	th.ExpectNotHang(t, 10*time.Second, func() {
		produced := 0
		job := Fork(counting(Range(0, 10000), &produced))

		out, err := ToSlice(Take(Join(job, workers), 10))
		th.ExpectNoError(t, err)
		th.ExpectValue(t, len(out), 10)

		// The job may run slightly ahead of the consumer, but only by what
		// fits into its internal buffers.
		if produced > 10+20*workers {
			t.Errorf("produced %v items, expected at most %v", produced, 10+20*workers)
		}
	})
}

func TestJoinStageError(t *testing.T) {
	errStage := errors.New("stage failed")

	t.Run("map", func(t *testing.T) {
		th.ExpectNotHang(t, 10*time.Second, func() {
			job := ParMap(Fork(Range(0, 1000)), func(x int) (int, error) {
				if x == 500 {
					return 0, errStage
				}
				return x*2 + 1, nil
			})

			out, err := ToSlice(Join(job, 4))
			th.ExpectValue(t, errors.Is(err, errStage), true)

			// Results computed before the failure may have been delivered,
			// buffered ones are discarded.
			th.ExpectValue(t, len(out) < 1000, true)
			for _, x := range out {
				th.ExpectValue(t, x%2, 1)
			}
		})
	})

	t.Run("filter", func(t *testing.T) {
		th.ExpectNotHang(t, 10*time.Second, func() {
			job := ParFilter(Fork(Range(0, 1000)), func(x int) (bool, error) {
				if x == 500 {
					return false, errStage
				}
				return true, nil
			})

			_, err := ToSlice(Join(job, 4))
			th.ExpectValue(t, errors.Is(err, errStage), true)
		})
	})
}

func TestJoinUpstreamError(t *testing.T) {
	errUp := errors.New("upstream failed")

	th.ExpectNotHang(t, 10*time.Second, func() {
		job := ParMap(Fork(failOn(Range(0, 1000), 500, errUp)), func(x int) (int, error) {
			return x, nil
		})

		_, err := ToSlice(Join(job, 4))
		th.ExpectValue(t, errors.Is(err, errUp), true)
	})
}

func TestJoinMultiStage(t *testing.T) {
	job := ParFilter(Fork(Range(0, 100)), func(x int) (bool, error) {
		return x%10 == 0, nil
	})
	scaled := ParMap(job, func(x int) (int, error) {
		return x / 10, nil
	})
	named := ParMap(scaled, func(x int) (string, error) {
		return fmt.Sprintf("item-%v", x), nil
	})

	out, err := ToSlice(Join(named, 4))
	th.ExpectNoError(t, err)

	th.Sort(out)
	th.ExpectSlice(t, out, []string{
		"item-0", "item-1", "item-2", "item-3", "item-4",
		"item-5", "item-6", "item-7", "item-8", "item-9",
	})
}

func TestJoinDescriptorReuse(t *testing.T) {
	job := ParMap(Fork(Range(0, 100)), func(x int) (int, error) {
		return x + 1, nil
	})

	expected, _ := ToSlice(Range(1, 101))

	for _, workers := range []int{2, 4} {
		out, err := ToSlice(Join(job, workers))
		th.ExpectNoError(t, err)

		th.Sort(out)
		th.ExpectSlice(t, out, expected)
	}
}

func TestJoinLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	job := ParMap(Fork(Range(0, 100)), func(x int) (int, error) {
		return x, nil
	})

	err := Drain(Join(job, 2, WithLogger(logger), WithName("test-job")))
	th.ExpectNoError(t, err)

	logs := buf.String()
	for _, want := range []string{"parallel run started", "parallel run completed", "job=test-job", "workers=2"} {
		if !strings.Contains(logs, want) {
			t.Errorf("expected log output to contain %q, got:\n%s", want, logs)
		}
	}
}

func TestJoinDeterministicResults(t *testing.T) {
	var first []int

	for i := 0; i < 5; i++ {
		job := ParFilter(Fork(Range(0, 1000)), func(x int) (bool, error) {
			return x%3 == 0, nil
		})
		doubled := ParMap(job, func(x int) (int, error) {
			return x * 2, nil
		})

		out, err := ToSlice(Join(doubled, 4))
		th.ExpectNoError(t, err)
		th.Sort(out)

		if first == nil {
			first = out
			continue
		}
		th.ExpectSlice(t, out, first)
	}
}
