package sluice

import (
	"errors"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/weirlab/sluice/internal/core"
)

// ErrWorkerCount is returned when a parallel job is driven with a
// non-positive worker count.
var ErrWorkerCount = errors.New("number of workers must be positive")

// ParallelStream describes a not-yet-executed parallel job: an upstream
// stream paired with a chain of per-item transformations. It is purely
// descriptive and holds no runtime state. Attach stages with [ParMap] and
// [ParFilter], then execute with [Join].
type ParallelStream[In, Out any] struct {
	src   Stream[In]
	chain core.MakeChain[In, Out]
}

// Fork lifts a stream into a parallel job descriptor.
// Nothing runs until the job is joined and driven.
func Fork[A any](s Stream[A]) *ParallelStream[A, A] {
	return &ParallelStream[A, A]{
		src: s,
		chain: func(emit func(A) bool, fail func(error)) func(A) bool {
			return emit
		},
	}
}

// ParMap attaches a transformation stage to a parallel job, returning a new
// descriptor. During execution the function f is applied to items concurrently,
// by all workers of the job. If f fails, the whole job is aborted and the
// joined stream fails with the same error.
func ParMap[In, A, B any](p *ParallelStream[In, A], f func(A) (B, error)) *ParallelStream[In, B] {
	return &ParallelStream[In, B]{
		src: p.src,
		chain: func(emit func(B) bool, fail func(error)) func(In) bool {
			return p.chain(func(a A) bool {
				b, err := f(a)
				if err != nil {
					fail(err)
					return false
				}
				return emit(b)
			}, fail)
		},
	}
}

// ParFilter attaches a filtering stage to a parallel job, returning a new
// descriptor. During execution the condition f is applied to items
// concurrently, by all workers of the job. If f fails, the whole job is
// aborted and the joined stream fails with the same error.
func ParFilter[In, A any](p *ParallelStream[In, A], f func(A) (bool, error)) *ParallelStream[In, A] {
	return &ParallelStream[In, A]{
		src: p.src,
		chain: func(emit func(A) bool, fail func(error)) func(In) bool {
			return p.chain(func(a A) bool {
				keep, err := f(a)
				if err != nil {
					fail(err)
					return false
				}
				if !keep {
					return true
				}
				return emit(a)
			}, fail)
		},
	}
}

type joinConfig struct {
	logger *slog.Logger
	name   string
}

// JoinOption configures the execution of a parallel job.
type JoinOption func(*joinConfig)

// WithLogger sets the logger for job lifecycle events, which are emitted at
// debug level. By default they are discarded.
func WithLogger(logger *slog.Logger) JoinOption {
	return func(c *joinConfig) {
		c.logger = logger
	}
}

// WithName labels the job in log output. By default a random id is generated
// for every run.
func WithName(name string) JoinOption {
	return func(c *joinConfig) {
		c.name = name
	}
}

// Join turns a parallel job into a stream that, when driven, executes the
// job's transformation chain on the given number of workers.
//
// The upstream is driven on the caller's goroutine, interleaved with result
// delivery, while workers transform items in the background. At most 8×workers
// items are buffered on each side of the worker pool, applying backpressure to
// the upstream. The output order is not guaranteed: results are delivered as
// soon as they are ready. With workers = 1 the order matches the input order.
//
// The joined stream fails with [ErrWorkerCount] when workers is not positive,
// before the upstream is touched. It fails with the upstream's error if the
// upstream fails, or with the first error returned by a stage function. On
// any failure the job is aborted; results computed so far are discarded.
// Stopping the joined stream early stops the upstream and the workers
// cooperatively, and is not an error. On every path, all workers are waited
// for before the stream returns.
func Join[In, Out any](p *ParallelStream[In, Out], workers int, opts ...JoinOption) Stream[Out] {
	return func(emit func(Out) bool) error {
		if workers <= 0 {
			return ErrWorkerCount
		}

		cfg := joinConfig{}
		for _, opt := range opts {
			opt(&cfg)
		}
		if cfg.logger == nil {
			cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		}
		if cfg.name == "" {
			cfg.name = uuid.NewString()
		}

		return core.Run(p.src, p.chain, workers, emit, cfg.logger, cfg.name)
	}
}
