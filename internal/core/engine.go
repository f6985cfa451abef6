// Package core implements the parallel fan-out/fan-in engine: a fixed pool of
// workers exchanging items with a feeding goroutine through a pair of bounded
// queues. The public package wraps it into stream operations.
package core

import (
	"log/slog"
	"sync"
)

// MakeChain builds one worker's transform chain: given a sink for results and
// a sink for faults, it returns the receiver the worker feeds input items to.
// The receiver reports false when the worker should stop consuming. Chains
// carry per-instance state, so every worker must build its own.
type MakeChain[In, Out any] func(emit func(Out) bool, fail func(error)) func(In) bool

// Run executes src through n parallel copies of the transform chain and
// delivers results to emit, on the caller's goroutine, in completion order.
//
// Run returns once the source is exhausted and all results are delivered,
// once emit requests a stop, or once the source or a chain fails; whichever
// comes first. All n workers are joined before Run returns, on every path.
func Run[In, Out any](
	src func(emit func(In) bool) error,
	makeChain MakeChain[In, Out],
	n int,
	emit func(Out) bool,
	logger *slog.Logger,
	job string,
) error {
	ex := newExchange[In, Out](n)
	defer ex.release()

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			runWorker(ex, makeChain)
		}()
	}

	logger.Debug("parallel run started", "job", job, "workers", n)

	stopped := false

	// Feed the source, collecting ready results along the way.
	srcErr := src(func(v In) bool {
		for {
			r := ex.pushPopInput(v)
			if r.popped && !emit(r.out) {
				stopped = true
				ex.requestFinish()
				logger.Debug("finish requested", "job", job)
				return false
			}
			if !r.alive {
				return false
			}
			if r.pushed {
				return true
			}
			// Input was full and only an output was collected: retry the same item.
		}
	})
	if srcErr != nil {
		ex.fail(srcErr)
		logger.Debug("source failed", "job", job, "error", srcErr)
	}
	ex.closeInput()

	// Drain results until the run leaves the running state.
	for !stopped {
		v, ok := ex.popOutput()
		if !ok {
			break
		}
		if !emit(v) {
			stopped = true
			ex.requestFinish()
			logger.Debug("finish requested", "job", job)
		}
	}

	wg.Wait()

	st, err := ex.state()
	switch st {
	case statusCompleted:
		for _, v := range ex.takeRemaining() {
			if stopped {
				break
			}
			if !emit(v) {
				stopped = true
			}
		}
		logger.Debug("parallel run completed", "job", job)
		return nil
	case statusException:
		logger.Debug("parallel run failed", "job", job, "error", err)
		return err
	default:
		logger.Debug("parallel run finished early", "job", job)
		return nil
	}
}

// runWorker consumes input items until there are none left or the run reaches
// a terminal status. The completion mark is deferred so that every exit path,
// including a chain panic unwinding through here, is accounted for.
func runWorker[In, Out any](ex *exchange[In, Out], makeChain MakeChain[In, Out]) {
	defer ex.workerDone()

	receive := makeChain(ex.pushOutput, ex.fail)

	for {
		v, ok := ex.popInput()
		if !ok {
			return
		}
		if !receive(v) {
			return
		}
	}
}
