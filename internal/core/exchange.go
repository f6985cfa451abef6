package core

import (
	"sync"

	"github.com/weirlab/sluice/internal/ringbuffer"
)

// Capacity of each exchange queue per worker. Large enough to keep all
// workers busy, small enough to keep memory bounded.
const queueCapPerWorker = 8

type status int

const (
	statusRunning status = iota
	statusCompleted
	statusException
	statusFinished
)

// exchange is the rendezvous point between the feeding goroutine and the
// workers: a bounded input queue, a bounded output queue and the run status,
// all guarded by a single mutex. Every mutation wakes all waiters; every
// blocking wait re-checks its predicate after waking.
type exchange[In, Out any] struct {
	mu   sync.Mutex
	cond *sync.Cond

	input  *ringbuffer.Buffer[In]
	output *ringbuffer.Buffer[Out]

	st          status
	active      int   // workers that have not finished yet; meaningful while st == statusRunning
	err         error // set when st == statusException
	inputClosed bool  // no more input will ever be pushed
}

func newExchange[In, Out any](workers int) *exchange[In, Out] {
	e := &exchange[In, Out]{
		input:  ringbuffer.New[In](queueCapPerWorker * workers),
		output: ringbuffer.New[Out](queueCapPerWorker * workers),
		st:     statusRunning,
		active: workers,
	}
	e.cond = sync.NewCond(&e.mu)
	return e
}

// pushPopResult reports what a single pushPopInput critical section achieved.
// alive is false when the run reached a terminal status, in which case the
// item was not accepted and feeding must stop.
type pushPopResult[Out any] struct {
	out    Out
	pushed bool
	popped bool
	alive  bool
}

// pushPopInput offers one input item and, regardless of whether it fits,
// opportunistically collects one ready output in the same critical section.
// It blocks only while neither side can make progress: input full, output
// empty, status running.
func (e *exchange[In, Out]) pushPopInput(v In) pushPopResult[Out] {
	e.mu.Lock()
	defer e.mu.Unlock()

	for e.st == statusRunning && e.input.Full() && e.output.Len() == 0 {
		e.cond.Wait()
	}

	var r pushPopResult[Out]
	if e.st != statusRunning {
		return r
	}
	r.alive = true

	r.pushed = e.input.Write(v)
	r.out, r.popped = e.output.Read()

	if r.pushed || r.popped {
		e.cond.Broadcast()
	}
	return r
}

// popInput hands one input item to a worker. It blocks while the queue is
// empty and more input may still arrive. ok is false once the worker should
// stop: no more input, or the run reached a terminal status.
func (e *exchange[In, Out]) popInput() (In, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for e.st == statusRunning && e.input.Len() == 0 && !e.inputClosed {
		e.cond.Wait()
	}

	var zero In
	if e.st != statusRunning {
		return zero, false
	}

	v, ok := e.input.Read()
	if !ok {
		return zero, false // input closed and drained
	}

	e.cond.Broadcast()
	return v, true
}

// pushOutput stores one worker result. It blocks while the output queue is
// full and the run is still live, and reports false when the run reached a
// terminal status, telling the worker to stop.
func (e *exchange[In, Out]) pushOutput(v Out) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	for e.st == statusRunning && e.output.Full() {
		e.cond.Wait()
	}

	if e.st != statusRunning {
		return false
	}

	e.output.Write(v)
	e.cond.Broadcast()
	return true
}

// popOutput takes one result for delivery downstream. It blocks while the
// output queue is empty and the run is still live. ok is false once the run
// is no longer running: remaining results, if any, are then owned by
// takeRemaining.
func (e *exchange[In, Out]) popOutput() (Out, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for e.st == statusRunning && e.output.Len() == 0 {
		e.cond.Wait()
	}

	var zero Out
	if e.st != statusRunning {
		return zero, false
	}

	v, _ := e.output.Read()
	e.cond.Broadcast()
	return v, true
}

// takeRemaining drains the results buffered at the moment the run completed,
// in queue order. It delivers nothing unless the run completed normally:
// after a fault or a finish request buffered results are discarded.
func (e *exchange[In, Out]) takeRemaining() []Out {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.st != statusCompleted {
		return nil
	}

	res := make([]Out, 0, e.output.Len())
	for {
		v, ok := e.output.Read()
		if !ok {
			break
		}
		res = append(res, v)
	}
	return res
}

// closeInput marks that no more input will be pushed, letting idle workers
// drain the queue and finish.
func (e *exchange[In, Out]) closeInput() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.inputClosed = true
	e.cond.Broadcast()
}

// workerDone records that one worker finished. The last one to finish while
// the run is still live completes it.
func (e *exchange[In, Out]) workerDone() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.active--
	if e.active == 0 && e.st == statusRunning {
		e.st = statusCompleted
	}
	e.cond.Broadcast()
}

// fail records the first fault and halts acceptance of further work.
// Later faults and faults after a finish request are ignored.
func (e *exchange[In, Out]) fail(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.st != statusRunning {
		return
	}

	e.st = statusException
	e.err = err
	e.cond.Broadcast()
}

// requestFinish records a downstream stop. It is not an error: the run winds
// down and no exception is surfaced.
func (e *exchange[In, Out]) requestFinish() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.st != statusRunning {
		return
	}

	e.st = statusFinished
	e.cond.Broadcast()
}

func (e *exchange[In, Out]) state() (status, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.st, e.err
}

// release clears both queues. Called once, after all workers have been joined.
func (e *exchange[In, Out]) release() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.input.Reset()
	e.output.Reset()
}
