package th

import (
	"sync"
	"time"
)

// ConcurrencyMonitor measures the peak number of goroutines executing a code
// section concurrently. Each goroutine must call Inc() when entering the
// section and Dec() when leaving it. Inc() blocks the caller until the
// concurrency level has remained stable for the given time window, which
// forces the true peak to be reached and recorded before anyone proceeds.
// The peak is retrieved with Max().
type ConcurrencyMonitor struct {
	cond    *sync.Cond
	current int
	max     int

	window time.Duration

	lastChangeAt time.Time
	timer        *time.Timer
	timerFired   bool
}

func NewConcurrencyMonitor(window time.Duration) *ConcurrencyMonitor {
	c := &ConcurrencyMonitor{
		cond:   sync.NewCond(&sync.Mutex{}),
		window: window,
	}

	c.timer = time.AfterFunc(1*time.Hour, func() {
		c.cond.L.Lock()
		defer c.cond.L.Unlock()

		c.timerFired = true
		c.cond.Broadcast()
	})

	return c
}

func (c *ConcurrencyMonitor) Inc() {
	c.cond.L.Lock()
	defer c.cond.L.Unlock()

	c.lastChangeAt = time.Now()
	if !c.timerFired {
		c.timer.Reset(c.window)
	}

	c.current++
	if c.max < c.current {
		c.max = c.current
	}

	// block all goroutines unless "window" has passed since the last counter change
	for !c.timerFired && time.Since(c.lastChangeAt) < c.window {
		c.cond.Wait()
	}
}

func (c *ConcurrencyMonitor) Dec() {
	c.cond.L.Lock()
	defer c.cond.L.Unlock()

	c.lastChangeAt = time.Now()
	if !c.timerFired {
		c.timer.Reset(c.window)
	}

	c.current--
	c.cond.Broadcast()
}

func (c *ConcurrencyMonitor) Reset() {
	c.cond.L.Lock()
	defer c.cond.L.Unlock()

	c.timer.Stop()

	c.current = 0
	c.max = 0
	c.lastChangeAt = time.Time{}
	c.timer.Reset(1 * time.Hour)
	c.timerFired = false
}

func (c *ConcurrencyMonitor) Max() int {
	c.cond.L.Lock()
	defer c.cond.L.Unlock()

	return c.max
}
