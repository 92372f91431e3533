// Package timing provides the adapter's only time reference: a fixed rate
// tick. Everything else waits on a TickSource between driving the select
// lines and sampling the pad, giving the pad one full tick to settle.
package timing

import "time"

// TickSource paces the scan loop.
type TickSource interface {
	// Next blocks until the next tick. It never returns early and consumes
	// exactly one tick per call.
	Next()
}

// Constants for the adapter's timer: the 8 MHz core clock divided by 8
// feeds an 8 bit counter that fires a compare match every 64 counts.
const (
	ClockHz         = 1_000_000
	TicksPerCompare = 64
	TickHz          = ClockHz / TicksPerCompare // 15625 Hz

	// CompareTop is the value loaded into the compare register; the counter
	// clears on the count after reaching it.
	CompareTop = TicksPerCompare - 1
)

// TickPeriod is the duration of a single tick.
const TickPeriod = time.Second / TickHz

// WaitForTick blocks until src delivers its next tick.
func WaitForTick(src TickSource) {
	src.Next()
}

// Counter is a TickSource that returns immediately and counts the ticks it
// handed out. OnTick, if set, runs on every tick; tests use it to observe
// the port state at the exact moment a tick elapses.
type Counter struct {
	count  uint64
	OnTick func(n uint64)
}

// Next implements TickSource.
func (c *Counter) Next() {
	c.count++
	if c.OnTick != nil {
		c.OnTick(c.count)
	}
}

// Count returns the number of ticks consumed so far.
func (c *Counter) Count() uint64 {
	return c.count
}

// Reset zeroes the tick count.
func (c *Counter) Reset() {
	c.count = 0
}
