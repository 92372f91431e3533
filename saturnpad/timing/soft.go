//go:build !avr

package timing

import (
	"sync/atomic"
	"time"
)

// SoftFlag is a host stand-in for the timer compare flag: a background
// ticker sets it once per period, exactly like the hardware does.
type SoftFlag struct {
	pending atomic.Bool
	ticker  *time.Ticker
	done    chan struct{}
}

// NewSoftFlag starts a flag that is raised every period.
func NewSoftFlag(period time.Duration) *SoftFlag {
	f := &SoftFlag{
		ticker: time.NewTicker(period),
		done:   make(chan struct{}),
	}
	go f.run()
	return f
}

func (f *SoftFlag) run() {
	for {
		select {
		case <-f.ticker.C:
			f.pending.Store(true)
		case <-f.done:
			return
		}
	}
}

// Pending implements CompareFlag.
func (f *SoftFlag) Pending() bool {
	return f.pending.Load()
}

// Clear implements CompareFlag.
func (f *SoftFlag) Clear() {
	f.pending.Store(false)
}

// Stop halts the background ticker. The flag keeps its last value.
func (f *SoftFlag) Stop() {
	f.ticker.Stop()
	close(f.done)
}
