//go:build !avr

package timing

import "time"

// Ticker uses time.Ticker for simple, blocking tick pacing.
// Less accurate than polling a SoftFlag but doesn't burn a core, which is
// what the interactive simulator wants.
type Ticker struct {
	ticker *time.Ticker
	ch     <-chan time.Time
}

func NewTicker(period time.Duration) *Ticker {
	ticker := time.NewTicker(period)
	return &Ticker{
		ticker: ticker,
		ch:     ticker.C,
	}
}

// Next implements TickSource.
func (t *Ticker) Next() {
	<-t.ch
}

func (t *Ticker) Stop() {
	t.ticker.Stop()
}
