package timing

// CompareFlag is a timer compare-match flag: hardware sets it once per
// period and software clears it.
type CompareFlag interface {
	Pending() bool
	Clear()
}

// PolledTimer turns a compare flag into a TickSource by busy-polling it.
// No interrupt is involved, so nothing can run between observing the flag
// and clearing it.
type PolledTimer struct {
	flag CompareFlag
}

// NewPolledTimer returns a TickSource polling flag.
func NewPolledTimer(flag CompareFlag) *PolledTimer {
	return &PolledTimer{flag: flag}
}

// Next spins until the flag is set, then clears it. A missed clear would
// make the following call return at once, so the clear happens right after
// the flag is seen.
func (p *PolledTimer) Next() {
	for !p.flag.Pending() {
	}
	p.flag.Clear()
}
