//go:build avr

package timing

import "device/avr"

// Timer0 is the compare-match A flag of the 8 bit Timer0.
type Timer0 struct{}

// Pending implements CompareFlag.
func (Timer0) Pending() bool {
	return avr.TIFR.HasBits(avr.TIFR_OCF0A)
}

// Clear implements CompareFlag. The flag is cleared by writing a one to it.
func (Timer0) Clear() {
	avr.TIFR.Set(avr.TIFR_OCF0A)
}

// ConfigureClock removes the system clock prescaler and starts Timer0 in CTC
// mode at ClockHz, matching every TicksPerCompare counts.
func ConfigureClock() {
	avr.CLKPR.Set(avr.CLKPR_CLKPCE) // unlock
	avr.CLKPR.Set(0)                // divide by 1

	avr.OCR0A.Set(CompareTop)
	avr.TCCR0A.Set(avr.TCCR0A_WGM01) // CTC
	avr.TCCR0B.Set(avr.TCCR0B_CS01)  // clk/8
}
