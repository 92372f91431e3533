//go:build avr

// Command firmware is the adapter firmware for the AVR board.
package main

import (
	"github.com/valerio/go-saturnpad/saturnpad"
	"github.com/valerio/go-saturnpad/saturnpad/hw"
	"github.com/valerio/go-saturnpad/saturnpad/timing"
)

func main() {
	timing.ConfigureClock()
	hw.ConfigureDirections()

	saturnpad.New(hw.NewAVRBoard(), timing.NewPolledTimer(timing.Timer0{})).Run()
}
