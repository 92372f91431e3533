//go:build avr

package hw

import (
	"device/avr"
	"runtime/volatile"
)

// avrPort adapts a memory mapped I/O register to Port.
type avrPort struct {
	reg *volatile.Register8
}

func (p avrPort) SetBits(mask uint8)   { p.reg.SetBits(mask) }
func (p avrPort) ClearBits(mask uint8) { p.reg.ClearBits(mask) }
func (p avrPort) ReadBits() uint8      { return p.reg.Get() }

// NewAVRBoard returns the board backed by the chip's port registers.
func NewAVRBoard() *Board {
	return &Board{
		Out: [NumPorts]Port{
			PortA: avrPort{avr.PORTA},
			PortB: avrPort{avr.PORTB},
			PortD: avrPort{avr.PORTD},
		},
		Bus: avrPort{avr.PINB},
	}
}

// ConfigureDirections writes the data direction registers. It must run once
// before the adapter starts scanning.
func ConfigureDirections() {
	avr.DDRA.Set(DirectionMask(PortA))
	avr.DDRB.Set(DirectionMask(PortB))
	avr.DDRD.Set(DirectionMask(PortD))
}
