// Package hw describes the adapter board: its I/O ports, the pins wired to
// the Saturn pad and the host connector, and the Port abstraction the rest
// of the adapter drives them through.
//
// On the AVR target the ports are the memory mapped PORTx/PINx registers
// (see board_avr.go). Everywhere else they are plain in-memory registers, so
// the scan and mapping logic can run and be tested on the host.
package hw

import "github.com/valerio/go-saturnpad/saturnpad/bit"

// Port is an 8 bit I/O port.
type Port interface {
	// SetBits drives every line in mask high.
	SetBits(mask uint8)
	// ClearBits drives every line in mask low.
	ClearBits(mask uint8)
	// ReadBits returns the current level of all eight lines.
	ReadBits() uint8
}

// PortID names one of the microcontroller's I/O ports.
type PortID uint8

const (
	PortA PortID = iota
	PortB
	PortD

	NumPorts
)

func (id PortID) String() string {
	switch id {
	case PortA:
		return "A"
	case PortB:
		return "B"
	case PortD:
		return "D"
	default:
		return "?"
	}
}

// Line is a single pin: one bit of one port.
type Line struct {
	Port PortID
	Bit  uint8
}

// Mask returns the line's bit mask within its port.
func (l Line) Mask() uint8 {
	return bit.Mask(l.Bit)
}

func (l Line) String() string {
	return "P" + l.Port.String() + string(rune('0'+l.Bit))
}

// Board groups the output latches of every port with the input pins of the
// pad bus.
type Board struct {
	Out [NumPorts]Port // PORTA, PORTB, PORTD
	Bus Port           // PINB
}

// NewMemoryBoard returns a board backed by in-memory registers. Bus starts
// out all high, which is what a port with no pad plugged in reads.
func NewMemoryBoard() *Board {
	return &Board{
		Out: [NumPorts]Port{
			PortA: new(Register),
			PortB: new(Register),
			PortD: new(Register),
		},
		Bus: NewRegister(0xFF),
	}
}

// Port returns the output latch of the given port.
func (b *Board) Port(id PortID) Port {
	return b.Out[id]
}

// Drive sets the level of an output line.
func (b *Board) Drive(l Line, high bool) {
	if high {
		b.Out[l.Port].SetBits(l.Mask())
	} else {
		b.Out[l.Port].ClearBits(l.Mask())
	}
}

// Level reports the latched level of an output line.
func (b *Board) Level(l Line) bool {
	return bit.IsSet(l.Bit, b.Out[l.Port].ReadBits())
}

// Sample reads the pad bus pins.
func (b *Board) Sample() uint8 {
	return b.Bus.ReadBits()
}
