package pad

import (
	"github.com/valerio/go-saturnpad/saturnpad/bit"
	"github.com/valerio/go-saturnpad/saturnpad/hw"
)

// Bus is the input pin register of the port the pad is wired to. Pins
// configured as outputs read back their latch; the data pins read whatever
// the pad presents for the select lines currently latched.
type Bus struct {
	pad   *Pad
	latch hw.Port
}

// NewBus wires p to the port whose output latch is latch.
func NewBus(p *Pad, latch hw.Port) *Bus {
	return &Bus{pad: p, latch: latch}
}

// Attach replaces board's bus with one reading p.
func Attach(board *hw.Board, p *Pad) *Bus {
	b := NewBus(p, board.Port(hw.SelectS1.Port))
	board.Bus = b
	return b
}

// ReadBits implements hw.Port.
func (b *Bus) ReadBits() uint8 {
	latch := b.latch.ReadBits()
	s1 := bit.IsSet(hw.SelectS1.Bit, latch)
	s0 := bit.IsSet(hw.SelectS0.Bit, latch)
	nibble := b.pad.Nibble(s1, s0)

	v := latch & hw.DirectionMask(hw.SelectS1.Port)
	for i, l := range hw.DataLines {
		v = bit.Assign(l.Bit, v, bit.IsSet(uint8(i), nibble))
	}
	return v
}

// SetBits is a no-op, input pins can't be driven.
func (b *Bus) SetBits(uint8) {}

// ClearBits is a no-op, input pins can't be driven.
func (b *Bus) ClearBits(uint8) {}
