package mapping

import (
	"github.com/valerio/go-saturnpad/saturnpad/bit"
	"github.com/valerio/go-saturnpad/saturnpad/hw"
)

// Axis describes one d-pad axis: a two bit field of the direction snapshot
// and the pair of host lines it drives. Field bit 0 is the negative side,
// bit 1 the positive side. Both bits are active-low.
type Axis struct {
	Name     string
	Shift    uint8 // position of field bit 0 in the snapshot
	Negative Output
	Positive Output
	NegLine  hw.Line
	PosLine  hw.Line
}

var (
	// Horizontal reads D2 (left) and D3 (right).
	Horizontal = Axis{
		Name:     "horizontal",
		Shift:    hw.DataD2.Bit,
		Negative: Left,
		Positive: Right,
		NegLine:  hw.OutLeft,
		PosLine:  hw.OutRight,
	}

	// Vertical reads D0 (up) and D1 (down).
	Vertical = Axis{
		Name:     "vertical",
		Shift:    hw.DataD0.Bit,
		Negative: Up,
		Positive: Down,
		NegLine:  hw.OutUp,
		PosLine:  hw.OutDown,
	}
)

// Reconcile resolves a raw two bit axis field:
//
//	00  both pressed   -> both asserted
//	01  positive only  -> positive asserted
//	10  negative only  -> negative asserted
//	11  neither        -> none asserted
//
// Both lines are asserted on 00 instead of picking a side. Hosts that see
// opposite directions together treat the axis as centered.
func Reconcile(field uint8) (neg, pos bool) {
	switch field & 0b11 {
	case 0b00:
		return true, true
	case 0b01:
		return false, true
	case 0b10:
		return true, false
	default:
		return false, false
	}
}

// Field extracts the axis' raw two bit field from the direction snapshot.
func (a Axis) Field(snapshot uint8) uint8 {
	return bit.ExtractBits(snapshot, a.Shift+1, a.Shift)
}

// Resolve returns the asserted signals of the axis for a direction snapshot.
func (a Axis) Resolve(snapshot uint8) Output {
	neg, pos := Reconcile(a.Field(snapshot))
	var out Output
	if neg {
		out |= a.Negative
	}
	if pos {
		out |= a.Positive
	}
	return out
}

// Drive writes both lines of the axis back to back.
func (a Axis) Drive(board *hw.Board, p Polarity, snapshot uint8) {
	neg, pos := Reconcile(a.Field(snapshot))
	board.Drive(a.NegLine, p.Level(neg))
	board.Drive(a.PosLine, p.Level(pos))
}
