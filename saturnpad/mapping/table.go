package mapping

import (
	"github.com/valerio/go-saturnpad/saturnpad/hw"
	"github.com/valerio/go-saturnpad/saturnpad/scan"
)

// Table is a complete snapshot-to-line mapping.
type Table struct {
	Polarity Polarity
	Axes     []Axis
	Buttons  []Signal
}

// Default is the adapter board's mapping. The host port reads its lines
// active-low, so an asserted signal is driven low. Pad levels pass straight
// through; a host expecting inverted (active-high) lines needs an ActiveHigh
// table instead.
var Default = &Table{
	Polarity: ActiveLow,
	Axes:     []Axis{Horizontal, Vertical},
	Buttons:  Buttons,
}

// Directions resolves every axis of the direction snapshot.
func (t *Table) Directions(snapshot uint8) Output {
	var out Output
	for _, a := range t.Axes {
		out |= a.Resolve(snapshot)
	}
	return out
}

// MapButtons returns the asserted non-directional signals.
func (t *Table) MapButtons(reads scan.Snapshots) Output {
	var out Output
	for _, s := range t.Buttons {
		if s.Pressed(reads) {
			out |= s.Output
		}
	}
	return out
}

// Derive computes the complete output state of one scan. It is a pure
// function of the snapshots.
func (t *Table) Derive(reads scan.Snapshots) Output {
	return t.Directions(reads[scan.Phase1]) | t.MapButtons(reads)
}

// DriveDirections writes the d-pad lines from the direction snapshot, one
// axis at a time.
func (t *Table) DriveDirections(board *hw.Board, snapshot uint8) {
	for _, a := range t.Axes {
		a.Drive(board, t.Polarity, snapshot)
	}
}

// DriveButtons rewrites every button line, changed or not.
func (t *Table) DriveButtons(board *hw.Board, reads scan.Snapshots) {
	for _, s := range t.Buttons {
		board.Drive(s.Line, t.Polarity.Level(s.Pressed(reads)))
	}
}

// Levels reads the driven lines back into an Output.
func (t *Table) Levels(board *hw.Board) Output {
	var out Output
	for _, a := range t.Axes {
		if t.Polarity.Asserted(board.Level(a.NegLine)) {
			out |= a.Negative
		}
		if t.Polarity.Asserted(board.Level(a.PosLine)) {
			out |= a.Positive
		}
	}
	for _, s := range t.Buttons {
		if t.Polarity.Asserted(board.Level(s.Line)) {
			out |= s.Output
		}
	}
	return out
}
