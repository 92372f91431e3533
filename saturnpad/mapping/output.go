// Package mapping turns the three raw pad snapshots into host output levels.
//
// Directions go through a reconciler that resolves each axis as a pair, so
// a glitched read can never produce a single unintended direction. Every
// other button is a direct bit-to-line copy taken from a fixed table.
package mapping

import "strings"

// Output is the set of asserted host signals.
type Output uint16

const (
	Up Output = 1 << iota
	Down
	Left
	Right
	A
	B
	C
	X
	Y
	Z
	Mode
	Start

	NumOutputs = iota
)

var outputNames = [NumOutputs]string{
	"Up", "Down", "Left", "Right",
	"A", "B", "C", "X", "Y", "Z",
	"Mode", "Start",
}

// Has reports whether every signal in s is asserted.
func (o Output) Has(s Output) bool {
	return o&s == s
}

func (o Output) String() string {
	if o == 0 {
		return "-"
	}
	var names []string
	for i, name := range outputNames {
		if o&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

// Polarity is the line level that means "asserted".
type Polarity uint8

const (
	ActiveLow Polarity = iota
	ActiveHigh
)

// Level returns the line level for an asserted or released signal.
func (p Polarity) Level(asserted bool) bool {
	return asserted == (p == ActiveHigh)
}

// Asserted is the inverse of Level.
func (p Polarity) Asserted(level bool) bool {
	return level == (p == ActiveHigh)
}
