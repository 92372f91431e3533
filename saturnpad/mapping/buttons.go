package mapping

import (
	"github.com/valerio/go-saturnpad/saturnpad/bit"
	"github.com/valerio/go-saturnpad/saturnpad/hw"
	"github.com/valerio/go-saturnpad/saturnpad/scan"
)

// Signal routes one pad data bit of one snapshot to one host line.
// Pad bits are active-low.
type Signal struct {
	Name     string
	Output   Output
	Snapshot scan.Phase
	Bit      uint8
	Line     hw.Line
}

// Pressed reports whether the signal's pad bit reads pressed.
func (s Signal) Pressed(reads scan.Snapshots) bool {
	return !bit.IsSet(s.Bit, reads[s.Snapshot])
}

// Buttons is the board's button routing. The Saturn R button has no
// counterpart on the host pad and drives MODE.
var Buttons = []Signal{
	{Name: "X", Output: X, Snapshot: scan.Phase0, Bit: hw.DataD2.Bit, Line: hw.OutX},
	{Name: "Y", Output: Y, Snapshot: scan.Phase0, Bit: hw.DataD1.Bit, Line: hw.OutY},
	{Name: "Z", Output: Z, Snapshot: scan.Phase0, Bit: hw.DataD0.Bit, Line: hw.OutZ},
	{Name: "Mode", Output: Mode, Snapshot: scan.Phase0, Bit: hw.DataD3.Bit, Line: hw.OutMode},

	{Name: "C", Output: C, Snapshot: scan.Phase2, Bit: hw.DataD1.Bit, Line: hw.OutC},
	{Name: "B", Output: B, Snapshot: scan.Phase2, Bit: hw.DataD0.Bit, Line: hw.OutB},
	{Name: "A", Output: A, Snapshot: scan.Phase2, Bit: hw.DataD2.Bit, Line: hw.OutA},
	{Name: "Start", Output: Start, Snapshot: scan.Phase2, Bit: hw.DataD3.Bit, Line: hw.OutStart},
}
