// Package saturnpad translates a Saturn digital pad into one host line per
// button. The Adapter scans the pad's multiplexed bus in three tick-paced
// phases and rewrites every host line once per scan.
package saturnpad

import (
	"github.com/valerio/go-saturnpad/saturnpad/hw"
	"github.com/valerio/go-saturnpad/saturnpad/mapping"
	"github.com/valerio/go-saturnpad/saturnpad/scan"
	"github.com/valerio/go-saturnpad/saturnpad/timing"
)

// Adapter is the scan loop. It expects the clock, timer and pin directions
// to be configured before it is created and never touches them.
type Adapter struct {
	board   *hw.Board
	ticks   timing.TickSource
	scanner *scan.Scanner
	table   *mapping.Table
}

// New returns an adapter using the board's default mapping.
func New(board *hw.Board, ticks timing.TickSource) *Adapter {
	return NewWithTable(board, ticks, mapping.Default)
}

// NewWithTable returns an adapter using a custom mapping table.
func NewWithTable(board *hw.Board, ticks timing.TickSource, table *mapping.Table) *Adapter {
	return &Adapter{
		board:   board,
		ticks:   ticks,
		scanner: scan.New(board, ticks),
		table:   table,
	}
}

// Sync consumes one tick so the first scan starts on a tick boundary.
func (a *Adapter) Sync() {
	timing.WaitForTick(a.ticks)
}

// Step runs one full scan: three phases, three ticks. The d-pad lines are
// updated as soon as the direction phase is captured, the button lines once
// the last phase is in. The snapshots are returned for observers only.
func (a *Adapter) Step() scan.Snapshots {
	var reads scan.Snapshots

	for p := scan.Phase0; ; p = p.Next() {
		reads[p] = a.scanner.Capture(p)

		switch p {
		case scan.Phase1:
			a.table.DriveDirections(a.board, reads[p])
		case scan.Phase2:
			a.table.DriveButtons(a.board, reads)
			return reads
		}
	}
}

// Run scans forever.
func (a *Adapter) Run() {
	a.Sync()
	for {
		a.Step()
	}
}

// Output reads back the signals currently asserted on the host lines.
func (a *Adapter) Output() mapping.Output {
	return a.table.Levels(a.board)
}
