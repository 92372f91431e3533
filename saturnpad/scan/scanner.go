// Package scan drives the Saturn pad's select lines through its three
// button groups and captures the shared data bus once per group.
package scan

import (
	"github.com/valerio/go-saturnpad/saturnpad/hw"
	"github.com/valerio/go-saturnpad/saturnpad/timing"
)

// Phase is one select-line configuration. Each phase exposes a different
// group of buttons on D0..D3:
//
//	Phase0  S1=0 S0=0  Z Y X R
//	Phase1  S1=1 S0=0  Up Down Left Right
//	Phase2  S1=0 S0=1  B C A Start
//
// The fourth pattern (both high) only carries the pad ID and L and is never
// scanned.
type Phase uint8

const (
	Phase0 Phase = iota
	Phase1
	Phase2

	NumPhases
)

// Next returns the phase scanned after p. The cycle never skips a phase.
func (p Phase) Next() Phase {
	return (p + 1) % NumPhases
}

func (p Phase) String() string {
	switch p {
	case Phase0:
		return "Phase0"
	case Phase1:
		return "Phase1"
	case Phase2:
		return "Phase2"
	default:
		return "Phase?"
	}
}

// Select returns the levels of S1 and S0 for the phase.
func (p Phase) Select() (s1, s0 bool) {
	switch p {
	case Phase1:
		return true, false
	case Phase2:
		return false, true
	default:
		return false, false
	}
}

// Snapshots holds one raw port read per phase, indexed by Phase.
type Snapshots [NumPhases]uint8

// Scanner multiplexes the pad bus.
type Scanner struct {
	board *hw.Board
	ticks timing.TickSource
}

// New returns a scanner driving board and paced by ticks.
func New(board *hw.Board, ticks timing.TickSource) *Scanner {
	return &Scanner{board: board, ticks: ticks}
}

// Select drives the select lines for phase p. Lines going low are cleared
// before lines going high are set.
func (s *Scanner) Select(p Phase) {
	s1, s0 := p.Select()

	var set, clear uint8
	if s1 {
		set |= hw.SelectS1.Mask()
	} else {
		clear |= hw.SelectS1.Mask()
	}
	if s0 {
		set |= hw.SelectS0.Mask()
	} else {
		clear |= hw.SelectS0.Mask()
	}

	port := s.board.Port(hw.SelectS1.Port)
	port.ClearBits(clear)
	if set != 0 {
		port.SetBits(set)
	}
}

// Capture selects phase p, lets the pad settle for one tick and samples the
// bus.
func (s *Scanner) Capture(p Phase) uint8 {
	s.Select(p)
	timing.WaitForTick(s.ticks)
	return s.board.Sample()
}

// Scan captures all three phases in order and consumes exactly three ticks.
// It is the whole-scan form for callers with nothing to do between phases;
// the adapter calls Capture itself so it can drive the d-pad lines early.
func (s *Scanner) Scan() Snapshots {
	var reads Snapshots
	p := Phase0
	for i := 0; i < int(NumPhases); i++ {
		reads[p] = s.Capture(p)
		p = p.Next()
	}
	return reads
}
