package scan_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-saturnpad/saturnpad/bit"
	"github.com/valerio/go-saturnpad/saturnpad/hw"
	"github.com/valerio/go-saturnpad/saturnpad/scan"
	"github.com/valerio/go-saturnpad/saturnpad/timing"
)

// tracePort records every access to the wrapped port.
type tracePort struct {
	name  string
	inner hw.Port
	log   *[]string
}

func (p *tracePort) SetBits(mask uint8) {
	*p.log = append(*p.log, fmt.Sprintf("%s set %08b", p.name, mask))
	p.inner.SetBits(mask)
}

func (p *tracePort) ClearBits(mask uint8) {
	*p.log = append(*p.log, fmt.Sprintf("%s clear %08b", p.name, mask))
	p.inner.ClearBits(mask)
}

func (p *tracePort) ReadBits() uint8 {
	*p.log = append(*p.log, p.name+" read")
	return p.inner.ReadBits()
}

type harness struct {
	board *hw.Board
	ticks *timing.Counter
	log   []string
	// select levels observed when each tick elapsed
	atTick [][2]bool
}

func newHarness() *harness {
	h := &harness{board: hw.NewMemoryBoard()}
	portB := h.board.Out[hw.PortB]
	h.board.Out[hw.PortB] = &tracePort{name: "PORTB", inner: portB, log: &h.log}
	h.board.Bus = &tracePort{name: "PINB", inner: h.board.Bus, log: &h.log}
	h.ticks = &timing.Counter{OnTick: func(n uint64) {
		h.log = append(h.log, "tick")
		latch := portB.ReadBits()
		h.atTick = append(h.atTick, [2]bool{
			bit.IsSet(hw.SelectS1.Bit, latch),
			bit.IsSet(hw.SelectS0.Bit, latch),
		})
	}}
	return h
}

func TestPhaseCycle(t *testing.T) {
	assert.Equal(t, scan.Phase1, scan.Phase0.Next())
	assert.Equal(t, scan.Phase2, scan.Phase1.Next())
	assert.Equal(t, scan.Phase0, scan.Phase2.Next())
}

func TestPhaseSelectPatterns(t *testing.T) {
	tests := []struct {
		phase  scan.Phase
		s1, s0 bool
	}{
		{scan.Phase0, false, false},
		{scan.Phase1, true, false},
		{scan.Phase2, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.phase.String(), func(t *testing.T) {
			s1, s0 := tt.phase.Select()
			assert.Equal(t, tt.s1, s1)
			assert.Equal(t, tt.s0, s0)
		})
	}
}

func TestScanConsumesThreeTicksInOrder(t *testing.T) {
	h := newHarness()
	s := scan.New(h.board, h.ticks)

	s.Scan()

	assert.Equal(t, uint64(3), h.ticks.Count())
	require.Len(t, h.atTick, 3)
	assert.Equal(t, [2]bool{false, false}, h.atTick[0], "Phase0 selected during first tick")
	assert.Equal(t, [2]bool{true, false}, h.atTick[1], "Phase1 selected during second tick")
	assert.Equal(t, [2]bool{false, true}, h.atTick[2], "Phase2 selected during third tick")
}

func TestSelectPrecedesTickPrecedesSample(t *testing.T) {
	h := newHarness()
	s := scan.New(h.board, h.ticks)

	s.Scan()

	expected := []string{
		"PORTB clear 00110000",
		"tick",
		"PINB read",
		"PORTB clear 00100000",
		"PORTB set 00010000",
		"tick",
		"PINB read",
		"PORTB clear 00010000",
		"PORTB set 00100000",
		"tick",
		"PINB read",
	}
	assert.Equal(t, expected, h.log)
}

func TestScanRepeatsIndefinitely(t *testing.T) {
	h := newHarness()
	s := scan.New(h.board, h.ticks)

	for i := 0; i < 4; i++ {
		s.Scan()
	}

	require.Len(t, h.atTick, 12)
	for i, levels := range h.atTick {
		s1, s0 := scan.Phase(i % 3).Select()
		assert.Equal(t, [2]bool{s1, s0}, levels, "tick %d", i)
	}
}

// phaseBus returns a different byte for each select pattern.
type phaseBus struct {
	board *hw.Board
	reads [4]uint8
}

func (b *phaseBus) SetBits(uint8)   {}
func (b *phaseBus) ClearBits(uint8) {}
func (b *phaseBus) ReadBits() uint8 {
	latch := b.board.Port(hw.PortB).ReadBits()
	idx := bit.ExtractBits(latch, 5, 4)
	return b.reads[idx]
}

func TestScanCapturesEachPhase(t *testing.T) {
	board := hw.NewMemoryBoard()
	board.Bus = &phaseBus{board: board, reads: [4]uint8{0xA0, 0xB1, 0xC2, 0xD3}}
	s := scan.New(board, &timing.Counter{})

	reads := s.Scan()

	assert.Equal(t, scan.Snapshots{0xA0, 0xB1, 0xC2}, reads)
}

func TestSelectLeavesOtherPinsAlone(t *testing.T) {
	board := hw.NewMemoryBoard()
	board.Drive(hw.OutRight, true)
	board.Drive(hw.OutUp, true)
	s := scan.New(board, &timing.Counter{})

	s.Scan()

	assert.True(t, board.Level(hw.OutRight))
	assert.True(t, board.Level(hw.OutUp))
}
