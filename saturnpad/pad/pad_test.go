package pad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-saturnpad/saturnpad/hw"
)

func TestNibbleIdle(t *testing.T) {
	p := New()
	assert.Equal(t, uint8(0x0F), p.Nibble(false, false))
	assert.Equal(t, uint8(0x0F), p.Nibble(true, false))
	assert.Equal(t, uint8(0x0F), p.Nibble(false, true))
	assert.Equal(t, uint8(0b1100), p.Nibble(true, true), "digital pad ID with L released")
}

func TestNibbleGroups(t *testing.T) {
	tests := []struct {
		button   Button
		s1, s0   bool
		expected uint8
	}{
		{Z, false, false, 0b1110},
		{Y, false, false, 0b1101},
		{X, false, false, 0b1011},
		{R, false, false, 0b0111},
		{Up, true, false, 0b1110},
		{Down, true, false, 0b1101},
		{Left, true, false, 0b1011},
		{Right, true, false, 0b0111},
		{B, false, true, 0b1110},
		{C, false, true, 0b1101},
		{A, false, true, 0b1011},
		{Start, false, true, 0b0111},
		{L, true, true, 0b0100},
	}

	for _, tt := range tests {
		t.Run(tt.button.String(), func(t *testing.T) {
			p := New()
			p.Press(tt.button)
			assert.Equal(t, tt.expected, p.Nibble(tt.s1, tt.s0))
		})
	}
}

func TestDisconnectedReadsReleased(t *testing.T) {
	p := New()
	p.Press(A | B | Up)
	p.Connected = false

	assert.Equal(t, uint8(0x0F), p.Nibble(false, false))
	assert.Equal(t, uint8(0x0F), p.Nibble(true, false))
	assert.Equal(t, uint8(0x0F), p.Nibble(false, true))
}

func TestPressRelease(t *testing.T) {
	p := New()
	p.Press(A)
	p.Press(Start)
	assert.Equal(t, A|Start, p.Down())

	p.Release(A)
	assert.Equal(t, Start, p.Down())

	p.Set(X | Y)
	assert.Equal(t, X|Y, p.Down())
}

func TestParseButtons(t *testing.T) {
	b, err := ParseButtons("a, start,UP")
	require.NoError(t, err)
	assert.Equal(t, A|Start|Up, b)

	b, err = ParseButtons("")
	require.NoError(t, err)
	assert.Zero(t, b)

	_, err = ParseButtons("a,home")
	assert.Error(t, err)
}

func TestButtonString(t *testing.T) {
	assert.Equal(t, "-", Button(0).String())
	assert.Equal(t, "Left|Start", (Start | Left).String())
}

func TestBusFollowsSelectLatch(t *testing.T) {
	board := hw.NewMemoryBoard()
	p := New()
	Attach(board, p)
	p.Press(Right | X)

	latch := board.Port(hw.PortB)

	// Phase0: X on D2 (PB2) low.
	latch.ClearBits(hw.SelectS1.Mask() | hw.SelectS0.Mask())
	assert.Equal(t, uint8(0b11001000), board.Sample())

	// Phase1: Right on D3 (PB3) low, S1 reads back high.
	latch.SetBits(hw.SelectS1.Mask())
	assert.Equal(t, uint8(0b11010100), board.Sample())

	// Phase2: nothing pressed, S0 reads back high.
	latch.ClearBits(hw.SelectS1.Mask())
	latch.SetBits(hw.SelectS0.Mask())
	assert.Equal(t, uint8(0b11101100), board.Sample())
}

func TestBusReadsOutputLatch(t *testing.T) {
	board := hw.NewMemoryBoard()
	Attach(board, New())

	board.Drive(hw.OutRight, true)
	board.Drive(hw.OutUp, true)

	assert.Equal(t, uint8(0b11001111), board.Sample())
}
