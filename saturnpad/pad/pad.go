// Package pad models a Saturn digital pad as seen from its connector: the
// host drives two select lines and the pad answers on four shared,
// active-low data lines.
package pad

import (
	"fmt"
	"strings"

	"github.com/valerio/go-saturnpad/saturnpad/bit"
)

// Button is a set of Saturn pad buttons.
type Button uint16

const (
	Up Button = 1 << iota
	Down
	Left
	Right
	A
	B
	C
	X
	Y
	Z
	L
	R
	Start

	NumButtons = iota
)

var buttonNames = [NumButtons]string{
	"Up", "Down", "Left", "Right",
	"A", "B", "C", "X", "Y", "Z",
	"L", "R", "Start",
}

func (b Button) String() string {
	if b == 0 {
		return "-"
	}
	var names []string
	for i, name := range buttonNames {
		if b&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

// ParseButton looks up a single button by name, ignoring case.
func ParseButton(name string) (Button, error) {
	for i, n := range buttonNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return 1 << i, nil
		}
	}
	return 0, fmt.Errorf("unknown button %q", name)
}

// ParseButtons parses a comma separated button list. An empty list is no
// buttons.
func ParseButtons(list string) (Button, error) {
	var b Button
	if strings.TrimSpace(list) == "" {
		return 0, nil
	}
	for _, name := range strings.Split(list, ",") {
		btn, err := ParseButton(name)
		if err != nil {
			return 0, err
		}
		b |= btn
	}
	return b, nil
}

// groups lists the button on D0..D3 for each select pattern, indexed by
// S1 | S0<<1. Pattern 3 carries the pad ID and is handled separately.
var groups = [3][4]Button{
	{Z, Y, X, R},
	{Up, Down, Left, Right},
	{B, C, A, Start},
}

// digitalID is the D0..D2 pattern a digital pad presents with both select
// lines high; D3 carries L.
const digitalID = 0b0100

// Pad is a Saturn digital pad. A disconnected pad leaves the data lines
// floating high, which reads as every button released.
type Pad struct {
	Connected bool
	down      Button
}

// New returns a connected pad with nothing pressed.
func New() *Pad {
	return &Pad{Connected: true}
}

// Press holds the given buttons down.
func (p *Pad) Press(b Button) {
	p.down |= b
}

// Release lets the given buttons go.
func (p *Pad) Release(b Button) {
	p.down &^= b
}

// Set replaces the held buttons.
func (p *Pad) Set(b Button) {
	p.down = b
}

// Down returns the held buttons.
func (p *Pad) Down() Button {
	return p.down
}

// Nibble returns the levels of D0..D3 (bit 0 = D0) for a select pattern.
func (p *Pad) Nibble(s1, s0 bool) uint8 {
	if !p.Connected {
		return 0x0F
	}

	var idx uint8
	if s1 {
		idx |= 1
	}
	if s0 {
		idx |= 2
	}

	if idx == 3 {
		return bit.Assign(3, digitalID, p.down&L == 0)
	}

	var n uint8
	for i, b := range groups[idx] {
		n = bit.Assign(uint8(i), n, p.down&b == 0)
	}
	return n
}
