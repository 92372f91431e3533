package action

import "github.com/valerio/go-saturnpad/saturnpad/pad"

// Action represents input actions that can be performed in the simulator
type Action int

const (
	// Saturn pad controls
	PadUp Action = iota
	PadDown
	PadLeft
	PadRight
	PadA
	PadB
	PadC
	PadX
	PadY
	PadZ
	PadL
	PadR
	PadStart

	// Simulator features
	SimPauseToggle
	SimUnplugToggle
	SimReleaseAll
	SimQuit
)

// Category groups actions by who consumes them.
type Category int

const (
	CategoryPad Category = iota
	CategorySimulator
)

// Info describes an action for logs and the help line.
type Info struct {
	Description string
	Category    Category
}

var padButtons = map[Action]pad.Button{
	PadUp:    pad.Up,
	PadDown:  pad.Down,
	PadLeft:  pad.Left,
	PadRight: pad.Right,
	PadA:     pad.A,
	PadB:     pad.B,
	PadC:     pad.C,
	PadX:     pad.X,
	PadY:     pad.Y,
	PadZ:     pad.Z,
	PadL:     pad.L,
	PadR:     pad.R,
	PadStart: pad.Start,
}

var simInfo = map[Action]Info{
	SimPauseToggle:  {"Pause/resume scanning", CategorySimulator},
	SimUnplugToggle: {"Unplug/replug the pad", CategorySimulator},
	SimReleaseAll:   {"Release all buttons", CategorySimulator},
	SimQuit:         {"Quit", CategorySimulator},
}

// PadButton returns the pad button driven by act, if any.
func PadButton(act Action) (pad.Button, bool) {
	b, ok := padButtons[act]
	return b, ok
}

// GetInfo returns the description and category of act.
func GetInfo(act Action) Info {
	if b, ok := padButtons[act]; ok {
		return Info{Description: "Pad " + b.String(), Category: CategoryPad}
	}
	if info, ok := simInfo[act]; ok {
		return info
	}
	return Info{Description: "Unknown", Category: CategorySimulator}
}
