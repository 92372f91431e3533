package input

import "github.com/valerio/go-saturnpad/saturnpad/input/action"

// DefaultKeyMap provides default key mappings that work across backends.
var DefaultKeyMap = map[string]action.Action{
	// Saturn pad
	"Up":    action.PadUp,
	"Down":  action.PadDown,
	"Left":  action.PadLeft,
	"Right": action.PadRight,
	"w":     action.PadUp,
	"s":     action.PadDown,
	"a":     action.PadLeft,
	"d":     action.PadRight,

	"j": action.PadA,
	"k": action.PadB,
	"l": action.PadC,
	"u": action.PadX,
	"i": action.PadY,
	"o": action.PadZ,
	"e": action.PadL,
	"r": action.PadR,

	"Enter": action.PadStart,

	// Simulator controls
	"Space":  action.SimPauseToggle,
	"p":      action.SimUnplugToggle,
	"c":      action.SimReleaseAll,
	"Escape": action.SimQuit,
	"q":      action.SimQuit,
}

// GetDefaultMapping returns the default action for a key, if one exists
func GetDefaultMapping(key string) (action.Action, bool) {
	act, ok := DefaultKeyMap[key]
	return act, ok
}
