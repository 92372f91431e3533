package backend

import (
	"log/slog"

	"github.com/valerio/go-saturnpad/saturnpad/hw"
	"github.com/valerio/go-saturnpad/saturnpad/input/action"
	"github.com/valerio/go-saturnpad/saturnpad/input/event"
	"github.com/valerio/go-saturnpad/saturnpad/mapping"
	"github.com/valerio/go-saturnpad/saturnpad/pad"
	"github.com/valerio/go-saturnpad/saturnpad/scan"
)

// Backend is the simulator's front end: it shows the adapter's state and
// turns user input into actions.
// Backends are responsible for:
// - Presenting the latest View (terminal UI, logs, ...)
// - Translating platform-specific input to InputEvents
type Backend interface {
	// Init configures the backend. It must be called before Update.
	Init(config Config) error

	// Update presents view and returns the input collected since the
	// previous call.
	Update(view View) ([]InputEvent, error)

	// Cleanup resources when shutting down
	Cleanup() error
}

// Config holds configuration for backends
type Config struct {
	Title    string
	LogLevel slog.Level
}

// InputEvent is a single user input translated to an action.
type InputEvent struct {
	Action action.Action
	Type   event.Type
}

// View is a snapshot of the simulated adapter after a batch of scans.
type View struct {
	Scans     uint64
	Snapshots scan.Snapshots
	Output    mapping.Output
	Latches   [hw.NumPorts]uint8
	Pad       pad.Button
	Connected bool
	Paused    bool
}
