package headless

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/valerio/go-saturnpad/saturnpad/backend"
	"github.com/valerio/go-saturnpad/saturnpad/hw"
	"github.com/valerio/go-saturnpad/saturnpad/input/action"
	"github.com/valerio/go-saturnpad/saturnpad/input/event"
	"github.com/valerio/go-saturnpad/saturnpad/mapping"
)

// Backend implements the Backend interface for scripted runs and tests.
// It never produces pad input; it only logs and optionally stops the
// simulator after a number of updates.
type Backend struct {
	config     backend.Config
	maxUpdates int
	updates    int
	last       backend.View
	lastOutput mapping.Output
	seen       bool
}

// New returns a headless backend that requests quit after maxUpdates
// updates. Zero means never.
func New(maxUpdates int) *Backend {
	return &Backend{maxUpdates: maxUpdates}
}

func (h *Backend) Init(config backend.Config) error {
	h.config = config

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.LogLevel,
	})
	slog.SetDefault(slog.New(handler))

	slog.Info("Running headless mode", "max_updates", h.maxUpdates)
	return nil
}

// Update logs output changes and signals quit once the update budget is spent.
func (h *Backend) Update(view backend.View) ([]backend.InputEvent, error) {
	h.updates++
	h.last = view

	if !h.seen || view.Output != h.lastOutput {
		slog.Info("Output changed", "scan", view.Scans, "from", h.lastOutput, "to", view.Output)
		h.lastOutput = view.Output
		h.seen = true
	}

	if h.updates%10 == 0 {
		slog.Debug("Scan progress", "scans", view.Scans, "updates", h.updates)
	}

	if h.maxUpdates > 0 && h.updates >= h.maxUpdates {
		slog.Info("Headless execution completed", "updates", h.updates, "scans", view.Scans)
		return []backend.InputEvent{{Action: action.SimQuit, Type: event.Press}}, nil
	}
	return nil, nil
}

func (h *Backend) Cleanup() error {
	return nil
}

// Last returns the most recent view passed to Update.
func (h *Backend) Last() backend.View {
	return h.last
}

type reportLine struct {
	name string
	line hw.Line
	out  mapping.Output
}

// Report writes the host line levels of view as a table.
func Report(w io.Writer, view backend.View) error {
	if _, err := fmt.Fprintf(w, "scans: %d  pad: %v  connected: %v\n", view.Scans, view.Pad, view.Connected); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "snapshots: %08b %08b %08b\n",
		view.Snapshots[0], view.Snapshots[1], view.Snapshots[2]); err != nil {
		return err
	}

	lines := []reportLine{
		{"Up", hw.OutUp, mapping.Up},
		{"Down", hw.OutDown, mapping.Down},
		{"Left", hw.OutLeft, mapping.Left},
		{"Right", hw.OutRight, mapping.Right},
	}
	for _, s := range mapping.Default.Buttons {
		lines = append(lines, reportLine{s.Name, s.Line, s.Output})
	}

	for _, l := range lines {
		level := "H"
		if view.Latches[l.line.Port]&l.line.Mask() == 0 {
			level = "L"
		}
		state := "released"
		if view.Output.Has(l.out) {
			state = "asserted"
		}
		if _, err := fmt.Fprintf(w, "%-6s %-4v %s %s\n", l.name, l.line, level, state); err != nil {
			return err
		}
	}
	return nil
}
