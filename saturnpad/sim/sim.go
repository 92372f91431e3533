// Package sim runs the adapter against a simulated pad on the host.
package sim

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/valerio/go-saturnpad/saturnpad"
	"github.com/valerio/go-saturnpad/saturnpad/backend"
	"github.com/valerio/go-saturnpad/saturnpad/debug"
	"github.com/valerio/go-saturnpad/saturnpad/hw"
	"github.com/valerio/go-saturnpad/saturnpad/input"
	"github.com/valerio/go-saturnpad/saturnpad/input/action"
	"github.com/valerio/go-saturnpad/saturnpad/input/event"
	"github.com/valerio/go-saturnpad/saturnpad/mapping"
	"github.com/valerio/go-saturnpad/saturnpad/pad"
	"github.com/valerio/go-saturnpad/saturnpad/scan"
	"github.com/valerio/go-saturnpad/saturnpad/timing"
)

const (
	// DefaultRefresh is the number of scans between two backend updates,
	// roughly 50 Hz at the real tick rate.
	DefaultRefresh = 100

	pausedPollInterval = 20 * time.Millisecond
)

// Config holds the simulator settings.
type Config struct {
	Title    string
	LogLevel slog.Level

	Scans        uint64     // stop after this many scans, 0 runs until quit
	RefreshEvery int        // scans per backend update
	Trace        bool       // dump every scan at debug level
	Press        pad.Button // buttons held from the start
	Unplugged    bool
}

// Simulator wires a memory board, a simulated pad and the adapter together
// and presents the result through a backend.
type Simulator struct {
	config  Config
	board   *hw.Board
	pad     *pad.Pad
	adapter *saturnpad.Adapter
	backend backend.Backend
	input   *input.Manager

	scans   uint64
	reads   scan.Snapshots
	output  mapping.Output
	synced  bool
	paused  bool
	running bool
}

// New returns a simulator paced by ticks and presented by be.
func New(config Config, ticks timing.TickSource, be backend.Backend) *Simulator {
	if config.RefreshEvery <= 0 {
		config.RefreshEvery = DefaultRefresh
	}

	board := hw.NewMemoryBoard()
	p := pad.New()
	p.Set(config.Press)
	p.Connected = !config.Unplugged
	pad.Attach(board, p)

	s := &Simulator{
		config:  config,
		board:   board,
		pad:     p,
		adapter: saturnpad.New(board, ticks),
		backend: be,
		input:   input.NewManager(p),
	}
	s.registerControls()
	return s
}

func (s *Simulator) registerControls() {
	s.input.On(action.SimQuit, event.Press, func() {
		slog.Info("Quit requested")
		s.running = false
	})
	s.input.On(action.SimPauseToggle, event.Press, func() {
		s.paused = !s.paused
		slog.Info("Pause toggled", "paused", s.paused)
	})
	s.input.On(action.SimUnplugToggle, event.Press, func() {
		s.pad.Connected = !s.pad.Connected
		slog.Info("Pad plug toggled", "connected", s.pad.Connected)
	})
	s.input.On(action.SimReleaseAll, event.Press, func() {
		s.pad.Set(0)
		slog.Info("All buttons released")
	})
}

// Pad returns the simulated pad.
func (s *Simulator) Pad() *pad.Pad {
	return s.pad
}

// Board returns the simulated board.
func (s *Simulator) Board() *hw.Board {
	return s.board
}

// RunScans runs n full scans. The first call aligns to a tick first.
func (s *Simulator) RunScans(n int) {
	if !s.synced {
		s.adapter.Sync()
		s.synced = true
	}

	for i := 0; i < n; i++ {
		s.reads = s.adapter.Step()
		s.scans++

		out := s.adapter.Output()
		if out != s.output {
			slog.Debug("Host lines changed", "scan", s.scans, "from", s.output, "to", out)
			s.output = out
		}

		if s.config.Trace {
			slog.Debug("Scan", "trace", debug.DumpScan(debug.ScanTrace{
				Scan:      s.scans,
				Snapshots: s.reads,
				Output:    out,
				Latches:   s.latches(),
			}))
		}
	}
}

func (s *Simulator) latches() [hw.NumPorts]uint8 {
	var l [hw.NumPorts]uint8
	for id := hw.PortID(0); id < hw.NumPorts; id++ {
		l[id] = s.board.Port(id).ReadBits()
	}
	return l
}

// View returns the simulator state as presented to backends.
func (s *Simulator) View() backend.View {
	return backend.View{
		Scans:     s.scans,
		Snapshots: s.reads,
		Output:    s.output,
		Latches:   s.latches(),
		Pad:       s.pad.Down(),
		Connected: s.pad.Connected,
		Paused:    s.paused,
	}
}

// Run drives the simulator until the backend asks to quit or the scan
// budget is spent.
func (s *Simulator) Run() error {
	if err := s.backend.Init(backend.Config{Title: s.config.Title, LogLevel: s.config.LogLevel}); err != nil {
		return fmt.Errorf("failed to initialize backend: %w", err)
	}
	defer func() {
		if err := s.backend.Cleanup(); err != nil {
			slog.Error("Failed to clean up backend", "error", err)
		}
	}()

	slog.Info("Simulator started", "scans", s.config.Scans, "refresh", s.config.RefreshEvery,
		"pad", s.pad.Down(), "connected", s.pad.Connected)

	s.running = true
	for s.running {
		if !s.paused {
			s.RunScans(s.batch())
		}

		events, err := s.backend.Update(s.View())
		if err != nil {
			return fmt.Errorf("backend update failed: %w", err)
		}
		for _, ev := range events {
			s.input.Trigger(ev.Action, ev.Type)
		}

		if s.config.Scans > 0 && s.scans >= s.config.Scans {
			s.running = false
		}
		if s.running && s.paused {
			time.Sleep(pausedPollInterval)
		}
	}

	slog.Info("Simulator stopped", "scans", s.scans, "output", s.output)
	return nil
}

// batch is the number of scans to run before the next update.
func (s *Simulator) batch() int {
	n := s.config.RefreshEvery
	if s.config.Scans > 0 {
		if left := s.config.Scans - s.scans; left < uint64(n) {
			n = int(left)
		}
	}
	return n
}
