package terminal

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/valerio/go-saturnpad/saturnpad/backend"
	"github.com/valerio/go-saturnpad/saturnpad/backend/terminal/render"
	"github.com/valerio/go-saturnpad/saturnpad/hw"
	"github.com/valerio/go-saturnpad/saturnpad/input"
	"github.com/valerio/go-saturnpad/saturnpad/input/action"
	"github.com/valerio/go-saturnpad/saturnpad/input/event"
	"github.com/valerio/go-saturnpad/saturnpad/mapping"
	"github.com/valerio/go-saturnpad/saturnpad/pad"
	"github.com/valerio/go-saturnpad/saturnpad/scan"
)

const (
	minTermWidth = 60
	// Host line rows end at row 16; help and log rows take the last eight.
	minTermHeight = 26

	// Terminals report key repeats but never key releases. A pad button is
	// held for as long as repeats keep arriving within keyTimeout.
	keyTimeout = 150 * time.Millisecond
)

// Backend implements the Backend interface using tcell for terminal rendering
type Backend struct {
	screen     tcell.Screen
	config     backend.Config
	logBuffer  *render.LogBuffer
	signals    chan os.Signal
	eventQueue []backend.InputEvent

	keyStates  map[action.Action]time.Time // Last time each pad key was seen
	activeKeys map[action.Action]bool      // Pad keys held at the previous update

	now func() time.Time
}

// New creates a new terminal backend on the process' terminal.
func New() *Backend {
	return &Backend{now: time.Now}
}

// NewWithScreen creates a backend drawing on an existing screen, e.g. a
// tcell simulation screen.
func NewWithScreen(screen tcell.Screen) *Backend {
	return &Backend{screen: screen, now: time.Now}
}

// Init initializes the terminal backend
func (t *Backend) Init(config backend.Config) error {
	t.config = config
	t.keyStates = make(map[action.Action]time.Time)
	t.activeKeys = make(map[action.Action]bool)

	if t.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to initialize terminal: %w", err)
		}
		t.screen = screen
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}

	t.logBuffer = render.NewLogBuffer(100)
	slog.SetDefault(slog.New(render.NewHandler(t.logBuffer, config.LogLevel)))

	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()

	t.signals = make(chan os.Signal, 1)
	signal.Notify(t.signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	slog.Info("Terminal backend initialized")
	return nil
}

// Update renders the view and returns the input gathered since last call.
func (t *Backend) Update(view backend.View) ([]backend.InputEvent, error) {
	now := t.now()

	for t.screen.HasPendingEvent() {
		switch ev := t.screen.PollEvent().(type) {
		case *tcell.EventKey:
			t.processKeyEvent(ev, now)
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}

	select {
	case sig := <-t.signals:
		slog.Info("Received signal", "signal", sig)
		t.eventQueue = append(t.eventQueue, backend.InputEvent{Action: action.SimQuit, Type: event.Press})
	default:
	}

	events := t.padEvents(now)
	events = append(events, t.eventQueue...)
	t.eventQueue = nil

	t.render(view)
	t.screen.Show()

	return events, nil
}

// Cleanup cleans up terminal resources
func (t *Backend) Cleanup() error {
	if t.signals != nil {
		signal.Stop(t.signals)
	}
	if t.screen != nil {
		t.screen.Fini()
	}
	return nil
}

// padEvents turns the key timestamps into Press/Hold/Release events.
func (t *Backend) padEvents(now time.Time) []backend.InputEvent {
	var events []backend.InputEvent
	current := make(map[action.Action]bool)

	for act, last := range t.keyStates {
		if now.Sub(last) >= keyTimeout {
			delete(t.keyStates, act)
			continue
		}
		current[act] = true
		if t.activeKeys[act] {
			events = append(events, backend.InputEvent{Action: act, Type: event.Hold})
		} else {
			events = append(events, backend.InputEvent{Action: act, Type: event.Press})
		}
	}

	for act := range t.activeKeys {
		if !current[act] {
			events = append(events, backend.InputEvent{Action: act, Type: event.Release})
		}
	}

	t.activeKeys = current
	return events
}

func (t *Backend) processKeyEvent(ev *tcell.EventKey, now time.Time) {
	if ev.Key() == tcell.KeyCtrlC {
		t.eventQueue = append(t.eventQueue, backend.InputEvent{Action: action.SimQuit, Type: event.Press})
		return
	}

	name := keyName(ev)
	act, ok := input.GetDefaultMapping(name)
	if !ok {
		return
	}

	info := action.GetInfo(act)
	slog.Debug("Key event", "key", name, "action", info.Description)

	if info.Category == action.CategoryPad {
		t.keyStates[act] = now
		return
	}
	t.eventQueue = append(t.eventQueue, backend.InputEvent{Action: act, Type: event.Press})
}

// keyName converts a tcell key event to the names used by input.DefaultKeyMap.
func keyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "Up"
	case tcell.KeyDown:
		return "Down"
	case tcell.KeyLeft:
		return "Left"
	case tcell.KeyRight:
		return "Right"
	case tcell.KeyEnter:
		return "Enter"
	case tcell.KeyEscape:
		return "Escape"
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return "Space"
		}
		return string(ev.Rune())
	}
	return ""
}

var (
	styleDefault  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleTitle    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleActive   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
	styleWarning  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	padLayout     = []pad.Button{pad.Up, pad.Down, pad.Left, pad.Right, pad.A, pad.B, pad.C, pad.X, pad.Y, pad.Z, pad.L, pad.R, pad.Start}
	phaseCaptions = [scan.NumPhases]string{"Z Y X R", "U D L R", "B C A St"}
)

func (t *Backend) render(view backend.View) {
	t.screen.Clear()

	w, h := t.screen.Size()
	if w < minTermWidth || h < minTermHeight {
		t.drawText(0, h/2, styleWarning, fmt.Sprintf("Terminal too small! Need at least %dx%d", minTermWidth, minTermHeight))
		return
	}

	title := " " + t.config.Title + " "
	if view.Paused {
		title += "[PAUSED] "
	}
	if !view.Connected {
		title += "[UNPLUGGED] "
	}
	t.drawText(1, 0, styleTitle, title)
	t.drawText(w-20, 0, styleDim, fmt.Sprintf("scans %d", view.Scans))

	t.drawText(1, 2, styleTitle, "Saturn pad")
	x := 1
	for _, b := range padLayout {
		style := styleDim
		if view.Pad&b != 0 {
			style = styleActive
		}
		label := b.String()
		t.drawText(x, 3, style, label)
		x += len(label) + 1
	}

	t.drawText(1, 5, styleTitle, "Bus snapshots")
	for p := scan.Phase0; p < scan.NumPhases; p++ {
		t.drawText(1, 6+int(p), styleDefault,
			fmt.Sprintf("%-7s %08b  %s", p, view.Snapshots[p], phaseCaptions[p]))
	}

	t.drawText(1, 10, styleTitle, "Host lines")
	t.drawLines(view, 11)

	t.drawText(1, h-8, styleDim, "arrows/wasd d-pad  j k l = A B C  u i o = X Y Z  e r = L R  enter start")
	t.drawText(1, h-7, styleDim, "space pause  p unplug  c release all  q quit")

	for i, entry := range t.logBuffer.Recent(5) {
		t.drawText(1, h-5+i, styleDefault, render.FormatLogEntry(entry))
	}
}

func (t *Backend) drawLines(view backend.View, y int) {
	type row struct {
		name string
		line hw.Line
		out  mapping.Output
	}
	rows := []row{
		{"Up", hw.OutUp, mapping.Up},
		{"Down", hw.OutDown, mapping.Down},
		{"Left", hw.OutLeft, mapping.Left},
		{"Right", hw.OutRight, mapping.Right},
	}
	for _, s := range mapping.Default.Buttons {
		rows = append(rows, row{s.Name, s.Line, s.Output})
	}

	// Two columns of six.
	for i, r := range rows {
		col, line := i/6, i%6
		level := 'H'
		if view.Latches[r.line.Port]&r.line.Mask() == 0 {
			level = 'L'
		}
		style := styleDim
		if view.Output.Has(r.out) {
			style = styleActive
		}
		t.drawText(1+col*24, y+line, style, fmt.Sprintf("%-6s %v %c", r.name, r.line, level))
	}
}

func (t *Backend) drawText(x, y int, style tcell.Style, text string) {
	for i, ch := range text {
		t.screen.SetContent(x+i, y, ch, nil, style)
	}
}
