package input

import (
	"time"

	"github.com/valerio/go-saturnpad/saturnpad/input/action"
	"github.com/valerio/go-saturnpad/saturnpad/input/event"
	"github.com/valerio/go-saturnpad/saturnpad/pad"
)

const (
	// debounceDuration is the minimum time between two presses of the same
	// simulator control. Pad buttons are never debounced.
	debounceDuration = 300 * time.Millisecond
)

// Manager routes actions: pad buttons go straight to the pad, everything
// else to registered callbacks.
type Manager struct {
	handlers      map[action.Action]map[event.Type][]func()
	lastTriggered map[action.Action]time.Time
	pad           *pad.Pad
	now           func() time.Time
}

func NewManager(p *pad.Pad) *Manager {
	return &Manager{
		handlers:      make(map[action.Action]map[event.Type][]func()),
		lastTriggered: make(map[action.Action]time.Time),
		pad:           p,
		now:           time.Now,
	}
}

// On registers a callback for a specific action and event type
func (m *Manager) On(act action.Action, evt event.Type, callback func()) {
	if m.handlers[act] == nil {
		m.handlers[act] = make(map[event.Type][]func())
	}
	m.handlers[act][evt] = append(m.handlers[act][evt], callback)
}

// Trigger handles the given action and event type.
func (m *Manager) Trigger(act action.Action, evt event.Type) {
	if btn, ok := action.PadButton(act); ok {
		if m.pad == nil {
			return
		}
		switch evt {
		case event.Press, event.Hold:
			m.pad.Press(btn)
		case event.Release:
			m.pad.Release(btn)
		}
		return
	}

	if evt == event.Press {
		now := m.now()
		if last, ok := m.lastTriggered[act]; ok && now.Sub(last) < debounceDuration {
			return
		}
		m.lastTriggered[act] = now
	}

	for _, callback := range m.handlers[act][evt] {
		callback()
	}
}
