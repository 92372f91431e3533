package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/valerio/go-saturnpad/saturnpad/input/action"
	"github.com/valerio/go-saturnpad/saturnpad/input/event"
	"github.com/valerio/go-saturnpad/saturnpad/pad"
)

// fakeClock lets tests step time without sleeping.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }
func newTestManager(p *pad.Pad) (*Manager, *fakeClock) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	m := NewManager(p)
	m.now = clock.now
	return m, clock
}

func TestManager_PadButtons(t *testing.T) {
	p := pad.New()
	m, _ := newTestManager(p)

	m.Trigger(action.PadA, event.Press)
	m.Trigger(action.PadUp, event.Hold)
	assert.Equal(t, pad.A|pad.Up, p.Down())

	m.Trigger(action.PadA, event.Release)
	assert.Equal(t, pad.Up, p.Down())
}

func TestManager_PadButtonsNotDebounced(t *testing.T) {
	p := pad.New()
	m, _ := newTestManager(p)

	for i := 0; i < 3; i++ {
		m.Trigger(action.PadB, event.Press)
		assert.Equal(t, pad.B, p.Down())
		m.Trigger(action.PadB, event.Release)
		assert.Zero(t, p.Down())
	}
}

func TestManager_Debouncing(t *testing.T) {
	tests := []struct {
		name        string
		timeBetween time.Duration
		expected    int
	}{
		{"rapid press is debounced", 100 * time.Millisecond, 1},
		{"slow press is not debounced", 400 * time.Millisecond, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, clock := newTestManager(pad.New())
			calls := 0
			m.On(action.SimPauseToggle, event.Press, func() { calls++ })

			m.Trigger(action.SimPauseToggle, event.Press)
			clock.advance(tt.timeBetween)
			m.Trigger(action.SimPauseToggle, event.Press)

			assert.Equal(t, tt.expected, calls)
		})
	}
}

func TestManager_MultipleActions(t *testing.T) {
	m, _ := newTestManager(pad.New())
	var got []action.Action
	m.On(action.SimPauseToggle, event.Press, func() { got = append(got, action.SimPauseToggle) })
	m.On(action.SimQuit, event.Press, func() { got = append(got, action.SimQuit) })

	m.Trigger(action.SimPauseToggle, event.Press)
	m.Trigger(action.SimQuit, event.Press)
	m.Trigger(action.SimPauseToggle, event.Press)

	assert.Equal(t, []action.Action{action.SimPauseToggle, action.SimQuit}, got)
}

func TestDefaultKeyMap(t *testing.T) {
	act, ok := GetDefaultMapping("Enter")
	assert.True(t, ok)
	assert.Equal(t, action.PadStart, act)

	_, ok = GetDefaultMapping("F13")
	assert.False(t, ok)

	// Every pad button must be reachable from the keyboard.
	reachable := pad.Button(0)
	for _, act := range DefaultKeyMap {
		if b, ok := action.PadButton(act); ok {
			reachable |= b
		}
	}
	assert.Equal(t, pad.Button(1<<pad.NumButtons-1), reachable)
}

func TestActionInfo(t *testing.T) {
	assert.Equal(t, action.CategoryPad, action.GetInfo(action.PadL).Category)
	assert.Equal(t, "Pad L", action.GetInfo(action.PadL).Description)
	assert.Equal(t, action.CategorySimulator, action.GetInfo(action.SimQuit).Category)
}
