package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/amishk599/careernav/internal/model"
)

var namedKeys = map[string]tea.KeyType{
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"backspace": tea.KeyBackspace,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"ctrl+c":    tea.KeyCtrlC,
	"ctrl+n":    tea.KeyCtrlN,
	"ctrl+b":    tea.KeyCtrlB,
	"ctrl+x":    tea.KeyCtrlX,
}

// key builds a KeyMsg for a named key, or a runes message for anything else.
func key(s string) tea.KeyMsg {
	if t, ok := namedKeys[s]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds keys to m in order and returns the final model and last command.
func press(m tea.Model, keys ...string) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(key(k))
	}
	return m, cmd
}

type captureRecorder struct {
	events []model.Event
}

func (c *captureRecorder) Record(ev model.Event) { c.events = append(c.events, ev) }

func (c *captureRecorder) kinds() []model.EventKind {
	out := make([]model.EventKind, 0, len(c.events))
	for _, ev := range c.events {
		out = append(out, ev.Kind)
	}
	return out
}

func (c *captureRecorder) last() model.Event {
	if len(c.events) == 0 {
		return model.Event{}
	}
	return c.events[len(c.events)-1]
}
