package testutil

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Component is a Bubble Tea component whose Update returns its own type.
type Component[M any] interface {
	Update(msg tea.Msg) (M, tea.Cmd)
	View() string
}

// Harness wraps a component for testing, providing helpers to simulate
// keyboard and mouse input and collect the commands it returns.
type Harness[M Component[M]] struct {
	model M
	cmds  []tea.Cmd
}

// NewHarness creates a test harness around m.
func NewHarness[M Component[M]](m M) *Harness[M] {
	return &Harness[M]{model: m}
}

// Model returns the component in its current state.
func (h *Harness[M]) Model() M {
	return h.model
}

// View returns the component's rendered content.
func (h *Harness[M]) View() string {
	return h.model.View()
}

// Send delivers msg to the component and returns the resulting command.
func (h *Harness[M]) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// Resize sends a window size message.
func (h *Harness[M]) Resize(width, height int) tea.Cmd {
	return h.Send(tea.WindowSizeMsg{Width: width, Height: height})
}

// Key simulates typing key. Named keys such as "up" or "space" are mapped
// to their key types.
func (h *Harness[M]) Key(key string) tea.Cmd {
	switch key {
	case "up":
		return h.Send(tea.KeyMsg{Type: tea.KeyUp})
	case "down":
		return h.Send(tea.KeyMsg{Type: tea.KeyDown})
	case "space":
		return h.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	case "esc":
		return h.Send(tea.KeyMsg{Type: tea.KeyEscape})
	case "ctrl+c":
		return h.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	}
	return h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// Press simulates pressing the left mouse button at cell (x, y).
func (h *Harness[M]) Press(x, y int) tea.Cmd {
	return h.Send(mouse(x, y, tea.MouseActionPress, tea.MouseButtonLeft))
}

// Motion simulates moving the mouse with the left button held.
func (h *Harness[M]) Motion(x, y int) tea.Cmd {
	return h.Send(mouse(x, y, tea.MouseActionMotion, tea.MouseButtonLeft))
}

// Release simulates releasing the mouse button at cell (x, y).
func (h *Harness[M]) Release(x, y int) tea.Cmd {
	return h.Send(mouse(x, y, tea.MouseActionRelease, tea.MouseButtonNone))
}

// Wheel simulates one wheel notch at (x, y); up scrolls towards the top.
func (h *Harness[M]) Wheel(x, y int, up bool) tea.Cmd {
	button := tea.MouseButtonWheelDown
	if up {
		button = tea.MouseButtonWheelUp
	}
	return h.Send(mouse(x, y, tea.MouseActionPress, button))
}

// Commands returns all commands collected since creation or last ClearCommands.
func (h *Harness[M]) Commands() []tea.Cmd {
	return h.cmds
}

// ClearCommands clears the collected commands.
func (h *Harness[M]) ClearCommands() {
	h.cmds = nil
}

// ViewContains checks if the rendered view contains the given substring.
func (h *Harness[M]) ViewContains(substr string) bool {
	return ContainsLine(h.View(), substr)
}

// ExecuteCmd runs a command and returns the resulting message. Batches are
// flattened into a slice of messages.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			if m := ExecuteCmd(c); m != nil {
				msgs = append(msgs, m)
			}
		}
		return msgs
	}
	return msg
}

func mouse(x, y int, action tea.MouseAction, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}
