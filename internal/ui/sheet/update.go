package sheet

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/drawer/internal/drawer"
	"github.com/llehouerou/drawer/internal/gesture"
	"github.com/llehouerou/drawer/internal/ui/layout"
)

// Update handles window size, animation frames and mouse input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case FrameMsg:
		m.state.ticking = false
		if m.ctrl.Advance(msg.Time) {
			m.state.ticking = true
			return m, m.after(m.tick())
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, m.after(nil)
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.wheel(msg.Y, -m.content.MouseWheelDelta)
		case tea.MouseButtonWheelDown:
			m.wheel(msg.Y, m.content.MouseWheelDelta)
		case tea.MouseButtonLeft:
			m.press(msg.Y)
		default:
		}
	case tea.MouseActionMotion:
		if m.drag != dragNone {
			m.move(msg.Y)
		}
	case tea.MouseActionRelease:
		if m.drag != dragNone {
			m.release(msg.Y)
		}
	}
}

func (m *Model) wheel(y, lines int) {
	if m.drag != dragNone || y >= m.BottomRow() || !layout.InContent(y, m.Top(), m.cfg.HeaderHeight) {
		return
	}
	m.content.SetYOffset(m.content.YOffset + lines)
}

func (m *Model) press(y int) {
	top := m.Top()
	switch {
	case y < top || y >= m.BottomRow():
		if !m.cfg.Modal {
			return
		}
		m.drag = dragBackdrop
	case layout.InHeader(y, top, m.cfg.HeaderHeight):
		m.drag = dragHeader
	default:
		m.drag = dragContent
	}
	m.moved = false
	m.tracker.Press(m.scale.Points(float64(y)))
}

func (m *Model) move(y int) {
	s, ok := m.tracker.Move(m.scale.Points(float64(y)))
	if !ok {
		return
	}
	m.forward(s)
}

func (m *Model) release(y int) {
	s, ok := m.tracker.Release(m.scale.Points(float64(y)))
	target := m.drag
	m.drag = dragNone
	if !ok {
		return
	}

	if !m.moved && s.Delta == 0 {
		m.tap(target)
		return
	}
	if target == dragBackdrop {
		return
	}

	if s.Delta != 0 {
		m.drag = target
		m.forward(gesture.Sample{Phase: gesture.Changed, Delta: s.Delta, Velocity: s.Velocity})
		m.drag = dragNone
	}
	m.state.velocity = s.Velocity
	end := gesture.Sample{Phase: gesture.Ended, Velocity: s.Velocity}
	switch target {
	case dragHeader:
		m.ctrl.HandleSample(end)
	case dragContent:
		m.ctrl.RouteSample(end, m.nested())
	case dragNone, dragBackdrop:
	}
}

func (m *Model) tap(target dragTarget) {
	switch target {
	case dragHeader:
		m.ctrl.Tap()
	case dragBackdrop:
		m.ctrl.Collapse(true)
	case dragNone, dragContent:
	}
}

// forward hands a movement sample to the controller, opening the drag on
// the first one.
func (m *Model) forward(s gesture.Sample) {
	began := !m.moved
	m.moved = true

	switch m.drag {
	case dragHeader:
		if began {
			m.ctrl.HandleSample(gesture.Sample{Phase: gesture.Began})
		}
		m.ctrl.HandleSample(s)
	case dragContent:
		if began {
			m.ctrl.RouteSample(gesture.Sample{Phase: gesture.Began}, m.nested())
		}
		if m.ctrl.RouteSample(s, m.nested()) == drawer.OwnerContent {
			// dragging content down reveals the lines above
			rows := int(math.Round(m.scale.Rows(s.Delta)))
			m.content.SetYOffset(m.content.YOffset - rows)
		}
	case dragNone, dragBackdrop:
	}
}
