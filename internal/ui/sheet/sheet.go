// Package sheet renders a drawer.Controller as a bottom sheet in a Bubble Tea
// program and feeds it mouse drags.
package sheet

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/drawer/internal/drawer"
	"github.com/llehouerou/drawer/internal/gesture"
	"github.com/llehouerou/drawer/internal/position"
	"github.com/llehouerou/drawer/internal/ui/layout"
)

// DefaultHeaderHeight holds the handle, the title and a separator.
const DefaultHeaderHeight = 3

// DefaultFPS is the animation frame rate.
const DefaultFPS = 60

// Config configures the sheet.
type Config struct {
	Title          string
	HeaderHeight   int // rows below the top border
	CornerRadius   int // > 0 draws rounded corners
	BottomInset    int // rows at the bottom of the window kept clear
	PointsPerRow   float64
	VelocityWindow time.Duration
	FPS            int
	// Modal dims the view behind the sheet, collapses it on a tap outside
	// and dismisses it once it collapses after having been fully expanded.
	Modal  bool
	Drawer drawer.Options
}

// DefaultConfig returns the default sheet configuration.
func DefaultConfig() Config {
	return Config{
		HeaderHeight:   DefaultHeaderHeight,
		CornerRadius:   1,
		PointsPerRow:   layout.DefaultPointsPerRow,
		VelocityWindow: gesture.DefaultWindow,
		FPS:            DefaultFPS,
		Drawer:         drawer.DefaultOptions(),
	}
}

// FrameMsg advances the settle animation.
type FrameMsg struct {
	Time time.Time
}

// PositionChangedMsg is sent when the sheet settles at a position.
type PositionChangedMsg struct {
	Position position.Position
}

// DraggedMsg is sent for every drag movement applied to the sheet.
type DraggedMsg struct {
	Delta float64 // points, positive downward
}

// DismissedMsg is sent when a modal sheet collapses after being presented.
type DismissedMsg struct{}

type dragTarget int

const (
	dragNone dragTarget = iota
	dragHeader
	dragContent
	dragBackdrop
)

// shared is the state reached from controller callbacks; it survives the
// value copies Bubble Tea makes of the model.
type shared struct {
	pending   []tea.Msg
	ticking   bool
	presented bool
	dismissed bool
	velocity  float64
}

// Model is the sheet component.
type Model struct {
	cfg     Config
	scale   layout.Scale
	ctrl    *drawer.Controller
	tracker *gesture.Tracker
	content viewport.Model
	state   *shared
	ticker  func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

	width, height int
	drag          dragTarget
	moved         bool
}

// New creates a sheet resting at its lowest position.
func New(cfg Config) Model {
	if cfg.HeaderHeight < 0 {
		cfg.HeaderHeight = DefaultHeaderHeight
	}
	if cfg.BottomInset < 0 {
		cfg.BottomInset = 0
	}
	if cfg.FPS <= 0 {
		cfg.FPS = DefaultFPS
	}
	if cfg.Drawer.Now == nil {
		cfg.Drawer.Now = time.Now
	}

	m := Model{
		cfg:     cfg,
		scale:   layout.NewScale(cfg.PointsPerRow),
		ctrl:    drawer.New(cfg.Drawer),
		tracker: gesture.NewTracker(cfg.VelocityWindow, cfg.Drawer.Now),
		content: viewport.New(0, 0),
		state:   &shared{},
		ticker:  tea.Tick,
	}

	st := m.state
	ctrl := m.ctrl
	ctrl.OnPositionChanged(func(p position.Position) {
		st.pending = append(st.pending, PositionChangedMsg{Position: p})
		if !cfg.Modal {
			return
		}
		switch {
		case ctrl.Manager().IsMax(p):
			st.presented = true
		case ctrl.Manager().IsMin(p) && st.presented && !st.dismissed:
			st.dismissed = true
			st.pending = append(st.pending, DismissedMsg{})
		}
	})
	ctrl.OnDrag(func(delta float64) {
		st.pending = append(st.pending, DraggedMsg{Delta: delta})
	})
	return m
}

// Init presents a modal sheet.
func (m Model) Init() tea.Cmd {
	if m.cfg.Modal {
		return m.Present()
	}
	return nil
}

// Present expands the sheet with an animation, as a modal sheet does when
// it appears.
func (m Model) Present() tea.Cmd {
	m.state.dismissed = false
	m.ctrl.Expand(true)
	return m.after(nil)
}

// Controller exposes the underlying controller.
func (m Model) Controller() *drawer.Controller {
	return m.ctrl
}

// Config returns the sheet configuration.
func (m Model) Config() Config {
	return m.cfg
}

// Scale returns the rows to points conversion in use.
func (m Model) Scale() layout.Scale {
	return m.scale
}

// Dismissed reports whether a modal sheet has been dismissed.
func (m Model) Dismissed() bool {
	return m.state.dismissed
}

// LastVelocity returns the velocity of the last drag release in points
// per second.
func (m Model) LastVelocity() float64 {
	return m.state.velocity
}

// Top returns the first window row covered by the sheet.
func (m Model) Top() int {
	return layout.SheetTop(m.ctrl.FrameY(), m.height, m.scale)
}

// SetSize pushes the window size into the controller and lays out content.
func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
	m.ctrl.OnViewportChanged(m.scale.Geometry(width, height, m.cfg.BottomInset))
	m.layoutContent()
}

// SetContent replaces the text shown inside the sheet.
func (m *Model) SetContent(s string) {
	m.content.SetContent(s)
	m.content.GotoTop()
}

// ContentWidth returns the width available to content inside the border.
func (m Model) ContentWidth() int {
	return max(m.width-2, 0)
}

// ScrollOffset returns how many content lines are scrolled out of view.
func (m Model) ScrollOffset() int {
	return m.content.YOffset
}

// SetPosition moves the sheet to p with an animation.
func (m *Model) SetPosition(p position.Position) tea.Cmd {
	m.ctrl.SetPosition(p, true, nil)
	return m.after(nil)
}

// Expand animates to the highest position.
func (m *Model) Expand() tea.Cmd {
	m.ctrl.Expand(true)
	return m.after(nil)
}

// Collapse animates to the lowest position.
func (m *Model) Collapse() tea.Cmd {
	m.ctrl.Collapse(true)
	return m.after(nil)
}

// Next animates one position up.
func (m *Model) Next() tea.Cmd {
	return m.SetPosition(m.ctrl.Manager().Next(m.ctrl.Target()))
}

// Previous animates one position down.
func (m *Model) Previous() tea.Cmd {
	return m.SetPosition(m.ctrl.Manager().Previous(m.ctrl.Target()))
}

// Tap acts as a tap on the header.
func (m *Model) Tap() tea.Cmd {
	m.ctrl.Tap()
	return m.after(nil)
}

// SetDragEnabled toggles mouse dragging.
func (m *Model) SetDragEnabled(enabled bool) tea.Cmd {
	if !enabled {
		m.tracker.Cancel()
		m.drag = dragNone
	}
	m.ctrl.SetDragEnabled(enabled)
	return m.after(nil)
}

// SetPositions replaces the supported positions; the sheet snaps to the
// lowest one.
func (m *Model) SetPositions(s position.Set) tea.Cmd {
	m.ctrl.SetSupportedPositions(s)
	m.layoutContent()
	return m.after(nil)
}

// SetThresholds replaces the flick and nudge velocities.
func (m *Model) SetThresholds(t drawer.Thresholds) {
	m.ctrl.SetThresholds(t)
}

// SetTiming replaces the animation timing.
func (m *Model) SetTiming(t drawer.Timing) {
	m.ctrl.SetTiming(t)
}

// SetTapToExpand toggles header taps.
func (m *Model) SetTapToExpand(enabled bool) {
	m.ctrl.SetTapToExpand(enabled)
}

// SetHeader replaces the title and the header height in rows.
func (m *Model) SetHeader(title string, height int) {
	m.cfg.Title = title
	m.cfg.HeaderHeight = max(height, 0)
	m.layoutContent()
}

// SetCornerRadius switches between rounded (> 0) and square corners.
func (m *Model) SetCornerRadius(r int) {
	m.cfg.CornerRadius = r
}

// SetBottomInset keeps the last rows of the window clear of the sheet.
func (m *Model) SetBottomInset(rows int) {
	m.cfg.BottomInset = max(rows, 0)
	if m.width > 0 || m.height > 0 {
		m.SetSize(m.width, m.height)
	}
}

// BottomRow returns the first window row below the sheet.
func (m Model) BottomRow() int {
	return max(m.height-m.cfg.BottomInset, 0)
}

// Positions returns the supported positions.
func (m Model) Positions() position.Set {
	return m.ctrl.SupportedPositions()
}

func (m *Model) layoutContent() {
	rows := layout.SheetRows(m.ctrl.Manager().TotalHeight(), m.BottomRow(), m.scale)
	m.content.Width = m.ContentWidth()
	m.content.Height = layout.ContentHeight(rows, m.cfg.HeaderHeight)
	// re-clamp the offset to the new height
	m.content.SetYOffset(m.content.YOffset)
}

func (m Model) nested() drawer.NestedScroll {
	return drawer.NestedScroll{
		Scrollable: m.content.TotalLineCount() > m.content.Height,
		Offset:     float64(m.content.YOffset),
	}
}

func (m Model) frameInterval() time.Duration {
	return time.Second / time.Duration(m.cfg.FPS)
}

func (m Model) tick() tea.Cmd {
	return m.ticker(m.frameInterval(), func(t time.Time) tea.Msg {
		return FrameMsg{Time: t}
	})
}

// after schedules a frame when an animation started and turns controller
// notifications into messages.
func (m Model) after(cmd tea.Cmd) tea.Cmd {
	cmds := []tea.Cmd{cmd}
	if m.ctrl.Animating() && !m.state.ticking {
		m.state.ticking = true
		cmds = append(cmds, m.tick())
	}
	for _, msg := range m.state.pending {
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	m.state.pending = nil
	return tea.Batch(cmds...)
}
