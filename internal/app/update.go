package app

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/drawer/internal/config"
	"github.com/llehouerou/drawer/internal/errmsg"
	"github.com/llehouerou/drawer/internal/keymap"
	"github.com/llehouerou/drawer/internal/position"
	"github.com/llehouerou/drawer/internal/ui/sheet"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.ShowHelp {
			return m, nil
		}
		var cmd tea.Cmd
		m.Sheet, cmd = m.Sheet.Update(msg)
		return m, cmd

	case sheet.FrameMsg:
		var cmd tea.Cmd
		m.Sheet, cmd = m.Sheet.Update(msg)
		return m, cmd

	case sheet.PositionChangedMsg:
		log.Printf("settled at %s", msg.Position)
		m.StatusMsg = "Settled at " + msg.Position.String()
		return m, nil

	case sheet.DraggedMsg:
		return m, nil

	case sheet.DismissedMsg:
		log.Printf("sheet dismissed")
		m.StatusMsg = "Dismissed, press e to present again"
		return m, nil

	case ContentLoadedMsg:
		m.Content = msg.Content
		m.refreshContent(true)
		return m, nil

	case ConfigChangedMsg:
		log.Printf("config changed: %s", msg.Path)
		return m, tea.Batch(ReloadConfigCmd(m.opts.ConfigPath), m.WatchConfigCmd())

	case ConfigLoadedMsg:
		log.Printf("config reloaded from %v", msg.Config.Sources)
		cmd := m.applyConfig(msg.Config)
		m.refreshContent(true)
		m.ErrorMsg = ""
		m.StatusMsg = "Configuration reloaded"
		return m, cmd

	case ErrorMsg:
		log.Print(msg.String())
		m.ErrorMsg = msg.String()
		return m, nil
	}

	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Help.Width = msg.Width

	var cmd tea.Cmd
	m.Sheet, cmd = m.Sheet.Update(msg)
	m.refreshContent(false)
	return m, cmd
}

// refreshContent renders the content into the sheet when the width changed
// or force is set.
func (m *Model) refreshContent(force bool) {
	width := m.Sheet.ContentWidth()
	if width == 0 || (!force && width == m.renderedWidth) {
		return
	}
	text, err := renderContent(m.Content, width)
	if err != nil {
		m.ErrorMsg = errmsg.FormatWith(errmsg.OpContentRender, m.Content.Name(), err)
		text = m.Content.Text
	}
	m.Sheet.SetContent(text)
	m.renderedWidth = width
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ShowHelp {
		switch msg.String() {
		case "esc", "?", "q":
			m.ShowHelp = false
		case "ctrl+c":
			m.Close()
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.Keys.Resolve(msg) {
	case keymap.ActionQuit:
		m.Close()
		return m, tea.Quit
	case keymap.ActionHelp:
		m.ShowHelp = true
	case keymap.ActionNext:
		cmd = m.Sheet.Next()
	case keymap.ActionPrevious:
		cmd = m.Sheet.Previous()
	case keymap.ActionExpand:
		if m.Sheet.Dismissed() {
			cmd = m.Sheet.Present()
			m.StatusMsg = ""
		} else {
			cmd = m.Sheet.Expand()
		}
	case keymap.ActionCollapse:
		cmd = m.Sheet.Collapse()
	case keymap.ActionTap:
		cmd = m.Sheet.Tap()
	case keymap.ActionToggleDrag:
		enabled := !m.Sheet.Controller().DragEnabled()
		cmd = m.Sheet.SetDragEnabled(enabled)
		m.StatusMsg = "Dragging " + onOff(enabled)
	case keymap.ActionCyclePresets:
		m.preset = (m.preset + 1) % len(m.presets)
		set := m.presets[m.preset]
		cmd = m.Sheet.SetPositions(set)
		m.StatusMsg = fmt.Sprintf("Positions %d/%d: %s", m.preset+1, len(m.presets), describeSet(set))
	}
	return m, cmd
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func describeSet(s position.Set) string {
	parts := make([]string, 0, s.Len())
	for _, p := range s.Sorted() {
		parts = append(parts, config.FormatPosition(p))
	}
	return strings.Join(parts, " ")
}
