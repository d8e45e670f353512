package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/drawer/internal/config"
	"github.com/llehouerou/drawer/internal/drawer"
	"github.com/llehouerou/drawer/internal/keymap"
	"github.com/llehouerou/drawer/internal/ui/sheet"
)

// sheetConfig maps the file configuration onto the sheet.
func sheetConfig(cfg *config.Config, opts Options) sheet.Config {
	s := cfg.GetSheetConfig()
	g := cfg.GetGestureConfig()
	a := cfg.GetAnimationConfig()

	sc := sheet.DefaultConfig()
	sc.Title = s.Title
	sc.HeaderHeight = *s.HeaderHeight
	sc.CornerRadius = *s.CornerRadius
	sc.BottomInset = s.BottomInset
	sc.PointsPerRow = g.PointsPerRow
	sc.VelocityWindow = g.VelocityWindow()
	sc.FPS = a.FPS
	sc.Modal = opts.Modal
	sc.Drawer = drawer.Options{
		Positions:   cfg.Positions(),
		Thresholds:  drawer.Thresholds{Flick: g.FlickVelocity, Nudge: g.NudgeVelocity},
		Timing:      drawer.Timing{Min: a.MinDuration(), Max: a.MaxDuration()},
		DragEnabled: *s.DragEnabled,
		TapToExpand: *s.TapToExpand,
		// a dismissed modal sheet leaves the screen
		HidesOnCollapse: opts.Modal,
		Now:             opts.Now,
	}
	return sc
}

// applyConfig pushes a reloaded configuration into the running sheet. The
// row scale, velocity window and frame rate only apply on restart.
func (m *Model) applyConfig(cfg *config.Config) tea.Cmd {
	sc := sheetConfig(cfg, m.opts)
	m.Config = cfg

	m.Sheet.SetHeader(sc.Title, sc.HeaderHeight)
	m.Sheet.SetCornerRadius(sc.CornerRadius)
	m.Sheet.SetBottomInset(sc.BottomInset)
	m.Sheet.SetThresholds(sc.Drawer.Thresholds)
	m.Sheet.SetTiming(sc.Drawer.Timing)
	m.Sheet.SetTapToExpand(sc.Drawer.TapToExpand)
	m.Keys.SetEnabled(keymap.ActionTap, sc.Drawer.TapToExpand)

	var cmds []tea.Cmd
	if sc.Drawer.DragEnabled != m.Sheet.Controller().DragEnabled() {
		cmds = append(cmds, m.Sheet.SetDragEnabled(sc.Drawer.DragEnabled))
	}

	positions := cfg.Positions()
	if !positions.Equal(m.presets[0]) {
		m.presets[0] = positions
		if m.preset == 0 {
			cmds = append(cmds, m.Sheet.SetPositions(positions))
		}
	}
	return tea.Batch(cmds...)
}
