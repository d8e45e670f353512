package app

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/drawer/internal/config"
	"github.com/llehouerou/drawer/internal/keymap"
	"github.com/llehouerou/drawer/internal/position"
	"github.com/llehouerou/drawer/internal/ui/sheet"
)

// Options are the command line choices that are not part of the config.
type Options struct {
	ConfigPath  string // -config, empty for the layered lookup
	ContentPath string // -content, empty for the introduction
	Modal       bool
	// Now is the animation clock; nil uses time.Now.
	Now func() time.Time
}

// Model is the root application model.
type Model struct {
	Sheet    sheet.Model
	Keys     *keymap.Resolver
	Help     help.Model
	Config   *config.Config
	Content  Content
	ShowHelp bool

	StatusMsg string
	ErrorMsg  string
	Width     int
	Height    int

	opts          Options
	presets       []position.Set
	preset        int
	watcher       *config.Watcher
	renderedWidth int
}

// extraPresets follow the configured positions when cycling with p.
var extraPresets = []position.Set{
	position.FromFractions(0.1, 0.5, 0.95),
	position.FromFractions(0.25, 0.75),
	position.FromFractions(0.15, 0.35, 0.55, 0.75, 0.95),
}

// New creates the application model from configuration.
func New(cfg *config.Config, opts Options) Model {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	m := Model{
		Sheet:   sheet.New(sheetConfig(cfg, opts)),
		Keys:    keymap.NewResolver(keymap.Bindings),
		Help:    help.New(),
		Config:  cfg,
		Content: DefaultContent(),
		opts:    opts,
		presets: append([]position.Set{cfg.Positions()}, extraPresets...),
	}
	m.Keys.SetEnabled(keymap.ActionTap, m.Sheet.Controller().TapToExpand())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.Sheet.Init(), m.WatchConfigCmd()}
	if m.opts.ContentPath != "" {
		cmds = append(cmds, LoadContentCmd(m.opts.ContentPath))
	}
	return tea.Batch(cmds...)
}

// StartWatching hot reloads the files the configuration came from.
func (m *Model) StartWatching() error {
	paths := m.Config.Sources
	if m.opts.ConfigPath != "" {
		paths = []string{m.opts.ConfigPath}
	}
	if len(paths) == 0 {
		return nil
	}
	w, err := config.NewWatcher(paths)
	if err != nil {
		return err
	}
	m.watcher = w
	log.Printf("watching %v", paths)
	return nil
}

// Close releases the configuration watcher.
func (m Model) Close() {
	if m.watcher != nil {
		_ = m.watcher.Close()
	}
}

// Preset returns the index of the active position preset; 0 is the
// configured set.
func (m Model) Preset() int {
	return m.preset
}
