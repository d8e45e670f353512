package app

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/drawer/internal/config"
	"github.com/llehouerou/drawer/internal/errmsg"
)

// LoadContentCmd reads path for display inside the sheet.
func LoadContentCmd(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return ErrorMsg{Op: errmsg.OpContentLoad, Context: path, Err: err}
		}
		return ContentLoadedMsg{Content: Content{
			Path: path,
			Text: string(data),
			Size: int64(len(data)),
		}}
	}
}

// ReloadConfigCmd loads the configuration again; explicit is the -config
// path or empty.
func ReloadConfigCmd(explicit string) tea.Cmd {
	return func() tea.Msg {
		cfg, err := config.Load(explicit)
		if err != nil {
			return ErrorMsg{Op: errmsg.OpConfigLoad, Err: err}
		}
		return ConfigLoadedMsg{Config: cfg}
	}
}

// WatchConfigCmd waits for the next configuration change. It must be
// issued again after every ConfigChangedMsg.
func (m Model) WatchConfigCmd() tea.Cmd {
	w := m.watcher
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		path, err := w.Next(context.Background())
		if errors.Is(err, config.ErrWatcherClosed) {
			return nil
		}
		if err != nil {
			return ErrorMsg{Op: errmsg.OpConfigWatch, Err: err}
		}
		return ConfigChangedMsg{Path: path}
	}
}
