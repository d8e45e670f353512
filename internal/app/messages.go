// Package app is the demo host: a static map with a draggable sheet on top.
package app

import (
	"github.com/llehouerou/drawer/internal/config"
	"github.com/llehouerou/drawer/internal/errmsg"
)

// ConfigChangedMsg is sent when a watched configuration file changes.
type ConfigChangedMsg struct {
	Path string
}

// ConfigLoadedMsg carries a freshly reloaded configuration.
type ConfigLoadedMsg struct {
	Config *config.Config
}

// ContentLoadedMsg carries the text shown inside the sheet.
type ContentLoadedMsg struct {
	Content Content
}

// ErrorMsg reports a failed operation to the status line.
type ErrorMsg struct {
	Op      errmsg.Op
	Context string
	Err     error
}

func (e ErrorMsg) String() string {
	return errmsg.FormatWith(e.Op, e.Context, e.Err)
}
