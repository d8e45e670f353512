package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "sheet", "settings"
}

// Bindings contains all key bindings, in help order.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},

	// Sheet
	{ActionNext, []string{"k", "up"}, "Next position", "sheet"},
	{ActionPrevious, []string{"j", "down"}, "Previous position", "sheet"},
	{ActionExpand, []string{"e"}, "Expand", "sheet"},
	{ActionCollapse, []string{"c"}, "Collapse", "sheet"},
	{ActionTap, []string{" "}, "Tap header", "sheet"},

	// Settings
	{ActionToggleDrag, []string{"d"}, "Toggle dragging", "settings"},
	{ActionCyclePresets, []string{"p"}, "Cycle position presets", "settings"},
}

// Contexts lists binding contexts in help order.
var Contexts = []string{"sheet", "settings", "global"}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, b := range Bindings {
		if b.Context == context {
			result = append(result, b)
		}
	}
	return result
}

// Key converts b into a bubbles key binding.
func (b Binding) Key() key.Binding {
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(helpKeys(b.Keys), b.Description),
	)
}

func helpKeys(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	return strings.Join(names, "/")
}
