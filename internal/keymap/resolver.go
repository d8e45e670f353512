package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type entry struct {
	action  Action
	binding key.Binding
}

// Resolver maps key presses to actions. It implements help.KeyMap.
type Resolver struct {
	entries []entry
	byCtx   map[string][]int
}

// NewResolver creates a resolver from bindings. When two bindings share a
// key the first one wins.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{byCtx: make(map[string][]int)}
	for i, b := range bindings {
		r.entries = append(r.entries, entry{action: b.Action, binding: b.Key()})
		r.byCtx[b.Context] = append(r.byCtx[b.Context], i)
	}
	return r
}

// Resolve returns the action for a key press, or empty string if not bound.
func (r *Resolver) Resolve(msg tea.KeyMsg) Action {
	for _, e := range r.entries {
		if key.Matches(msg, e.binding) {
			return e.action
		}
	}
	return ""
}

// KeysFor returns the keys bound to an action.
func (r *Resolver) KeysFor(action Action) []string {
	var keys []string
	for _, e := range r.entries {
		if e.action == action {
			keys = append(keys, e.binding.Keys()...)
		}
	}
	return dedupe(keys)
}

// SetEnabled enables or disables every binding of action.
func (r *Resolver) SetEnabled(action Action, enabled bool) {
	for i := range r.entries {
		if r.entries[i].action == action {
			r.entries[i].binding.SetEnabled(enabled)
		}
	}
}

// ShortHelp returns the bindings shown in the one-line help.
func (r *Resolver) ShortHelp() []key.Binding {
	var out []key.Binding
	for _, e := range r.entries {
		switch e.action {
		case ActionNext, ActionPrevious, ActionHelp, ActionQuit:
			if e.binding.Enabled() {
				out = append(out, e.binding)
			}
		}
	}
	return out
}

// FullHelp returns one column of bindings per context.
func (r *Resolver) FullHelp() [][]key.Binding {
	var out [][]key.Binding
	for _, ctx := range Contexts {
		var col []key.Binding
		for _, i := range r.byCtx[ctx] {
			if r.entries[i].binding.Enabled() {
				col = append(col, r.entries[i].binding)
			}
		}
		if len(col) > 0 {
			out = append(out, col)
		}
	}
	return out
}

// dedupe removes duplicate strings from a slice.
func dedupe(s []string) []string {
	if s == nil {
		return nil
	}
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
