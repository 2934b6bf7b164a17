package app

import (
	"flack/internal/shortcut"
	"flack/internal/window"
)

// windowSource adapts the window registry to the shortcut binder's lookup
// interface. fyne.Window satisfies shortcut.Window directly through
// RequestFocus.
type windowSource struct {
	registry *window.Registry
}

func (s windowSource) Lookup(name string) (shortcut.Window, bool) {
	win, ok := s.registry.Lookup(name)
	if !ok {
		return nil, false
	}
	return win, true
}
