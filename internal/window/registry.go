package window

import (
	"sync"

	"fyne.io/fyne/v2"
)

// Main is the well-known name of the application's primary window.
const Main = "main"

// Registry tracks the application's top-level windows by name so that
// components like the shortcut binder can resolve them without holding a
// reference to the whole application.
type Registry struct {
	mu      sync.RWMutex
	windows map[string]fyne.Window
}

func NewRegistry() *Registry {
	return &Registry{
		windows: make(map[string]fyne.Window),
	}
}

func (r *Registry) Add(name string, win fyne.Window) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.windows[name] = win
}

func (r *Registry) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.windows, name)
}

// Lookup resolves a window by name. The second return reports whether the
// window exists; during startup and teardown it may legitimately not.
func (r *Registry) Lookup(name string) (fyne.Window, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	win, ok := r.windows[name]
	return win, ok
}
