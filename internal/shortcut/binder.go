package shortcut

import (
	"fmt"

	"flack/internal/logger"
)

const component = "ShortcutBinder"

// Window is the subset of window behavior the binder needs: a focus request
// that must not block. Whether the request takes effect is not observable
// here and is not tracked.
type Window interface {
	RequestFocus()
}

// WindowSource resolves named windows. The lookup is fallible: during
// startup and teardown the main window may legitimately not exist.
type WindowSource interface {
	Lookup(name string) (Window, bool)
}

// Registry is the operating system's global-hotkey facility. Register
// returns an error when the combination cannot be claimed, e.g. because
// another process owns it.
type Registry interface {
	Register(combo Combination, fn func()) error
}

// Binding records one live shortcut registration. It is retained by the
// application for the rest of the process lifetime; there is no teardown
// path short of process exit.
type Binding struct {
	Combination Combination
	WindowName  string
}

// BindFocus looks up the named window and registers combo so that every
// trigger requests focus for it. A missing window is not an error: the
// binding is skipped and startup continues without a shortcut. A registry
// error aborts startup and is returned to the caller.
func BindFocus(src WindowSource, reg Registry, name string, combo Combination, log logger.Logger) (*Binding, error) {
	win, ok := src.Lookup(name)
	if !ok {
		log.Warning(component, "window not found, skipping shortcut registration", map[string]interface{}{
			"window": name,
		})
		return nil, nil
	}

	// The callback captures the handle resolved here and keeps using it for
	// the life of the process, even if the window is closed later.
	if err := reg.Register(combo, win.RequestFocus); err != nil {
		return nil, fmt.Errorf("shortcut: bind %s to window %q: %w", combo, name, err)
	}

	log.Info(component, "global shortcut bound", map[string]interface{}{
		"window":      name,
		"combination": combo.String(),
	})
	return &Binding{Combination: combo, WindowName: name}, nil
}
