package hotkey

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	hk "golang.design/x/hotkey"

	"flack/internal/logger"
	"flack/internal/shortcut"
)

const component = "HotkeyRegistry"

type binding struct {
	id   string
	hk   *hk.Hotkey
	done chan struct{}
}

// Registry claims key combinations with the operating system's global-hotkey
// facility and dispatches trigger events to callbacks. Each live binding is
// serviced by its own goroutine; callbacks must not block.
type Registry struct {
	logger logger.Logger

	mu       sync.Mutex
	bindings []*binding
	closed   bool
}

func NewRegistry(log logger.Logger) *Registry {
	return &Registry{logger: log}
}

// Register claims combo system-wide and invokes fn on every trigger,
// regardless of which application has input focus. The claim is made
// synchronously so a combination owned by another process surfaces as an
// error here, at startup, not later.
func (r *Registry) Register(combo shortcut.Combination, fn func()) error {
	mods, err := platformModifiers(combo.Mods)
	if err != nil {
		return err
	}
	key, err := keyFor(combo.Key)
	if err != nil {
		return err
	}

	h := hk.New(mods, key)
	if err := h.Register(); err != nil {
		return fmt.Errorf("hotkey: register %s: %w", combo, err)
	}

	b := &binding{id: uuid.NewString(), hk: h, done: make(chan struct{})}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		h.Unregister()
		return fmt.Errorf("hotkey: registry closed")
	}
	r.bindings = append(r.bindings, b)
	r.mu.Unlock()

	go dispatch(b.done, b.hk.Keydown(), fn)

	r.logger.Info(component, "global hotkey claimed", map[string]interface{}{
		"binding_id":  b.id,
		"combination": combo.String(),
	})
	return nil
}

func dispatch(done <-chan struct{}, events <-chan hk.Event, fn func()) {
	for {
		select {
		case <-done:
			return
		case <-events:
			// An event can be pending at the moment the binding is
			// released; re-check so no callback fires after close.
			select {
			case <-done:
				return
			default:
			}
			fn()
		}
	}
}

// Close releases every live claim with the operating system. Safe to call
// more than once.
func (r *Registry) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	bindings := r.bindings
	r.bindings = nil
	r.mu.Unlock()

	for _, b := range bindings {
		b.hk.Unregister()
		close(b.done)
		r.logger.Debug(component, "global hotkey released", map[string]interface{}{
			"binding_id": b.id,
		})
	}
}
