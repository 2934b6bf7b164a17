package app

import (
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"flack/internal/config"
	"flack/internal/logger"
	"flack/internal/shutdown"
)

func TestQuitOnShutdownEndsEventLoop(t *testing.T) {
	m := shutdown.NewManager(logger.Nop())

	quit := make(chan struct{})
	quitOnShutdown(m.Done(), func() { close(quit) })

	m.Shutdown()

	select {
	case <-quit:
	case <-time.After(time.Second):
		t.Fatal("quit not invoked after shutdown completed")
	}
}

func TestSaveWindowStateWindowed(t *testing.T) {
	win := test.NewWindow(nil)
	path := filepath.Join(t.TempDir(), "config.toml")
	a := &Application{
		main:    win,
		cfg:     config.Default(),
		cfgPath: path,
		logger:  logger.Nop(),
	}

	a.saveWindowState()

	saved, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if saved.Window.Fullscreen {
		t.Error("Fullscreen = true, want false")
	}
	size := win.Canvas().Size()
	if saved.Window.Width != size.Width || saved.Window.Height != size.Height {
		t.Errorf("saved geometry = %gx%g, want canvas size %gx%g",
			saved.Window.Width, saved.Window.Height, size.Width, size.Height)
	}
}

func TestSaveWindowStateFullscreenKeepsWindowedGeometry(t *testing.T) {
	win := test.NewWindow(nil)
	win.SetFullScreen(true)

	cfg := config.Default()
	cfg.Window.Width = 1280
	cfg.Window.Height = 800

	path := filepath.Join(t.TempDir(), "config.toml")
	a := &Application{
		main:    win,
		cfg:     cfg,
		cfgPath: path,
		logger:  logger.Nop(),
	}

	a.saveWindowState()

	saved, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !saved.Window.Fullscreen {
		t.Error("Fullscreen = false, want true")
	}
	if saved.Window.Width != 1280 || saved.Window.Height != 800 {
		t.Errorf("saved geometry = %gx%g, want last windowed 1280x800",
			saved.Window.Width, saved.Window.Height)
	}
}
