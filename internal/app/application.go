package app

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"flack/internal/config"
	"flack/internal/logger"
	"flack/internal/menu"
	"flack/internal/shortcut"
	"flack/internal/shortcut/hotkey"
	"flack/internal/shutdown"
	"flack/internal/window"
)

const (
	AppName    = "Flack"
	AppID      = "com.flack.desktop"
	AppVersion = "0.1.0"

	component = "Application"
)

type Application struct {
	fyneApp fyne.App
	main    fyne.Window
	windows *window.Registry
	logger  logger.Logger

	cfg     *config.Config
	cfgPath string

	// binding is the live shortcut registration, nil when the shortcut is
	// disabled or the main window could not be resolved at bind time.
	binding *shortcut.Binding
	hotkeys *hotkey.Registry

	shutdown *shutdown.Manager
}

// NewApplication assembles the shell in dependency order: config, logger,
// Fyne app and main window, window registry, menu, global shortcut,
// lifecycle. Any returned error is fatal to startup.
func NewApplication() (*Application, error) {
	cfg := config.Default()
	cfgPath, pathErr := config.DefaultPath()
	var cfgErr error
	if pathErr == nil {
		if loaded, err := config.Load(cfgPath); err == nil {
			cfg = loaded
		} else {
			cfgErr = err
		}
	}

	level := logger.ParseLevel(cfg.LogLevel)
	if env := os.Getenv("FLACK_LOG_LEVEL"); env != "" {
		level = logger.ParseLevel(env)
	}
	log := logger.NewConsoleLogger(level)

	log.Info(component, "starting", map[string]interface{}{
		"version": AppVersion,
	})
	if pathErr != nil {
		log.Warning(component, "no user config directory, running with defaults", map[string]interface{}{
			"error": pathErr.Error(),
		})
	}
	if cfgErr != nil {
		log.Warning(component, "config unreadable, running with defaults", map[string]interface{}{
			"path":  cfgPath,
			"error": cfgErr.Error(),
		})
	}

	fyneapp.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	fyneApp := fyneapp.NewWithID(AppID)

	main := fyneApp.NewWindow(AppName)
	main.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	if cfg.Window.Fullscreen {
		main.SetFullScreen(true)
	}
	main.CenterOnScreen()
	main.SetMaster()

	windows := window.NewRegistry()
	windows.Add(window.Main, main)

	if err := menu.Install(fyneApp, main, menu.Main(AppName)); err != nil {
		return nil, fmt.Errorf("app: install menu: %w", err)
	}

	manager := shutdown.NewManager(log)
	hotkeys := hotkey.NewRegistry(log)
	manager.Register(shutdown.Func(hotkeys.Close))

	var binding *shortcut.Binding
	if cfg.Shortcut.Enabled {
		var err error
		binding, err = shortcut.BindFocus(
			windowSource{windows}, hotkeys,
			window.Main, shortcut.FocusCombination(), log,
		)
		if err != nil {
			return nil, err
		}
	} else {
		log.Debug(component, "global shortcut disabled by config", nil)
	}

	application := &Application{
		fyneApp:  fyneApp,
		main:     main,
		windows:  windows,
		logger:   log,
		cfg:      cfg,
		cfgPath:  cfgPath,
		binding:  binding,
		hotkeys:  hotkeys,
		shutdown: manager,
	}

	log.Info(component, "initialization complete", map[string]interface{}{
		"shortcut_bound": binding != nil,
	})
	return application, nil
}

// Run shows the main window and drives the Fyne event loop until quit.
func (a *Application) Run() error {
	a.shutdown.Listen()
	quitOnShutdown(a.shutdown.Done(), func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.main.SetCloseIntercept(func() {
		a.logger.Info(component, "shutdown requested", nil)
		a.saveWindowState()
		a.shutdown.Shutdown()
		a.windows.Remove(window.Main)
		a.main.Close()
	})

	a.main.SetContent(a.content())
	a.main.Show()
	a.fyneApp.Run()
	return nil
}

// quitOnShutdown ends the event loop once the shutdown sequence has run, so
// a termination signal exits the process instead of leaving a degraded shell
// behind.
func quitOnShutdown(done <-chan struct{}, quit func()) {
	go func() {
		<-done
		quit()
	}()
}

// content is the shell placeholder; the client surface mounts here.
func (a *Application) content() fyne.CanvasObject {
	return container.NewCenter(widget.NewLabel(AppName))
}

// saveWindowState persists the current geometry so the next launch can
// restore it. Failures are logged, never fatal: losing window state must not
// block exit.
func (a *Application) saveWindowState() {
	if a.cfgPath == "" {
		return
	}

	a.cfg.Window.Fullscreen = a.main.FullScreen()
	// In fullscreen the canvas spans the monitor; keep the last windowed
	// geometry so leaving fullscreen later restores a sane size.
	if !a.cfg.Window.Fullscreen {
		size := a.main.Canvas().Size()
		a.cfg.Window.Width = size.Width
		a.cfg.Window.Height = size.Height
	}
	if err := config.Save(a.cfgPath, a.cfg); err != nil {
		a.logger.Error(component, err, map[string]interface{}{
			"path": a.cfgPath,
		})
	}
}
