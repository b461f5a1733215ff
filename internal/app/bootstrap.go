package app

import (
	"github.com/google/uuid"

	"github.com/dshills/modal/internal/config"
	"github.com/dshills/modal/internal/engine"
	"github.com/dshills/modal/internal/input"
	"github.com/dshills/modal/internal/input/mode"
	"github.com/dshills/modal/internal/renderer/backend"
)

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config: file, then environment, then flags
	if err := app.initConfig(); err != nil {
		return err
	}

	// 2. Logging
	if err := app.initLogging(); err != nil {
		return err
	}

	// 3. Editor core and interpreter sharing one mode cell
	app.initEditor()

	app.Logger().WithComponent("app").Info("initialized (config %q)", app.config.Path)
	return nil
}

// initConfig loads configuration and applies flag overrides.
func (app *Application) initConfig() error {
	path := app.opts.ConfigPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}

	if app.opts.LogLevel != "" {
		cfg.Logging.Level = app.opts.LogLevel
	}
	if app.opts.LogFile != "" {
		cfg.Logging.File = app.opts.LogFile
	}
	if err := cfg.Validate(); err != nil {
		return &InitError{Component: "config", Err: err}
	}

	app.config = cfg
	app.statusLine.Store(cfg.UI.StatusLine)
	return nil
}

// initLogging opens the log destination and tags the logger with a
// session ID.
func (app *Application) initLogging() error {
	out := app.opts.LogOutput
	if out == nil {
		f, err := OpenLogFile(app.config.Logging.File)
		if err != nil {
			return &InitError{Component: "logging", Err: err}
		}
		app.logFile = f
		out = f
	}

	app.sessionID = uuid.NewString()
	base := NewLogger(LoggerConfig{
		Level:  ParseLogLevel(app.config.Logging.Level),
		Output: out,
		Prefix: "modal",
	})
	app.logger = base.WithField("session", app.sessionID)
	SetLogger(app.logger)
	return nil
}

// initEditor creates the mode cell, the editor core and the interpreter.
func (app *Application) initEditor() {
	app.mode = mode.NewState(mode.Normal)

	log := app.Logger().WithComponent("mode")
	app.mode.OnChange(func(from, to mode.Mode) {
		log.Debug("%s -> %s", from, to)
	})

	opts := []engine.Option{engine.WithModeState(app.mode)}
	if app.opts.Content != "" {
		opts = append(opts, engine.WithContent(app.opts.Content))
	}
	app.editor = engine.New(opts...)
	app.interp = input.NewInterpreter(app.mode)
}

// startWatcher follows the config file for live reload.
// Failure to watch is logged and otherwise ignored.
func (app *Application) startWatcher() {
	if app.opts.NoWatch || app.config.Path == "" {
		return
	}

	w, err := config.NewWatcher(app.config.Path, app.onConfigReload)
	if err != nil {
		app.logComponentError("config", NewComponentError("config", "watch", err))
		return
	}

	app.mu.Lock()
	app.watcher = w
	app.mu.Unlock()
}

// stopWatcher stops live reload if it is active.
func (app *Application) stopWatcher() error {
	app.mu.Lock()
	w := app.watcher
	app.watcher = nil
	app.mu.Unlock()

	if w == nil {
		return nil
	}
	if err := w.Close(); err != nil {
		return NewComponentError("config", "stop watcher", err)
	}
	return nil
}

// onConfigReload applies the runtime-adjustable settings of a reloaded
// config and requests a redraw.
func (app *Application) onConfigReload(cfg *config.Config, err error) {
	log := app.Logger().WithComponent("config")
	if err != nil {
		log.Warn("reload failed: %v", err)
		return
	}

	level := cfg.Logging.Level
	if app.opts.LogLevel != "" {
		level = app.opts.LogLevel
	}
	app.Logger().SetLevel(ParseLogLevel(level))
	app.statusLine.Store(cfg.UI.StatusLine)

	app.mu.Lock()
	cfg.Logging.File = app.config.Logging.File
	cfg.Path = app.config.Path
	app.config = cfg
	b := app.backend
	app.mu.Unlock()

	log.Info("reloaded: level=%s statusLine=%v", level, cfg.UI.StatusLine)

	// A synthetic resize travels the normal input path and forces a frame.
	if b != nil && app.running.Load() {
		w, h := b.Size()
		b.PostEvent(backend.ResizeEvent(w, h))
	}
}
