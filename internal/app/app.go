package app

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/dshills/modal/internal/config"
	"github.com/dshills/modal/internal/engine"
	"github.com/dshills/modal/internal/input"
	"github.com/dshills/modal/internal/input/mode"
	"github.com/dshills/modal/internal/renderer"
	"github.com/dshills/modal/internal/renderer/backend"
)

// Application is the central coordinator for all Modal components.
type Application struct {
	mu sync.RWMutex

	// Infrastructure
	config    *config.Config
	logger    *Logger
	logFile   io.Closer
	sessionID string
	metrics   *Metrics
	watcher   *config.Watcher

	// Editor components
	mode     *mode.State
	editor   *engine.Editor
	interp   *input.Interpreter
	queue    *ActionQueue
	renderer *renderer.Renderer
	backend  backend.Backend

	// Settings that may change at runtime
	statusLine atomic.Bool

	// State
	running  atomic.Bool
	closed   atomic.Bool
	inputErr chan error

	// Options
	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file.
	// Empty uses config.DefaultPath.
	ConfigPath string

	// LogLevel overrides logging.level when non-empty.
	LogLevel string

	// LogFile overrides logging.file when non-empty.
	LogFile string

	// LogOutput, when set, receives logs instead of the configured file.
	LogOutput io.Writer

	// Content is the initial buffer text.
	Content string

	// NoWatch disables config live reload.
	NoWatch bool
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:     opts,
		metrics:  NewMetrics(),
		queue:    NewActionQueue(),
		inputErr: make(chan error, 1),
	}

	if err := app.bootstrap(); err != nil {
		app.Close()
		return nil, err
	}

	return app, nil
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}

	app.backend = b
	return nil
}

// Run starts the input goroutine and the dispatch loop.
// Blocks until Quit (returns ErrQuit), Shutdown (returns nil) or a failure.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	app.mu.RLock()
	b := app.backend
	app.mu.RUnlock()

	if b == nil {
		return &InitError{Component: "backend", Err: ErrComponentNotAvailable}
	}
	if err := b.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer b.Shutdown()

	width, height := b.Size()
	if width <= 0 || height <= 0 {
		return &InitError{Component: "backend", Err: ErrEmptyViewport}
	}
	app.editor.Apply(input.WindowResize(width, height))

	opts := renderer.DefaultOptions()
	opts.StatusLine = app.statusLine.Load()
	app.mu.Lock()
	app.renderer = renderer.New(b, opts)
	app.mu.Unlock()

	app.startWatcher()
	defer func() { app.logComponentError("config", app.stopWatcher()) }()

	log := app.Logger().WithComponent("app")
	log.Info("started %dx%d", width, height)

	go app.readInput(b)

	err := app.dispatchLoop()

	s := app.metrics.Snapshot()
	keys := app.interp.Metrics()
	pushed, highWater := app.queue.Stats()
	log.Info("stopped after %d actions, %d frames (avg frame %s): %v", s.Actions, s.Frames, s.FrameAvg, err)
	log.Info("input: %d keys, %d cancelled, %d ignored; queue: %d pushed, %d deepest, %d pending",
		keys.KeyEvents, keys.Cancelled, keys.Ignored, pushed, highWater, app.queue.Len())
	return err
}

// Shutdown stops a running application. Run returns nil once the
// dispatch loop has drained the actions already queued.
func (app *Application) Shutdown() error {
	if !app.running.Load() {
		return ErrNotRunning
	}

	app.Logger().WithComponent("app").Info("shutdown requested")
	app.queue.Close()
	return nil
}

// Close releases resources held since New, such as the log file.
// It is safe to call more than once.
func (app *Application) Close() error {
	if !app.closed.CompareAndSwap(false, true) {
		return nil
	}

	errs := NewErrorList()
	errs.Add(app.stopWatcher())
	if app.logFile != nil {
		errs.Add(app.logFile.Close())
	}
	return errs.AsError()
}

// IsRunning returns true if the application is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.config
}

// Editor returns the editor core.
// It must only be inspected while Run is not executing.
func (app *Application) Editor() *engine.Editor {
	return app.editor
}

// Mode returns the current editing mode.
func (app *Application) Mode() mode.Mode {
	return app.mode.Current()
}

// Interpreter returns the key interpreter.
func (app *Application) Interpreter() *input.Interpreter {
	return app.interp
}

// Renderer returns the renderer, or nil before Run.
func (app *Application) Renderer() *renderer.Renderer {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.renderer
}

// Metrics returns a snapshot of dispatch metrics.
func (app *Application) Metrics() MetricsSnapshot {
	return app.metrics.Snapshot()
}

// SessionID returns the identifier attached to every log line of this run.
func (app *Application) SessionID() string {
	return app.sessionID
}
