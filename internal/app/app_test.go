package app

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dshills/modal/internal/input/key"
	"github.com/dshills/modal/internal/input/mode"
	"github.com/dshills/modal/internal/renderer/backend"
)

const (
	testWidth  = 40
	testHeight = 10
	statusRow  = testHeight - 2
)

func newTestApp(t *testing.T, opts Options) (*Application, *backend.NullBackend) {
	t.Helper()

	if opts.ConfigPath == "" {
		opts.ConfigPath = filepath.Join(t.TempDir(), "missing.toml")
	}
	if opts.LogOutput == nil {
		opts.LogOutput = io.Discard
	}

	app, err := New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = app.Close() })

	b := backend.NewNullBackend(testWidth, testHeight)
	if err := app.SetBackend(b); err != nil {
		t.Fatalf("SetBackend() error = %v", err)
	}
	return app, b
}

func start(app *Application) <-chan error {
	done := make(chan error, 1)
	go func() { done <- app.Run() }()
	return done
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(2 * time.Millisecond)
	}
}

func waitDone(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return")
		return nil
	}
}

func typeRunes(b *backend.NullBackend, s string) {
	for _, r := range s {
		b.PostEvent(backend.KeyEvent(key.NewRuneEvent(r, key.ModNone)))
	}
}

func press(b *backend.NullBackend, k key.Key) {
	b.PostEvent(backend.KeyEvent(key.NewSpecialEvent(k, key.ModNone)))
}

func TestRunDeleteWithCount(t *testing.T) {
	app, b := newTestApp(t, Options{Content: "hello world"})
	done := start(app)

	waitFor(t, "first frame", func() bool { return b.RowText(0) == "hello world" })

	typeRunes(b, "d3l")
	waitFor(t, "delete", func() bool { return b.RowText(0) == "lo world" })

	typeRunes(b, "q")
	if err := waitDone(t, done); !errors.Is(err, ErrQuit) {
		t.Fatalf("Run() error = %v, want ErrQuit", err)
	}

	e := app.Editor()
	if got := e.Register().Text(); got != "hel" {
		t.Errorf("register = %q, want %q", got, "hel")
	}
	if c := e.Cursor(); c.Row != 0 || c.Col != 0 {
		t.Errorf("cursor = %s, want (0, 0)", c)
	}
}

func TestRunInsertTyping(t *testing.T) {
	app, b := newTestApp(t, Options{})
	done := start(app)

	waitFor(t, "running", app.IsRunning)

	typeRunes(b, "i")
	waitFor(t, "insert mode", func() bool { return app.Mode() == mode.Insert })

	typeRunes(b, "ab")
	press(b, key.KeyEnter)
	typeRunes(b, "c d")
	press(b, key.KeyTab)
	typeRunes(b, "!")
	waitFor(t, "second line", func() bool { return b.RowText(1) == "c d" })

	if got := b.RowText(0); got != "ab" {
		t.Errorf("row 0 = %q, want %q", got, "ab")
	}

	press(b, key.KeyEscape)
	waitFor(t, "normal mode", func() bool { return app.Mode() == mode.Normal })
	waitFor(t, "status line", func() bool {
		return strings.HasPrefix(b.RowText(statusRow), mode.Normal.String())
	})

	typeRunes(b, "q")
	if err := waitDone(t, done); !errors.Is(err, ErrQuit) {
		t.Fatalf("Run() error = %v, want ErrQuit", err)
	}

	lines := app.Editor().Buffer().Strings()
	want := []string{"ab", "c d    "}
	if len(lines) != len(want) || lines[0] != want[0] || lines[1] != want[1] {
		t.Errorf("buffer = %q, want %q", lines, want)
	}
}

func TestRunResize(t *testing.T) {
	app, b := newTestApp(t, Options{Content: "x"})
	done := start(app)

	waitFor(t, "running", app.IsRunning)
	waitFor(t, "first frame", func() bool { return b.RowText(0) == "x" })

	b.Resize(60, 20)
	waitFor(t, "resize", func() bool {
		return app.Metrics().Resizes == 1 && strings.HasPrefix(b.RowText(18), mode.Normal.String())
	})

	typeRunes(b, "q")
	if err := waitDone(t, done); !errors.Is(err, ErrQuit) {
		t.Fatalf("Run() error = %v, want ErrQuit", err)
	}

	if w, h := app.Editor().Viewport(); w != 60 || h != 20 {
		t.Errorf("Viewport() = %dx%d, want 60x20", w, h)
	}
}

func TestRunPendingKeysShown(t *testing.T) {
	app, b := newTestApp(t, Options{Content: "abc"})
	done := start(app)

	waitFor(t, "running", app.IsRunning)
	typeRunes(b, "d")
	waitFor(t, "pending", func() bool { return app.Interpreter().Pending() == "d" })

	// Pending keys produce no action, so force a frame with a resize.
	b.PostEvent(backend.ResizeEvent(testWidth, testHeight))
	waitFor(t, "pending in status", func() bool {
		return strings.HasSuffix(b.RowText(statusRow), "d")
	})

	press(b, key.KeyEscape)
	typeRunes(b, "q")
	if err := waitDone(t, done); !errors.Is(err, ErrQuit) {
		t.Fatalf("Run() error = %v, want ErrQuit", err)
	}
	if got := app.Editor().Buffer().Text(); got != "abc" {
		t.Errorf("buffer = %q, want unchanged", got)
	}
}

func TestRunShutdown(t *testing.T) {
	app, b := newTestApp(t, Options{})
	done := start(app)

	waitFor(t, "running", app.IsRunning)
	if err := app.SetBackend(b); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("SetBackend() while running error = %v, want ErrAlreadyRunning", err)
	}
	if err := app.Run(); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second Run() error = %v, want ErrAlreadyRunning", err)
	}

	if err := app.Shutdown(); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if err := waitDone(t, done); err != nil {
		t.Fatalf("Run() after Shutdown error = %v, want nil", err)
	}
	if app.IsRunning() {
		t.Error("IsRunning() = true after Run returned")
	}
	if app.Metrics().Frames == 0 {
		t.Error("no frames drawn")
	}
}

func TestRunInitErrors(t *testing.T) {
	tests := []struct {
		name    string
		backend backend.Backend
		want    error
	}{
		{"no backend", nil, ErrComponentNotAvailable},
		{"empty screen", backend.NewNullBackend(0, 0), ErrEmptyViewport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newTestApp(t, Options{})
			if err := app.SetBackend(tt.backend); err != nil {
				t.Fatalf("SetBackend() error = %v", err)
			}

			err := app.Run()
			var ie *InitError
			if !errors.As(err, &ie) || ie.Component != "backend" {
				t.Fatalf("Run() error = %v, want backend InitError", err)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Run() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewConfigErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(bad, []byte("[logging\nlevel = "), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		opts Options
	}{
		{"malformed file", Options{ConfigPath: bad}},
		{"invalid level flag", Options{ConfigPath: filepath.Join(dir, "none.toml"), LogLevel: "verbose"}},
		{"unsupported format", Options{ConfigPath: writeFile(t, dir, "c.ini", "x=1")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.LogOutput = io.Discard
			_, err := New(tt.opts)

			var ie *InitError
			if !errors.As(err, &ie) || ie.Component != "config" {
				t.Errorf("New() error = %v, want config InitError", err)
			}
		})
	}
}

func TestNewFlagOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "modal.toml", "[logging]\nlevel = \"error\"\n")

	app, _ := newTestApp(t, Options{ConfigPath: path, LogLevel: "debug"})

	if got := app.Config().Logging.Level; got != "debug" {
		t.Errorf("Logging.Level = %q, want debug", got)
	}
	if got := app.Logger().Level(); got != LogLevelDebug {
		t.Errorf("Logger().Level() = %s, want DEBUG", got)
	}
	if app.SessionID() == "" {
		t.Error("SessionID() is empty")
	}
	if app.Config().Path != path {
		t.Errorf("Config().Path = %q, want %q", app.Config().Path, path)
	}
}

func TestRunConfigReload(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "modal.toml", "[ui]\nstatusLine = true\n")

	app, b := newTestApp(t, Options{ConfigPath: path, Content: "text"})
	done := start(app)

	waitFor(t, "status line", func() bool {
		return strings.HasPrefix(b.RowText(statusRow), mode.Normal.String())
	})

	writeFile(t, dir, "modal.toml", "[logging]\nlevel = \"warn\"\n[ui]\nstatusLine = false\n")
	waitFor(t, "status line hidden", func() bool { return b.RowText(statusRow) == "" })

	if got := app.Logger().Level(); got != LogLevelWarn {
		t.Errorf("Logger().Level() = %s, want WARN", got)
	}

	typeRunes(b, "q")
	if err := waitDone(t, done); !errors.Is(err, ErrQuit) {
		t.Fatalf("Run() error = %v, want ErrQuit", err)
	}
}

// syncBuffer is a log destination that is safe to read while the app runs.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRunLogsInputAndQueueStats(t *testing.T) {
	out := &syncBuffer{}
	app, b := newTestApp(t, Options{Content: "abc", LogOutput: out})
	done := start(app)

	waitFor(t, "running", app.IsRunning)

	// d then x cancels the pending operator.
	typeRunes(b, "dx")
	waitFor(t, "cancel", func() bool { return app.Interpreter().Metrics().Cancelled == 1 })

	typeRunes(b, "lq")
	if err := waitDone(t, done); !errors.Is(err, ErrQuit) {
		t.Fatalf("Run() error = %v, want ErrQuit", err)
	}

	// q is the last push, so nothing is left behind it.
	for _, want := range []string{"input: 4 keys, 1 cancelled, 0 ignored; queue: 2 pushed, ", " deepest, 0 pending"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("shutdown log missing %q:\n%s", want, out.String())
		}
	}
}

func TestShutdownNotRunning(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	if err := app.Shutdown(); !errors.Is(err, ErrNotRunning) {
		t.Errorf("Shutdown() before Run error = %v, want ErrNotRunning", err)
	}
}

func TestClose(t *testing.T) {
	app, _ := newTestApp(t, Options{})
	if err := app.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := app.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
