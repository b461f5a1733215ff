package app

import (
	"context"
	"errors"
	"runtime/debug"
	"time"

	"github.com/dshills/modal/internal/renderer"
	"github.com/dshills/modal/internal/renderer/backend"
)

// readInput is the producer: it turns backend events into actions until
// the backend closes. A panic is reported to the dispatch loop.
func (app *Application) readInput(b backend.Backend) {
	log := app.Logger().WithComponent("input")

	defer func() {
		if r := recover(); r != nil {
			err := NewRecoveredPanicError(r, string(debug.Stack()))
			log.Error("input goroutine panicked: %v", r)
			select {
			case app.inputErr <- err:
			default:
			}
			app.queue.Close()
		}
	}()

	for {
		ev := b.PollEvent()
		switch ev.Type {
		case backend.EventClosed:
			log.Debug("backend closed")
			return

		case backend.EventKey:
			app.metrics.RecordKey()
			a, ok := app.interp.Handle(ev.Key)
			if !ok {
				log.Debug("key %s (pending %q)", ev.Key, app.interp.Pending())
				continue
			}
			log.Debug("key %s -> %s", ev.Key, a)
			if !app.queue.Push(a) {
				return
			}

		case backend.EventResize:
			app.metrics.RecordResize()
			if !app.queue.Push(app.interp.Resize(ev.Width, ev.Height)) {
				return
			}
		}
	}
}

// dispatchLoop is the consumer: it applies actions in order and redraws
// after each one.
func (app *Application) dispatchLoop() error {
	log := app.Logger().WithComponent("dispatch")
	ctx := context.Background()

	app.draw()

	for {
		a, err := app.queue.Pop(ctx)
		if err != nil {
			if errors.Is(err, ErrQueueClosed) {
				select {
				case inputErr := <-app.inputErr:
					return NewComponentError("input", "read", inputErr)
				default:
					return nil
				}
			}
			return err
		}

		start := time.Now()
		quit := app.editor.Apply(a)
		app.metrics.RecordAction(time.Since(start))

		log.Debug("applied %s cursor=%s mode=%s", a, app.editor.Cursor(), app.editor.Mode())

		if quit {
			return ErrQuit
		}
		app.draw()
	}
}

// draw renders the current editor state.
func (app *Application) draw() {
	start := time.Now()

	app.renderer.SetStatusLine(app.statusLine.Load())
	app.renderer.Draw(renderer.State{
		Lines:   app.editor.Buffer().Lines,
		Cursor:  app.editor.Cursor(),
		Mode:    app.editor.Mode(),
		Pending: app.interp.Pending(),
	})

	app.metrics.RecordFrame(time.Since(start))
}
