package runtime

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/odvcencio/tessera/pkg/backend"
	"github.com/odvcencio/tessera/pkg/compositor"
	"github.com/odvcencio/tessera/pkg/logging"
	"github.com/odvcencio/tessera/pkg/metrics"
	"github.com/odvcencio/tessera/pkg/theme"
)

// UpdateFunc handles a message and returns true if a render is needed.
type UpdateFunc func(app *App, msg Message) bool

// CommandHandler handles commands emitted by widgets.
// Return true if the command requires a render.
type CommandHandler func(cmd Command) bool

// AppConfig configures a runtime App.
type AppConfig struct {
	Backend        backend.Backend
	Root           Widget
	Theme          *theme.Theme
	Update         UpdateFunc
	CommandHandler CommandHandler
	Logger         *logging.Logger
	MessageBuffer  int
	TickRate       time.Duration
}

// App runs a widget tree against a terminal backend. Each frame the
// tree renders into the screen's cell grid, the compositor diffs the
// grid against what the terminal shows, and only the changed runs are
// pushed out.
type App struct {
	backend        backend.Backend
	screen         *Screen
	compositor     *compositor.Compositor
	root           Widget
	theme          *theme.Theme
	update         UpdateFunc
	commandHandler CommandHandler
	logger         *logging.Logger
	messages       chan Message
	tickRate       time.Duration

	running  atomic.Bool
	dirty    bool
	renderMu sync.Mutex
}

// NewApp creates a new App from config.
func NewApp(cfg AppConfig) *App {
	bufferSize := cfg.MessageBuffer
	if bufferSize <= 0 {
		bufferSize = 128
	}
	return &App{
		backend:        cfg.Backend,
		compositor:     compositor.New(),
		root:           cfg.Root,
		theme:          cfg.Theme,
		update:         cfg.Update,
		commandHandler: cfg.CommandHandler,
		logger:         cfg.Logger,
		messages:       make(chan Message, bufferSize),
		tickRate:       cfg.TickRate,
	}
}

// Screen returns the active screen, if initialized.
func (a *App) Screen() *Screen {
	return a.screen
}

// SetRoot swaps the root widget.
func (a *App) SetRoot(root Widget) {
	a.root = root
	if a.screen != nil {
		a.screen.SetRoot(root)
		a.dirty = true
	}
}

// SetTheme swaps the active theme.
func (a *App) SetTheme(th *theme.Theme) {
	a.theme = th
	if a.screen != nil {
		a.screen.SetTheme(th)
		a.dirty = true
	}
}

// Post sends a message to the event loop. It never blocks; when the
// queue is full the message is dropped.
func (a *App) Post(msg Message) {
	select {
	case a.messages <- msg:
	default:
	}
}

// Run starts the event loop until quit or context cancellation.
func (a *App) Run(ctx context.Context) error {
	if a.backend == nil {
		return errors.New("backend is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := a.backend.Init(); err != nil {
		return fmt.Errorf("init backend: %w", err)
	}
	defer a.backend.Fini()

	a.backend.HideCursor()
	w, h := a.backend.Size()
	if a.theme == nil {
		a.theme = theme.DefaultTheme()
	}
	a.screen = NewScreen(w, h, a.theme)
	if a.root != nil {
		a.screen.SetRoot(a.root)
	}

	if a.update == nil {
		a.update = DefaultUpdate
	}

	a.running.Store(true)
	a.logEvent(logging.LevelInfo, logging.CategoryApp, "start", map[string]any{
		"width":  w,
		"height": h,
	})

	// Paint the initial frame before any input arrives.
	a.render()
	a.dirty = false

	go a.pollEvents()

	var ticker *time.Ticker
	var ticks <-chan time.Time
	if a.tickRate > 0 {
		ticker = time.NewTicker(a.tickRate)
		defer ticker.Stop()
		ticks = ticker.C
	}

	for a.running.Load() {
		select {
		case <-ctx.Done():
			a.running.Store(false)
		case msg := <-a.messages:
			if a.update(a, msg) {
				a.dirty = true
			}
		case now := <-ticks:
			if a.update(a, TickMsg{Time: now}) {
				a.dirty = true
			}
		}

		if a.dirty {
			a.render()
			a.dirty = false
		}
	}

	a.logEvent(logging.LevelInfo, logging.CategoryApp, "stop", nil)
	return ctx.Err()
}

// DefaultUpdate handles input messages and widget commands.
func DefaultUpdate(app *App, msg Message) bool {
	if app == nil || app.screen == nil {
		return false
	}

	switch m := msg.(type) {
	case ResizeMsg:
		app.screen.Resize(m.Width, m.Height)
		return true
	case ThemeMsg:
		app.SetTheme(m.Theme)
		return true
	default:
		result := app.screen.HandleMessage(msg)
		dirty := result.Handled
		for _, cmd := range result.Commands {
			if app.handleCommand(cmd) {
				dirty = true
			}
		}
		return dirty
	}
}

func (a *App) handleCommand(cmd Command) bool {
	switch cmd.(type) {
	case Quit:
		a.running.Store(false)
		return false
	case Refresh:
		a.compositor.Invalidate()
		return true
	default:
		if a.commandHandler != nil {
			return a.commandHandler(cmd)
		}
		return false
	}
}

func (a *App) pollEvents() {
	for a.running.Load() {
		ev := a.backend.PollEvent()
		if ev == nil {
			// Backend is shutting down.
			return
		}

		switch e := ev.(type) {
		case backend.KeyEvent:
			a.Post(KeyMsg{
				Key:   e.Key,
				Rune:  e.Rune,
				Alt:   e.Alt,
				Ctrl:  e.Ctrl,
				Shift: e.Shift,
			})
		case backend.ResizeEvent:
			a.Post(ResizeMsg{Width: e.Width, Height: e.Height})
		case backend.MouseEvent:
			a.Post(MouseMsg{
				X:      e.X,
				Y:      e.Y,
				Button: e.Button,
				Action: e.Action,
				Alt:    e.Alt,
				Ctrl:   e.Ctrl,
				Shift:  e.Shift,
			})
		case backend.PasteEvent:
			a.Post(PasteMsg{Text: e.Text})
		}
	}
}

func (a *App) render() {
	a.renderMu.Lock()
	defer a.renderMu.Unlock()

	if a.screen == nil {
		return
	}

	start := time.Now()
	a.screen.Render()
	patch := a.compositor.Paint(a.screen.Buffer())
	backend.ApplyPatch(a.backend, patch)
	a.backend.Show()

	stats := a.compositor.Stats()
	metrics.RecordFrame(patch.Full, stats.LastChanged, stats.LastRuns, time.Since(start))
	a.logEvent(logging.LevelDebug, logging.CategoryRender, "frame", map[string]any{
		"full":    patch.Full,
		"changed": stats.LastChanged,
		"runs":    stats.LastRuns,
	})
}

func (a *App) logEvent(level logging.Level, category logging.Category, eventType string, details map[string]any) {
	if a.logger == nil {
		return
	}
	a.logger.Log(logging.Event{
		Level:     level,
		Category:  category,
		EventType: eventType,
		Details:   details,
	})
}
