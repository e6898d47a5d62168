// Package tui runs the sandbox interactively in a terminal: mouse and keys
// drive the editor, and each frame is rasterized onto a tcell screen.
package tui

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/TFMV/ropesim/config"
	"github.com/TFMV/ropesim/render"
	"github.com/TFMV/ropesim/sim"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

const helpText = "space run  x/middle-drag cut  d delete  c clear  s chain  1-6 presets  q quit"

var styles = map[render.Kind]tcell.Style{
	render.KindEmpty:   tcell.StyleDefault,
	render.KindLink:    tcell.StyleDefault.Foreground(tcell.ColorSilver),
	render.KindPreview: tcell.StyleDefault.Foreground(tcell.ColorYellow),
	render.KindPoint:   tcell.StyleDefault.Foreground(tcell.ColorGreen),
	render.KindLocked:  tcell.StyleDefault.Foreground(tcell.ColorRed),
}

var statusStyle = tcell.StyleDefault.Reverse(true)

// NewScreen opens the terminal with mouse tracking enabled.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	return screen, nil
}

// App is the interactive front end.
type App struct {
	screen   tcell.Screen
	sandbox  *sim.Sandbox
	controls *Controls
	sound    *Sound
	logger   *log.Logger

	center r2.Vec
	zoom   float64
	dt     float64
}

// New creates an app drawing to screen. A nil sound is silent and a nil
// logger discards output.
func New(screen tcell.Screen, sandbox *sim.Sandbox, cfg *config.Config, sound *Sound, logger *log.Logger) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &App{
		screen:   screen,
		sandbox:  sandbox,
		controls: NewControls(),
		sound:    sound,
		logger:   logger,
		center:   render.DefaultCenter,
		zoom:     cfg.Zoom,
		dt:       cfg.TimeStep,
	}
}

// Controls returns the input state.
func (a *App) Controls() *Controls { return a.controls }

// Run processes events and frames until a quit key or ctx is done.
func (a *App) Run(ctx context.Context) error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	a.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-eventChan:
			if !a.HandleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			a.Step()
		}
	}
}

// HandleEvent feeds one terminal event to the app and reports whether it
// should keep running.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		return true
	}
	a.controls.HandleEvent(ev)
	return !a.controls.Quit()
}

// Step advances one frame and redraws.
func (a *App) Step() {
	if n := a.controls.TakePreset(); n != 0 {
		if err := a.sandbox.LoadPreset(n); err != nil {
			a.logger.Printf("load preset: %v", err)
		}
	}

	res := a.sandbox.Frame(a.controls.Collect(a.viewport()), a.dt)
	if res.Cut > 0 {
		a.sound.Snap(res.Cut)
	}
	a.draw()
}

// Close releases the speaker and restores the terminal.
func (a *App) Close() {
	a.sound.Close()
	a.screen.Fini()
}

// viewport covers the screen above the status row.
func (a *App) viewport() render.Viewport {
	w, h := a.screen.Size()
	return render.Viewport{
		Center: a.center,
		Zoom:   a.zoom,
		Width:  w,
		Height: max(h-1, 0),
	}
}

func (a *App) draw() {
	vp := a.viewport()
	snap := a.sandbox.Snapshot()
	grid := render.Rasterize(snap, vp)

	a.screen.Clear()
	for row := 0; row < grid.Height; row++ {
		for col := 0; col < grid.Width; col++ {
			c := grid.At(col, row)
			a.screen.SetContent(col, row, c.Rune, nil, styles[c.Kind])
		}
	}
	a.drawStatus(vp, snap)
	a.screen.Show()
}

func (a *App) drawStatus(vp render.Viewport, snap sim.Snapshot) {
	state := "paused"
	if snap.Running {
		state = "running"
	}
	text := fmt.Sprintf(" %s | points %d locked %d links %d | %s", state, len(snap.Points), snap.LockedPoints(), snap.LiveLinks(), helpText)

	row := vp.Height
	runes := []rune(text)
	for col := 0; col < vp.Width; col++ {
		r := ' '
		if col < len(runes) {
			r = runes[col]
		}
		a.screen.SetContent(col, row, r, nil, statusStyle)
	}
}
