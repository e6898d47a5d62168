package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/TFMV/ropesim/config"
	"github.com/TFMV/ropesim/render"
	"github.com/TFMV/ropesim/sim"
)

func newTestApp(t *testing.T) (*App, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(40, 13)
	t.Cleanup(screen.Fini)

	cfg := config.Default()
	cfg.Seed = 1
	return New(screen, sim.New(cfg, nil), cfg, nil, nil), screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func mouse(col, row int, buttons tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(col, row, buttons, tcell.ModNone)
}

func rowText(screen tcell.SimulationScreen, row int) string {
	cells, width, _ := screen.GetContents()
	var b strings.Builder
	for col := 0; col < width; col++ {
		c := cells[row*width+col]
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.Runes[0])
	}
	return b.String()
}

func TestClickAddsPoint(t *testing.T) {
	app, _ := newTestApp(t)

	app.HandleEvent(mouse(20, 6, tcell.ButtonPrimary))
	app.Step()
	app.HandleEvent(mouse(20, 6, tcell.ButtonNone))
	app.Step()

	g := app.sandbox.Graph()
	if len(g.Points) != 1 {
		t.Fatalf("points = %d, want 1", len(g.Points))
	}
	want := app.viewport().ToWorld(20, 6)
	if g.Points[0].Position != want {
		t.Errorf("point at %v, want %v", g.Points[0].Position, want)
	}
}

func TestClickOnStatusRowIsIgnored(t *testing.T) {
	app, _ := newTestApp(t)

	app.HandleEvent(mouse(20, 12, tcell.ButtonPrimary))
	app.Step()

	if n := len(app.sandbox.Graph().Points); n != 0 {
		t.Fatalf("points = %d, want 0 after clicking the status row", n)
	}
}

func TestRightClickLocksPoint(t *testing.T) {
	app, _ := newTestApp(t)

	app.HandleEvent(mouse(20, 6, tcell.ButtonPrimary))
	app.HandleEvent(mouse(20, 6, tcell.ButtonNone))
	app.Step()
	app.HandleEvent(mouse(20, 6, tcell.ButtonSecondary))
	app.Step()

	g := app.sandbox.Graph()
	if len(g.Points) != 1 || !g.Points[0].Locked {
		t.Fatalf("expected one locked point")
	}
}

func TestSpaceTogglesRun(t *testing.T) {
	app, _ := newTestApp(t)

	app.HandleEvent(key(' '))
	app.Step()
	if !app.sandbox.Running() {
		t.Fatalf("space should start the simulation")
	}
	app.Step()
	if !app.sandbox.Running() {
		t.Fatalf("toggle should fire only once per press")
	}
}

func TestPresetKeyDrawsScene(t *testing.T) {
	app, screen := newTestApp(t)

	app.HandleEvent(key('1'))
	app.Step()

	g := app.sandbox.Graph()
	if len(g.Points) != 3 || len(g.Links) != 2 {
		t.Fatalf("preset 1 = %d points / %d links, want 3 / 2", len(g.Points), len(g.Links))
	}

	col, row := app.viewport().ToCell(g.Points[0].Position)
	if got := []rune(rowText(screen, row))[col]; got != render.GlyphLocked {
		t.Errorf("cell (%d,%d) = %q, want locked glyph", col, row, got)
	}
	if status := rowText(screen, 12); !strings.Contains(status, "points 3 locked 1 links 2") {
		t.Errorf("status row = %q", status)
	}
}

func TestQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
	}{
		{"q", key('q')},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := newTestApp(t)
			if !app.HandleEvent(key('a')) {
				t.Fatalf("unbound key should not quit")
			}
			if app.HandleEvent(tt.ev) {
				t.Errorf("expected %s to quit", tt.name)
			}
		})
	}
}

func TestHeldKeysExpire(t *testing.T) {
	clock := time.Unix(0, 0)
	c := NewControls()
	c.now = func() time.Time { return clock }
	vp := render.Viewport{Zoom: 4, Width: 40, Height: 12}

	c.HandleEvent(key('x'))
	clock = clock.Add(300 * time.Millisecond)
	if !c.Collect(vp).Cut {
		t.Fatalf("cut should be held within the hold window")
	}

	// Auto-repeat keeps the key held.
	c.HandleEvent(key('x'))
	clock = clock.Add(650 * time.Millisecond)
	if !c.Collect(vp).Cut {
		t.Fatalf("repeat should extend the hold")
	}

	clock = clock.Add(100 * time.Millisecond)
	if c.Collect(vp).Cut {
		t.Fatalf("cut should be released after the hold window")
	}
}

// verticalLink adds a link spanning rows 3 to 9 of column 20.
func verticalLink(t *testing.T, app *App) {
	t.Helper()
	vp := app.viewport()
	g := app.sandbox.Graph()
	top := g.AddPoint(vp.ToWorld(20, 3), true)
	bottom := g.AddPoint(vp.ToWorld(20, 9), true)
	if _, err := g.AddLink(top, bottom); err != nil {
		t.Fatalf("AddLink: %v", err)
	}
}

func TestHeldCutSurvivesRepeatDelay(t *testing.T) {
	app, _ := newTestApp(t)
	clock := time.Unix(0, 0)
	app.controls.now = func() time.Time { return clock }
	verticalLink(t, app)

	app.HandleEvent(mouse(15, 6, tcell.ButtonNone))
	app.HandleEvent(key('x'))
	app.Step()

	// The first auto-repeat arrives only after the pointer has crossed.
	clock = clock.Add(250 * time.Millisecond)
	app.HandleEvent(mouse(25, 6, tcell.ButtonNone))
	app.Step()

	for _, at := range []time.Duration{500 * time.Millisecond, 533 * time.Millisecond} {
		clock = time.Unix(0, 0).Add(at)
		app.HandleEvent(key('x'))
		app.Step()
		if !app.sandbox.Editor().Cutting() {
			t.Fatalf("cut released at %v", at)
		}
	}

	if l := app.sandbox.Graph().Links[0]; !l.Dead() {
		t.Fatalf("held cut dragged across the link left it alive")
	}
}

func TestMiddleDragCuts(t *testing.T) {
	app, _ := newTestApp(t)
	verticalLink(t, app)

	app.HandleEvent(mouse(15, 6, tcell.ButtonMiddle))
	app.Step()
	if !app.sandbox.Editor().Cutting() {
		t.Fatalf("middle press should start a cut")
	}
	app.HandleEvent(mouse(25, 6, tcell.ButtonMiddle))
	app.Step()

	if l := app.sandbox.Graph().Links[0]; !l.Dead() {
		t.Fatalf("middle drag across the link left it alive")
	}

	app.HandleEvent(mouse(25, 6, tcell.ButtonNone))
	app.Step()
	if app.sandbox.Editor().Cutting() {
		t.Fatalf("releasing the middle button should end the cut")
	}
	if n := len(app.sandbox.Graph().Points); n != 2 {
		t.Fatalf("points = %d, middle drag should not add points", n)
	}
}

func TestHeldKeyMapping(t *testing.T) {
	tests := []struct {
		r     rune
		check func(c *Controls, vp render.Viewport) bool
	}{
		{'x', func(c *Controls, vp render.Viewport) bool { return c.Collect(vp).Cut }},
		{'d', func(c *Controls, vp render.Viewport) bool { return c.Collect(vp).Delete }},
		{'c', func(c *Controls, vp render.Viewport) bool { return c.Collect(vp).Clear }},
		{'s', func(c *Controls, vp render.Viewport) bool { return c.Collect(vp).Chain }},
	}

	vp := render.Viewport{Zoom: 4, Width: 40, Height: 12}
	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			c := NewControls()
			if tt.check(c, vp) {
				t.Fatalf("%q held before any press", tt.r)
			}
			c.HandleEvent(key(tt.r))
			if !tt.check(c, vp) {
				t.Errorf("%q not held after press", tt.r)
			}
		})
	}
}

func TestMouseEdgesAreConsumed(t *testing.T) {
	c := NewControls()
	vp := render.Viewport{Zoom: 4, Width: 40, Height: 12}

	c.HandleEvent(mouse(3, 4, tcell.ButtonPrimary))
	in := c.Collect(vp)
	if !in.PrimaryDown || in.PrimaryUp {
		t.Fatalf("press frame = %+v", in)
	}
	if in.Pointer != vp.ToWorld(3, 4) {
		t.Fatalf("pointer = %v, want %v", in.Pointer, vp.ToWorld(3, 4))
	}

	// Dragging with the button still down is not a new press.
	c.HandleEvent(mouse(5, 4, tcell.ButtonPrimary))
	if in := c.Collect(vp); in.PrimaryDown || in.PrimaryUp {
		t.Fatalf("drag frame = %+v", in)
	}

	c.HandleEvent(mouse(5, 4, tcell.ButtonNone))
	if in := c.Collect(vp); !in.PrimaryUp {
		t.Fatalf("release frame = %+v", in)
	}
	if in := c.Collect(vp); in.PrimaryUp {
		t.Fatalf("release reported twice")
	}
}

func TestSoundZeroValueIsSilent(t *testing.T) {
	var s *Sound
	s.Snap(3)
	s.Close()

	muted, err := NewSound(true)
	if err != nil {
		t.Fatalf("NewSound(mute): %v", err)
	}
	if muted.Enabled() {
		t.Fatalf("muted sound should be disabled")
	}
}
