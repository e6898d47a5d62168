package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/TFMV/ropesim/editor"
	"github.com/TFMV/ropesim/render"
)

// DefaultHoldWindow is how long a key counts as held after its last
// press or auto-repeat. Terminals report no key releases, and it must
// outlast the initial auto-repeat delay, which is up to ~660ms.
const DefaultHoldWindow = 700 * time.Millisecond

// Held actions
const (
	keyCut    = 'x'
	keyDelete = 'd'
	keyClear  = 'c'
	keyChain  = 's'
)

// Controls accumulates terminal events between frames and turns them into
// one editor.Input per frame.
type Controls struct {
	HoldWindow time.Duration

	now     func() time.Time
	held    map[rune]time.Time
	buttons tcell.ButtonMask

	col, row    int
	pointerSeen bool

	toggleRun     bool
	primaryDown   bool
	primaryUp     bool
	secondaryDown bool
	preset        int
	quit          bool
}

// NewControls creates an empty control state.
func NewControls() *Controls {
	return &Controls{
		HoldWindow: DefaultHoldWindow,
		now:        time.Now,
		held:       make(map[rune]time.Time),
	}
}

// HandleEvent records one terminal event.
func (c *Controls) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		c.handleKey(ev)
	case *tcell.EventMouse:
		c.handleMouse(ev)
	}
}

func (c *Controls) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		c.quit = true
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch r := ev.Rune(); r {
	case 'q', 'Q':
		c.quit = true
	case ' ':
		c.toggleRun = true
	case keyCut, keyDelete, keyClear, keyChain:
		c.held[r] = c.now()
	case '1', '2', '3', '4', '5', '6':
		c.preset = int(r - '0')
	}
}

func (c *Controls) handleMouse(ev *tcell.EventMouse) {
	c.col, c.row = ev.Position()
	c.pointerSeen = true

	now := ev.Buttons()
	pressed := now &^ c.buttons
	released := c.buttons &^ now
	c.buttons = now

	if pressed&tcell.ButtonPrimary != 0 {
		c.primaryDown = true
	}
	if released&tcell.ButtonPrimary != 0 {
		c.primaryUp = true
	}
	if pressed&tcell.ButtonSecondary != 0 {
		c.secondaryDown = true
	}
}

// cutButton reports whether the middle button is down. Dragging with it
// cuts like holding the cut key, with real press and release edges.
func (c *Controls) cutButton() bool {
	return c.buttons&tcell.ButtonMiddle != 0
}

// Quit reports whether a quit key was pressed.
func (c *Controls) Quit() bool {
	return c.quit
}

// TakePreset returns a requested preset number and clears the request.
// Zero means none was requested.
func (c *Controls) TakePreset() int {
	n := c.preset
	c.preset = 0
	return n
}

// Pointer returns the last mouse cell.
func (c *Controls) Pointer() (int, int) {
	return c.col, c.row
}

// Collect builds the input for the next frame and clears edge state.
// Rows at or below the bottom of vp belong to the status bar.
func (c *Controls) Collect(vp render.Viewport) editor.Input {
	if !c.pointerSeen {
		c.col, c.row = vp.Width/2, vp.Height/2
	}

	in := editor.Input{
		Pointer:       c.pointer(vp),
		OverUI:        c.row >= vp.Height,
		ToggleRun:     c.toggleRun,
		PrimaryDown:   c.primaryDown,
		PrimaryUp:     c.primaryUp,
		SecondaryDown: c.secondaryDown,
		Cut:           c.cutButton() || c.isHeld(keyCut),
		Delete:        c.isHeld(keyDelete),
		Clear:         c.isHeld(keyClear),
		Chain:         c.isHeld(keyChain),
	}

	c.toggleRun = false
	c.primaryDown = false
	c.primaryUp = false
	c.secondaryDown = false
	return in
}

func (c *Controls) pointer(vp render.Viewport) r2.Vec {
	return vp.ToWorld(c.col, c.row)
}

func (c *Controls) isHeld(key rune) bool {
	last, ok := c.held[key]
	if !ok {
		return false
	}
	if c.now().Sub(last) > c.HoldWindow {
		delete(c.held, key)
		return false
	}
	return true
}
