// Package render turns sandbox snapshots into character grids for
// terminals and headless output.
package render

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/TFMV/ropesim/sim"
)

// OutputOptions defines rendering configuration options
type OutputOptions struct {
	Format     string  // Output format (ascii)
	Width      int     // Width of the output in columns, border included
	Height     int     // Height of the output in rows, border included
	Zoom       float64 // Columns per world unit
	Center     r2.Vec  // World point shown in the middle of the frame
	ShowTitle  bool    // Frame number and run state in the top border
	ShowStatus bool    // Point and link counts in the bottom border
}

// DefaultCenter frames the built-in scenes.
var DefaultCenter = r2.Vec{X: -2, Y: 1}

// Renderer interface defines methods that all rendering backends must implement
type Renderer interface {
	// Render draws the snapshot using the provided options
	Render(snap sim.Snapshot, options *OutputOptions) ([]byte, error)

	// Name returns the name of the renderer
	Name() string

	// Description returns a description of the renderer
	Description() string
}

// NewDefaultOptions creates a default set of output options
func NewDefaultOptions(format string) *OutputOptions {
	return &OutputOptions{
		Format:     format,
		Width:      80,
		Height:     26,
		Zoom:       4,
		Center:     DefaultCenter,
		ShowTitle:  true,
		ShowStatus: true,
	}
}

// GetRenderer returns the appropriate renderer based on format
func GetRenderer(format string) (Renderer, error) {
	switch strings.ToLower(format) {
	case "ascii", "text":
		return &ASCIIRenderer{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// ASCIIRenderer outputs ASCII art format
type ASCIIRenderer struct{}

// Name returns the name of the renderer
func (r *ASCIIRenderer) Name() string {
	return "ASCII Renderer"
}

// Description returns a description of the renderer
func (r *ASCIIRenderer) Description() string {
	return "Renders the rope scene as ASCII art for terminal or text-based output"
}

// Render creates an ASCII representation of the snapshot inside a border
func (r *ASCIIRenderer) Render(snap sim.Snapshot, options *OutputOptions) ([]byte, error) {
	if options == nil {
		options = NewDefaultOptions("ascii")
	}
	if options.Zoom <= 0 {
		return nil, fmt.Errorf("invalid zoom %g", options.Zoom)
	}

	// Ensure a sane size
	width := clamp(options.Width, 20, 1000)
	height := clamp(options.Height, 8, 1000)

	vp := Viewport{
		Center: options.Center,
		Zoom:   options.Zoom,
		Width:  width - 2,
		Height: height - 2,
	}
	scene := Rasterize(snap, vp)

	// Create a grid for ASCII art
	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	// Draw a border around the scene
	for i := 0; i < width; i++ {
		grid[0][i] = '-'
		grid[height-1][i] = '-'
	}
	for i := 0; i < height; i++ {
		grid[i][0] = '|'
		grid[i][width-1] = '|'
	}
	grid[0][0] = '+'
	grid[0][width-1] = '+'
	grid[height-1][0] = '+'
	grid[height-1][width-1] = '+'

	for row := 0; row < scene.Height; row++ {
		for col := 0; col < scene.Width; col++ {
			grid[row+1][col+1] = scene.At(col, row).Rune
		}
	}

	if options.ShowTitle {
		state := "paused"
		if snap.Running {
			state = "running"
		}
		writeLabel(grid[0], fmt.Sprintf(" ropesim frame %d %s ", snap.Frame, state))
	}

	if options.ShowStatus {
		writeLabel(grid[height-1], fmt.Sprintf(" points %d locked %d links %d ", len(snap.Points), snap.LockedPoints(), snap.LiveLinks()))
	}

	// Convert grid to string
	var result strings.Builder
	for _, row := range grid {
		result.WriteString(string(row))
		result.WriteRune('\n')
	}

	return []byte(result.String()), nil
}

// writeLabel writes text into a border row after the corner, truncating
// it to fit.
func writeLabel(row []rune, text string) {
	limit := len(row) - 4
	for i, c := range []rune(text) {
		if i >= limit {
			break
		}
		row[i+2] = c
	}
}

// Clamp a value between min and max
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
