// Package canvas renders a spinner onto a braille character grid.
//
// One host unit is one braille sub-pixel; a terminal cell holds a 2x4 block of
// them, which is close to square on most terminal fonts.
package canvas

import (
	"math"
	"strings"

	"ringspin/pkg/gui/theme"
	"ringspin/pkg/spinner"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// CellWidth and CellHeight are the braille sub-pixels per terminal cell.
	CellWidth  = 2
	CellHeight = 4

	brailleBase = 0x2800
)

// brailleBits maps a sub-pixel (column, row) inside a cell to its braille bit.
var brailleBits = [CellWidth][CellHeight]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// Geometry is the widget state a scene reads when drawing. *spinner.Widget
// satisfies it.
type Geometry interface {
	Width() float64
	DotSize() float64
}

// Scene is a spinner.Surface that keeps what the widget writes and turns it
// into text on demand.
type Scene struct {
	handles   [spinner.DotCount]dotHandle
	positions [spinner.DotCount]spinner.Point
	opacity   [spinner.DotCount]float64
	angle     float64

	geometry   Geometry
	color      spinner.Color
	background string
}

type dotHandle struct {
	scene *Scene
	index int
}

func (h *dotHandle) SetPosition(x, y float64) {
	h.scene.positions[h.index] = spinner.Point{X: x, Y: y}
}

// NewScene returns an empty scene. Dot 0 is fully opaque and each following
// dot fades by a tenth.
func NewScene() *Scene {
	s := &Scene{
		background: theme.CanvasBackground,
	}
	for i := range s.handles {
		s.handles[i] = dotHandle{scene: s, index: i}
		s.opacity[i] = 1 - float64(i)/10
	}
	return s
}

// Dot implements spinner.Surface.
func (s *Scene) Dot(i int) spinner.DotSink {
	if i < 0 || i >= spinner.DotCount {
		return nil
	}
	return &s.handles[i]
}

// Rotation implements spinner.Surface.
func (s *Scene) Rotation() spinner.RotationSink { return s }

// SetAngle implements spinner.RotationSink.
func (s *Scene) SetAngle(degrees float64) { s.angle = degrees }

// Angle returns the last rotation written by the widget.
func (s *Scene) Angle() float64 { return s.angle }

// Position returns the last position written for dot i.
func (s *Scene) Position(i int) spinner.Point { return s.positions[i] }

// Bind makes the scene read the rotation centre and dot diameter from g.
func (s *Scene) Bind(g Geometry) { s.geometry = g }

func (s *Scene) width() float64 {
	if s.geometry == nil {
		return 0
	}
	return s.geometry.Width()
}

func (s *Scene) dotSize() float64 {
	if s.geometry == nil {
		return spinner.DefaultDotSize
	}
	return s.geometry.DotSize()
}

// SetColor sets the dot color. The empty string selects the theme accent.
func (s *Scene) SetColor(c spinner.Color) { s.color = c }

// SetBackground sets the color dots fade toward.
func (s *Scene) SetBackground(hex string) { s.background = hex }

// cell is one rendered terminal cell.
type cell struct {
	bits rune
	// dot is the most opaque dot touching the cell, or -1.
	dot int
}

// Centres returns each dot's centre after the shared rotation.
func (s *Scene) Centres() [spinner.DotCount]spinner.Point {
	width := s.width()
	pivot := spinner.Point{X: width / 2, Y: width / 2}
	half := s.dotSize() / 2
	var out [spinner.DotCount]spinner.Point
	for i, p := range s.positions {
		c := spinner.Point{X: p.X + half, Y: p.Y + half}
		out[i] = spinner.Rotate(c, pivot, s.angle)
	}
	return out
}

func (s *Scene) raster(cols, rows int) [][]cell {
	grid := make([][]cell, rows)
	for y := range grid {
		grid[y] = make([]cell, cols)
		for x := range grid[y] {
			grid[y][x].dot = -1
		}
	}

	radius := math.Max(s.dotSize()/2, 0.5)
	r2 := radius * radius
	for i, c := range s.Centres() {
		minX := int(math.Floor(c.X - radius))
		maxX := int(math.Ceil(c.X + radius))
		minY := int(math.Floor(c.Y - radius))
		maxY := int(math.Ceil(c.Y + radius))
		for py := minY; py <= maxY; py++ {
			for px := minX; px <= maxX; px++ {
				if px < 0 || py < 0 || px >= cols*CellWidth || py >= rows*CellHeight {
					continue
				}
				dx := float64(px) + 0.5 - c.X
				dy := float64(py) + 0.5 - c.Y
				if dx*dx+dy*dy > r2 {
					continue
				}
				cl := &grid[py/CellHeight][px/CellWidth]
				cl.bits |= brailleBits[px%CellWidth][py%CellHeight]
				if cl.dot < 0 || s.opacity[i] > s.opacity[cl.dot] {
					cl.dot = i
				}
			}
		}
	}
	return grid
}

// Mask renders the scene without color, one string per row.
func (s *Scene) Mask(cols, rows int) []string {
	grid := s.raster(cols, rows)
	lines := make([]string, len(grid))
	for y, row := range grid {
		var b strings.Builder
		for _, c := range row {
			b.WriteRune(glyph(c))
		}
		lines[y] = b.String()
	}
	return lines
}

// Render draws the scene into a cols x rows block of styled text.
func (s *Scene) Render(cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	grid := s.raster(cols, rows)
	colors := s.dotColors()

	lines := make([]string, len(grid))
	for y, row := range grid {
		var b strings.Builder
		var run strings.Builder
		runDot := -2
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runDot < 0 {
				b.WriteString(run.String())
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(colors[runDot])).Render(run.String()))
			}
			run.Reset()
		}
		for _, c := range row {
			if c.dot != runDot {
				flush()
				runDot = c.dot
			}
			run.WriteRune(glyph(c))
		}
		flush()
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// dotColors blends the dot color toward the background by each dot's opacity.
func (s *Scene) dotColors() [spinner.DotCount]string {
	fg, err := colorful.Hex(string(s.color))
	if err != nil {
		fg, _ = colorful.Hex(theme.AccentColor)
	}
	bg, err := colorful.Hex(s.background)
	if err != nil {
		bg = colorful.Color{}
	}
	var out [spinner.DotCount]string
	for i, a := range s.opacity {
		out[i] = bg.BlendRgb(fg, a).Clamped().Hex()
	}
	return out
}

func glyph(c cell) rune {
	if c.bits == 0 {
		return ' '
	}
	return brailleBase + c.bits
}
