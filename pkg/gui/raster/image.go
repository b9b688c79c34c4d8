// Package raster renders a spinner frame to an anti-aliased RGBA image.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"ringspin/pkg/gui/theme"
	"ringspin/pkg/spinner"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/vector"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// Image is a spinner.Surface backed by a square RGBA image. One host unit is
// one pixel.
type Image struct {
	size      int
	handles   [spinner.DotCount]dotHandle
	positions [spinner.DotCount]spinner.Point
	angle     float64

	dotSize    float64
	color      spinner.Color
	background string
}

type dotHandle struct {
	img   *Image
	index int
}

func (h *dotHandle) SetPosition(x, y float64) {
	h.img.positions[h.index] = spinner.Point{X: x, Y: y}
}

// NewImage returns a size x size surface with a transparent background.
func NewImage(size int) *Image {
	img := &Image{size: size, dotSize: spinner.DefaultDotSize}
	for i := range img.handles {
		img.handles[i] = dotHandle{img: img, index: i}
	}
	return img
}

// Dot implements spinner.Surface.
func (m *Image) Dot(i int) spinner.DotSink {
	if i < 0 || i >= spinner.DotCount {
		return nil
	}
	return &m.handles[i]
}

// Rotation implements spinner.Surface.
func (m *Image) Rotation() spinner.RotationSink { return m }

// SetAngle implements spinner.RotationSink.
func (m *Image) SetAngle(degrees float64) { m.angle = degrees }

// SetDotSize sets the dot diameter in pixels.
func (m *Image) SetDotSize(v float64) { m.dotSize = v }

// SetColor sets the dot color. The empty string selects the theme accent.
func (m *Image) SetColor(c spinner.Color) { m.color = c }

// SetBackground fills the frame with hex before drawing. Empty means transparent.
func (m *Image) SetBackground(hex string) { m.background = hex }

// Size returns the image edge length in pixels.
func (m *Image) Size() int { return m.size }

// Render draws the current frame.
func (m *Image) Render() (*image.RGBA, error) {
	if m.size <= 0 {
		return nil, fmt.Errorf("image size must be positive, got %d", m.size)
	}
	dst := image.NewRGBA(image.Rect(0, 0, m.size, m.size))
	if m.background != "" {
		bg, err := colorful.Hex(m.background)
		if err != nil {
			return nil, fmt.Errorf("parse background: %w", err)
		}
		draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	fg, err := colorful.Hex(string(m.color))
	if err != nil {
		fg, _ = colorful.Hex(theme.AccentColor)
	}
	r, g, b := fg.RGB255()

	pivot := spinner.Point{X: float64(m.size) / 2, Y: float64(m.size) / 2}
	radius := math.Max(m.dotSize/2, 0.5)
	z := vector.NewRasterizer(m.size, m.size)
	for i := spinner.DotCount - 1; i >= 0; i-- {
		p := m.positions[i]
		c := spinner.Rotate(spinner.Point{X: p.X + m.dotSize/2, Y: p.Y + m.dotSize/2}, pivot, m.angle)
		alpha := 1 - float64(i)/10

		z.Reset(m.size, m.size)
		circle(z, float32(c.X), float32(c.Y), float32(radius))
		src := image.NewUniform(color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(alpha * 255))})
		z.Draw(dst, dst.Bounds(), src, image.Point{})
	}
	return dst, nil
}

// Encode renders the frame and writes it as PNG.
func (m *Image) Encode(w io.Writer) error {
	frame, err := m.Render()
	if err != nil {
		return err
	}
	if err := png.Encode(w, frame); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func circle(z *vector.Rasterizer, cx, cy, r float32) {
	k := float32(kappa) * r
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()
}
