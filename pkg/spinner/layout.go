package spinner

import "math"

// LayoutSlots is the number of equally spaced angular slots on the ring. Only
// the first DotCount of them are occupied, which leaves a gap after the last dot.
const LayoutSlots = 10

const (
	layoutOffset = math.Pi
	layoutStep   = 2 * math.Pi / LayoutSlots
)

// Point is a position in host coordinates: the top-left corner of a dot's
// bounding box.
type Point struct {
	X, Y float64
}

// DotPosition returns where dot i sits for a widget of the given width. Both
// axes are centred on width; height is never consulted.
func DotPosition(i int, width, dotSize, ringDiameter float64) Point {
	origin := (width - dotSize) / 2
	theta := layoutOffset + float64(i)*layoutStep
	return Point{
		X: origin + math.Sin(theta)*ringDiameter,
		Y: origin + math.Cos(theta)*ringDiameter,
	}
}

// Layout returns the positions of all dots.
func Layout(width, dotSize, ringDiameter float64) [DotCount]Point {
	var pts [DotCount]Point
	for i := range pts {
		pts[i] = DotPosition(i, width, dotSize, ringDiameter)
	}
	return pts
}

// Rotate turns p about centre by degrees, clockwise in screen coordinates
// (y grows downward).
func Rotate(p, centre Point, degrees float64) Point {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	dx, dy := p.X-centre.X, p.Y-centre.Y
	return Point{
		X: centre.X + dx*cos - dy*sin,
		Y: centre.Y + dx*sin + dy*cos,
	}
}

func mod360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
