package spinner

import (
	"math"
	"testing"
)

func TestLayoutLeavesOneSlotEmpty(t *testing.T) {
	pts := Layout(100, 0, 30)
	centre := Point{X: 50, Y: 50}

	dist := func(a, b Point) float64 { return math.Hypot(a.X-b.X, a.Y-b.Y) }

	neighbour := dist(pts[0], pts[1])
	for i := 1; i < DotCount-1; i++ {
		if d := dist(pts[i], pts[i+1]); math.Abs(d-neighbour) > 1e-9 {
			t.Fatalf("gap between dot %d and %d = %v want %v", i, i+1, d, neighbour)
		}
	}
	if wrap := dist(pts[DotCount-1], pts[0]); wrap < neighbour*1.5 {
		t.Fatalf("gap between last and first dot = %v, expected the missing tenth slot", wrap)
	}
	for i, p := range pts {
		if r := dist(p, centre); math.Abs(r-30) > 1e-9 {
			t.Fatalf("dot %d radius = %v want 30", i, r)
		}
	}
}

func TestDotZeroSitsAboveCentre(t *testing.T) {
	p := DotPosition(0, 100, 0, 30)
	if math.Abs(p.X-50) > 1e-9 || math.Abs(p.Y-20) > 1e-9 {
		t.Fatalf("dot 0 = %+v want (50, 20)", p)
	}
}

func TestRotate(t *testing.T) {
	centre := Point{X: 10, Y: 10}
	tests := []struct {
		degrees float64
		want    Point
	}{
		{0, Point{X: 20, Y: 10}},
		{90, Point{X: 10, Y: 20}},
		{180, Point{X: 0, Y: 10}},
		{270, Point{X: 10, Y: 0}},
	}
	for _, tt := range tests {
		got := Rotate(Point{X: 20, Y: 10}, centre, tt.degrees)
		if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
			t.Fatalf("rotate %v° = %+v want %+v", tt.degrees, got, tt.want)
		}
	}
}

func TestAdvanceWraps(t *testing.T) {
	if got := Advance(324, 1); got != 0 {
		t.Fatalf("Advance(324, 1) = %v want 0", got)
	}
	if got := Advance(0, 13); got != 108 {
		t.Fatalf("Advance(0, 13) = %v want 108", got)
	}
	if got := mod360(-36); got != 324 {
		t.Fatalf("mod360(-36) = %v want 324", got)
	}
}
