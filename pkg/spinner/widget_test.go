package spinner

import (
	"math"
	"testing"
)

const epsilon = 1e-9

type recordSink struct {
	x, y  float64
	calls int
}

func (s *recordSink) SetPosition(x, y float64) {
	s.x, s.y = x, y
	s.calls++
}

type recordRotation struct {
	angle float64
	calls int
}

func (r *recordRotation) SetAngle(degrees float64) {
	r.angle = degrees
	r.calls++
}

type recordSurface struct {
	dots     [DotCount]*recordSink
	rotation *recordRotation
}

func newRecordSurface() *recordSurface {
	s := &recordSurface{rotation: &recordRotation{}}
	for i := range s.dots {
		s.dots[i] = &recordSink{}
	}
	return s
}

func (s *recordSurface) Dot(i int) DotSink      { return s.dots[i] }
func (s *recordSurface) Rotation() RotationSink { return s.rotation }

type recordCursor struct {
	busy        bool
	transitions []bool
}

func (c *recordCursor) SetBusy(busy bool) {
	c.busy = busy
	c.transitions = append(c.transitions, busy)
}

func newTestWidget(opts ...Option) (*Widget, *recordSurface, *ManualTimer, *recordCursor) {
	surface := newRecordSurface()
	timer := &ManualTimer{}
	cursor := &recordCursor{}
	return New(surface, timer, cursor, opts...), surface, timer, cursor
}

func near(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestNewDefaults(t *testing.T) {
	w, _, _, _ := newTestWidget()
	if w.DotSize() != DefaultDotSize {
		t.Fatalf("dot size = %v want %v", w.DotSize(), DefaultDotSize)
	}
	if w.RingDiameter() != DefaultRingDiameter {
		t.Fatalf("ring diameter = %v want %v", w.RingDiameter(), DefaultRingDiameter)
	}
	if w.Color() != "" {
		t.Fatalf("color = %q want host default", w.Color())
	}
	if w.Angle() != 0 || w.Running() {
		t.Fatalf("new widget should be idle at 0°, got angle=%v running=%v", w.Angle(), w.Running())
	}
}

func TestTicksAdvanceAngleModulo360(t *testing.T) {
	for n := 0; n <= 25; n++ {
		w, surface, timer, _ := newTestWidget()
		w.OnBecomeVisible()
		timer.Fire(n)

		want := math.Mod(36*float64(n), 360)
		if !near(w.Angle(), want) {
			t.Fatalf("after %d ticks angle = %v want %v", n, w.Angle(), want)
		}
		if n > 0 && !near(surface.rotation.angle, want) {
			t.Fatalf("after %d ticks rotation sink = %v want %v", n, surface.rotation.angle, want)
		}
		if w.Angle() < 0 || w.Angle() >= 360 {
			t.Fatalf("angle %v escaped [0, 360)", w.Angle())
		}
	}
}

func TestTickUsesSingleSharedRotation(t *testing.T) {
	w, surface, timer, _ := newTestWidget()
	w.Resize(60, 60)
	before := make([]int, DotCount)
	for i, d := range surface.dots {
		before[i] = d.calls
	}

	w.OnBecomeVisible()
	timer.Fire(3)

	if surface.rotation.calls != 3 {
		t.Fatalf("rotation writes = %d want 3", surface.rotation.calls)
	}
	for i, d := range surface.dots {
		if d.calls != before[i] {
			t.Fatalf("dot %d was repositioned by a tick", i)
		}
	}
}

func TestHideWhenNeverShownIsNoop(t *testing.T) {
	w, _, timer, cursor := newTestWidget()
	w.OnBecomeHidden()

	if len(cursor.transitions) != 0 {
		t.Fatalf("cursor transitions = %v want none", cursor.transitions)
	}
	if timer.Stops() != 0 || timer.Active() {
		t.Fatalf("timer touched: stops=%d active=%v", timer.Stops(), timer.Active())
	}
}

func TestShowThenHideLeavesNoActiveTimer(t *testing.T) {
	w, surface, timer, cursor := newTestWidget()
	w.OnBecomeVisible()
	if !timer.Active() || timer.Interval() != TickInterval {
		t.Fatalf("timer active=%v interval=%v want active at %v", timer.Active(), timer.Interval(), TickInterval)
	}
	if !cursor.busy {
		t.Fatalf("cursor should be busy while running")
	}

	stale := timer.fn
	w.OnBecomeHidden()

	if timer.Active() {
		t.Fatalf("timer still active after hide")
	}
	if cursor.busy {
		t.Fatalf("cursor still busy after hide")
	}

	// A callback the host had already queued must not move anything.
	stale()
	w.OnTick()
	if w.Angle() != 0 || surface.rotation.calls != 0 {
		t.Fatalf("tick after hide changed state: angle=%v writes=%d", w.Angle(), surface.rotation.calls)
	}
}

func TestStaleCallbackIgnoredAfterRestart(t *testing.T) {
	w, _, timer, _ := newTestWidget()
	w.OnBecomeVisible()
	stale := timer.fn
	w.OnBecomeHidden()
	w.OnBecomeVisible()

	stale()
	if w.Angle() != 0 {
		t.Fatalf("old subscription advanced angle to %v", w.Angle())
	}
	timer.Fire(1)
	if w.Angle() != StepDegrees {
		t.Fatalf("angle = %v want %v", w.Angle(), StepDegrees)
	}
}

func TestShowIsIdempotent(t *testing.T) {
	w, _, timer, cursor := newTestWidget()
	w.OnBecomeVisible()
	w.OnBecomeVisible()
	w.SetVisible(true)

	if timer.Starts() != 1 {
		t.Fatalf("timer starts = %d want 1", timer.Starts())
	}
	if len(cursor.transitions) != 1 {
		t.Fatalf("cursor transitions = %v want [true]", cursor.transitions)
	}
}

func TestAnglePersistsAcrossHideAndShow(t *testing.T) {
	w, _, timer, _ := newTestWidget()
	w.SetVisible(true)
	timer.Fire(4)
	w.SetVisible(false)
	w.SetVisible(true)
	timer.Fire(1)

	if !near(w.Angle(), 180) {
		t.Fatalf("angle = %v want 180", w.Angle())
	}
}

func TestCloseIsIdempotentAndFinal(t *testing.T) {
	w, _, timer, cursor := newTestWidget()
	w.OnBecomeVisible()
	w.Close()
	w.Close()

	if timer.Active() || timer.Stops() != 1 {
		t.Fatalf("timer active=%v stops=%d want inactive, 1 stop", timer.Active(), timer.Stops())
	}
	if cursor.busy {
		t.Fatalf("cursor left busy after close")
	}

	w.OnBecomeVisible()
	if w.Running() || timer.Active() {
		t.Fatalf("closed widget restarted")
	}
}

func TestCloseWithoutShow(t *testing.T) {
	w, _, timer, cursor := newTestWidget()
	w.Close()
	if timer.Stops() != 0 || len(cursor.transitions) != 0 {
		t.Fatalf("close on idle widget touched timer or cursor")
	}
}

func TestRelayoutDotZero(t *testing.T) {
	tests := []struct {
		name    string
		dotSize float64
		wantX   float64
		wantY   float64
	}{
		{name: "zero dot size", dotSize: 0, wantX: 15, wantY: -5},
		{name: "default dot size", dotSize: 7, wantX: 11.5, wantY: -8.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, surface, _, _ := newTestWidget(WithDotSize(tt.dotSize))
			w.width = 30
			w.Relayout()

			got := surface.dots[0]
			if math.Abs(got.x-tt.wantX) > 1e-9 || math.Abs(got.y-tt.wantY) > 1e-9 {
				t.Fatalf("dot 0 = (%v, %v) want (%v, %v)", got.x, got.y, tt.wantX, tt.wantY)
			}
			if w.RingDiameter() != DefaultRingDiameter {
				t.Fatalf("plain relayout changed ring diameter to %v", w.RingDiameter())
			}
		})
	}
}

func TestRelayoutMatchesFormulaForEveryDot(t *testing.T) {
	w, surface, _, _ := newTestWidget(WithRingDiameter(12))
	w.Resize(48, 20)

	for i, d := range surface.dots {
		theta := math.Pi + float64(i)*2*math.Pi/10
		wantX := (48-7)/2.0 + math.Sin(theta)*12
		wantY := (48-7)/2.0 + math.Cos(theta)*12
		if !near(d.x, wantX) || !near(d.y, wantY) {
			t.Fatalf("dot %d = (%v, %v) want (%v, %v)", i, d.x, d.y, wantX, wantY)
		}
	}
}

func TestLayoutIgnoresHeight(t *testing.T) {
	a, sa, _, _ := newTestWidget(WithRingDiameter(10))
	b, sb, _, _ := newTestWidget(WithRingDiameter(10))
	a.Resize(40, 40)
	b.Resize(40, 400)

	for i := range sa.dots {
		if sa.dots[i].x != sb.dots[i].x || sa.dots[i].y != sb.dots[i].y {
			t.Fatalf("dot %d differs between heights", i)
		}
	}
}

func TestRingDiameterDerivedOnce(t *testing.T) {
	w, _, _, _ := newTestWidget()
	w.Resize(60, 60)
	if w.RingDiameter() != 20 {
		t.Fatalf("ring diameter = %v want 20 (60/3)", w.RingDiameter())
	}

	w.SetDotSize(5)
	w.Resize(90, 90)
	if w.RingDiameter() != 20 {
		t.Fatalf("ring diameter re-derived to %v", w.RingDiameter())
	}

	want := DotPosition(0, 90, 5, 20)
	if got := w.Positions()[0]; got != want {
		t.Fatalf("dot 0 = %+v want %+v", got, want)
	}
}

func TestRingDiameterDerivedFromWidth(t *testing.T) {
	w, surface, _, _ := newTestWidget()
	w.Resize(30, 30)
	if !near(w.RingDiameter(), 10) {
		t.Fatalf("ring diameter = %v want 10", w.RingDiameter())
	}
	want := DotPosition(3, 30, DefaultDotSize, 10)
	if got := surface.dots[3]; !near(got.x, want.X) || !near(got.y, want.Y) {
		t.Fatalf("dot 3 = (%v, %v) want %+v", got.x, got.y, want)
	}
}

func TestExplicitRingDiameterNotDerived(t *testing.T) {
	w, _, _, _ := newTestWidget(WithRingDiameter(8))
	w.Resize(90, 90)
	if w.RingDiameter() != 8 {
		t.Fatalf("ring diameter = %v want 8", w.RingDiameter())
	}
}

func TestSetDotSizeTwiceRelayoutsTwice(t *testing.T) {
	w, surface, _, _ := newTestWidget(WithRingDiameter(9))
	w.width = 40

	w.SetDotSize(4)
	first := surface.dots[2]
	want := DotPosition(2, 40, 4, 9)
	if !near(first.x, want.X) || !near(first.y, want.Y) {
		t.Fatalf("after first set dot 2 = (%v, %v) want %+v", first.x, first.y, want)
	}

	w.SetDotSize(6)
	want = DotPosition(2, 40, 6, 9)
	if !near(first.x, want.X) || !near(first.y, want.Y) {
		t.Fatalf("after second set dot 2 = (%v, %v) want %+v", first.x, first.y, want)
	}

	for i, d := range surface.dots {
		if d.calls != 2 {
			t.Fatalf("dot %d written %d times want 2", i, d.calls)
		}
	}
}

func TestSetRingDiameterRelayouts(t *testing.T) {
	w, surface, _, _ := newTestWidget()
	w.width = 40
	w.SetRingDiameter(15)

	want := DotPosition(5, 40, DefaultDotSize, 15)
	if got := surface.dots[5]; !near(got.x, want.X) || !near(got.y, want.Y) {
		t.Fatalf("dot 5 = (%v, %v) want %+v", got.x, got.y, want)
	}
}

func TestSetColorDoesNotRelayout(t *testing.T) {
	w, surface, _, _ := newTestWidget()
	w.SetColor("#ff5555")

	if w.Color() != "#ff5555" {
		t.Fatalf("color = %q", w.Color())
	}
	for i, d := range surface.dots {
		if d.calls != 0 {
			t.Fatalf("dot %d repositioned by color change", i)
		}
	}
}

func TestDegenerateWidthDoesNotPanic(t *testing.T) {
	for _, width := range []float64{0, -10} {
		w, _, _, _ := newTestWidget()
		w.Resize(width, width)
		for i, p := range w.Positions() {
			if math.IsNaN(p.X) || math.IsNaN(p.Y) {
				t.Fatalf("width %v dot %d is NaN", width, i)
			}
		}
	}
}

func TestNilTimerAndCursor(t *testing.T) {
	w := New(newRecordSurface(), nil, nil)
	w.OnBecomeVisible()
	w.OnTick()
	w.Close()
	if w.Angle() != StepDegrees {
		t.Fatalf("angle = %v want %v", w.Angle(), StepDegrees)
	}
}

func TestLoggerReceivesLifecycleEvents(t *testing.T) {
	var lines []string
	w, _, _, _ := newTestWidget(WithLogger(func(format string, args ...interface{}) {
		lines = append(lines, format)
	}))
	w.Resize(60, 60)
	w.OnBecomeVisible()
	w.OnBecomeHidden()

	if len(lines) != 3 {
		t.Fatalf("log lines = %d want 3: %v", len(lines), lines)
	}
}
