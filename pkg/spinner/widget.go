// Package spinner implements a circular loading indicator: nine dots laid out
// on a ring and spun by a single shared rotation while the widget is visible.
//
// The widget never paints anything itself. A host provides a Surface with nine
// position sinks and one rotation sink, a Timer, and a Cursor, and the widget
// writes numbers into them.
package spinner

import (
	"time"
)

const (
	// DotCount is the number of dots on the ring.
	DotCount = 9

	// TickInterval is the animation timer period.
	TickInterval = 75 * time.Millisecond

	// StepDegrees is how far the shared rotation advances per tick.
	StepDegrees = 36.0

	DefaultDotSize      = 7.0
	DefaultRingDiameter = 20.0
)

// Color is a hex color such as "#9d87ae". The empty string means the host default.
type Color string

// DotSink receives the position of one dot.
type DotSink interface {
	SetPosition(x, y float64)
}

// RotationSink receives the angle of the transform shared by all dots.
type RotationSink interface {
	SetAngle(degrees float64)
}

// Surface is the host's drawing side of the widget.
type Surface interface {
	Dot(i int) DotSink
	Rotation() RotationSink
}

// Timer is a repeating timer driven by the host event loop.
// Start replaces any previous callback; Stop must be safe to call repeatedly.
type Timer interface {
	Start(interval time.Duration, fn func())
	Stop()
}

// Cursor is the advisory busy indicator.
type Cursor interface {
	SetBusy(busy bool)
}

// Option configures a Widget.
type Option func(*Widget)

// WithDotSize sets the initial dot size.
func WithDotSize(v float64) Option {
	return func(w *Widget) { w.dotSize = v }
}

// WithRingDiameter sets the initial ring diameter. Passing DefaultRingDiameter
// still allows the diameter to be derived from the width on the first Resize.
func WithRingDiameter(v float64) Option {
	return func(w *Widget) { w.ringDiameter = v }
}

// WithColor sets the initial color.
func WithColor(c Color) Option {
	return func(w *Widget) { w.color = c }
}

// WithLogger routes lifecycle events to fn.
func WithLogger(fn func(format string, args ...interface{})) Option {
	return func(w *Widget) {
		if fn != nil {
			w.logf = fn
		}
	}
}

// Widget is the spinner state. It is not safe for concurrent use; every method
// is expected to run on the host's UI loop.
type Widget struct {
	surface Surface
	timer   Timer
	cursor  Cursor
	logf    func(format string, args ...interface{})

	dotSize      float64
	ringDiameter float64
	color        Color
	angle        float64

	width  float64
	height float64

	// derived is set once the ring diameter has been taken from the width.
	derived bool

	running bool
	closed  bool
	// generation identifies the current timer subscription. Callbacks bound
	// to an older generation are ignored.
	generation uint64

	positions [DotCount]Point
}

// New creates a widget writing into surface. A nil timer or cursor is replaced
// with a no-op.
func New(surface Surface, timer Timer, cursor Cursor, opts ...Option) *Widget {
	if timer == nil {
		timer = nopTimer{}
	}
	if cursor == nil {
		cursor = nopCursor{}
	}
	w := &Widget{
		surface:      surface,
		timer:        timer,
		cursor:       cursor,
		logf:         func(string, ...interface{}) {},
		dotSize:      DefaultDotSize,
		ringDiameter: DefaultRingDiameter,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// DotSize returns the dot diameter.
func (w *Widget) DotSize() float64 { return w.dotSize }

// RingDiameter returns the distance of each dot from the centre.
// Despite the name it acts as a radius.
func (w *Widget) RingDiameter() float64 { return w.ringDiameter }

// Color returns the dot color.
func (w *Widget) Color() Color { return w.color }

// Angle returns the shared rotation in degrees, in [0, 360).
func (w *Widget) Angle() float64 { return w.angle }

// Running reports whether the animation timer is active.
func (w *Widget) Running() bool { return w.running }

// Width returns the width last passed to Resize.
func (w *Widget) Width() float64 { return w.width }

// Height returns the height last passed to Resize.
func (w *Widget) Height() float64 { return w.height }

// Positions returns the dot positions from the last layout.
func (w *Widget) Positions() [DotCount]Point { return w.positions }

// SetDotSize updates the dot size and lays the dots out again.
func (w *Widget) SetDotSize(v float64) {
	w.dotSize = v
	w.Relayout()
}

// SetRingDiameter updates the ring diameter and lays the dots out again.
func (w *Widget) SetRingDiameter(v float64) {
	w.ringDiameter = v
	w.Relayout()
}

// SetColor updates the dot color. Geometry is unaffected.
func (w *Widget) SetColor(c Color) {
	w.color = c
}

// Resize records new dimensions and lays the dots out again. The first time it
// runs with the ring diameter still at DefaultRingDiameter, the diameter is
// replaced by width/3.
func (w *Widget) Resize(width, height float64) {
	w.width = width
	w.height = height
	if !w.derived && w.ringDiameter == DefaultRingDiameter {
		w.derived = true
		w.ringDiameter = width / 3
		w.logf("spinner: ring diameter derived from width %.1f: %.2f", width, w.ringDiameter)
	}
	w.Relayout()
}

// Relayout recomputes all dot positions and writes them to the surface.
func (w *Widget) Relayout() {
	w.positions = Layout(w.width, w.dotSize, w.ringDiameter)
	if w.surface == nil {
		return
	}
	for i, p := range w.positions {
		if sink := w.surface.Dot(i); sink != nil {
			sink.SetPosition(p.X, p.Y)
		}
	}
}

// SetVisible forwards a host visibility change.
func (w *Widget) SetVisible(visible bool) {
	if visible {
		w.OnBecomeVisible()
	} else {
		w.OnBecomeHidden()
	}
}

// OnBecomeVisible starts the animation. It does nothing if already running or
// after Close.
func (w *Widget) OnBecomeVisible() {
	if w.running || w.closed {
		return
	}
	w.running = true
	w.generation++
	gen := w.generation
	w.cursor.SetBusy(true)
	w.timer.Start(TickInterval, func() {
		if gen != w.generation {
			return
		}
		w.OnTick()
	})
	w.logf("spinner: started (subscription %d)", gen)
}

// OnBecomeHidden stops the animation. It does nothing if not running.
func (w *Widget) OnBecomeHidden() {
	if !w.running {
		return
	}
	w.timer.Stop()
	w.generation++
	w.running = false
	w.cursor.SetBusy(false)
	w.logf("spinner: stopped at %.0f°", w.angle)
}

// OnTick advances the shared rotation by one step.
func (w *Widget) OnTick() {
	if !w.running {
		return
	}
	w.angle = Advance(w.angle, 1)
	if w.surface == nil {
		return
	}
	if r := w.surface.Rotation(); r != nil {
		r.SetAngle(w.angle)
	}
}

// Close stops the timer and prevents any restart. Safe to call more than once.
func (w *Widget) Close() {
	w.OnBecomeHidden()
	w.closed = true
}

// Advance returns angle moved forward by n ticks, wrapped into [0, 360).
func Advance(angle float64, n int) float64 {
	return mod360(angle + StepDegrees*float64(n))
}

type nopTimer struct{}

func (nopTimer) Start(time.Duration, func()) {}
func (nopTimer) Stop()                       {}

type nopCursor struct{}

func (nopCursor) SetBusy(bool) {}
