package components

import (
	"ringspin/pkg/gui/canvas"
	"ringspin/pkg/gui/layout"
	"ringspin/pkg/spinner"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

// RingSpinner hosts a spinner.Widget inside a Bubble Tea program, drawing it
// on a braille canvas with an optional label underneath.
type RingSpinner struct {
	widget  *spinner.Widget
	scene   *canvas.Scene
	timer   *TeaTimer
	label   string
	cols    int
	rows    int
	visible bool
	closed  bool
	// laidOut is set once the widget has been given its first size.
	laidOut bool
}

// NewRingSpinner returns a hidden spinner. cursor may be nil.
func NewRingSpinner(cursor spinner.Cursor, opts ...spinner.Option) *RingSpinner {
	scene := canvas.NewScene()
	timer := NewTeaTimer()
	w := spinner.New(scene, timer, cursor, opts...)
	scene.Bind(w)
	scene.SetColor(w.Color())
	return &RingSpinner{
		widget: w,
		scene:  scene,
		timer:  timer,
	}
}

// Widget exposes the underlying widget state.
func (r *RingSpinner) Widget() *spinner.Widget {
	if r == nil {
		return nil
	}
	return r.widget
}

// SetLabel updates the text shown under the ring.
func (r *RingSpinner) SetLabel(label string) {
	if r == nil {
		return
	}
	r.label = label
	r.relayout()
}

// SetSize gives the spinner a cols x rows block. The widget gets the largest
// square that fits above the label row.
func (r *RingSpinner) SetSize(cols, rows int) {
	if r == nil {
		return
	}
	r.cols = cols
	r.rows = rows
	r.relayout()
}

// relayout sizes the widget to the square left by the block and label. The
// first size is held back until the spinner is shown, so the one-time ring
// diameter derivation sees the final block and label.
func (r *RingSpinner) relayout() {
	width := r.unitWidth()
	if width <= 0 {
		return
	}
	if !r.laidOut && !r.visible {
		return
	}
	r.laidOut = true
	r.widget.Resize(float64(width), float64(width))
}

func (r *RingSpinner) unitWidth() int {
	rows := r.rows
	if r.label != "" {
		rows -= layout.LabelRows
	}
	return layout.SquareUnits(r.cols, rows)
}

// SetDotSize forwards to the widget.
func (r *RingSpinner) SetDotSize(v float64) {
	if r == nil {
		return
	}
	r.widget.SetDotSize(v)
	r.relayout()
}

// SetRingDiameter forwards to the widget.
func (r *RingSpinner) SetRingDiameter(v float64) {
	if r == nil {
		return
	}
	r.widget.SetRingDiameter(v)
}

// SetColor forwards to the widget.
func (r *RingSpinner) SetColor(c spinner.Color) {
	if r == nil {
		return
	}
	r.widget.SetColor(c)
	r.scene.SetColor(c)
}

// Visible reports whether the spinner is shown.
func (r *RingSpinner) Visible() bool { return r != nil && r.visible }

// SetVisible shows or hides the spinner and returns the command that starts
// ticking, if any.
func (r *RingSpinner) SetVisible(visible bool) tea.Cmd {
	if r == nil || r.closed {
		return nil
	}
	r.visible = visible
	r.relayout()
	wasRunning := r.widget.Running()
	r.widget.SetVisible(visible)
	// A second show must not start a second tick chain.
	if wasRunning || !r.widget.Running() {
		return nil
	}
	return r.timer.Cmd()
}

// Init starts the animation if the spinner was made visible before the
// program started.
func (r *RingSpinner) Init() tea.Cmd {
	if r == nil || !r.visible {
		return nil
	}
	return r.timer.Cmd()
}

// Update advances the animation on the spinner's own tick messages.
func (r *RingSpinner) Update(msg tea.Msg) tea.Cmd {
	if r == nil {
		return nil
	}
	switch tick := msg.(type) {
	case TickMsg:
		return r.timer.Update(tick)
	}
	return nil
}

// Close stops the animation for good. Call it before the program exits.
func (r *RingSpinner) Close() {
	if r == nil {
		return
	}
	r.visible = false
	r.closed = true
	r.widget.Close()
}

// View renders the ring and label centred in the spinner's block.
func (r *RingSpinner) View() string {
	if r == nil || !r.visible || r.cols <= 0 || r.rows <= 0 {
		return ""
	}
	width := r.unitWidth()
	if width <= 0 {
		return ""
	}
	cols, rows := layout.CellsFor(width)
	content := r.scene.Render(cols, rows)

	if r.label != "" {
		label := r.label
		if runewidth.StringWidth(label) > r.cols {
			label = truncate.StringWithTail(label, uint(r.cols), "…")
		}
		content = lipgloss.JoinVertical(lipgloss.Center, content, "", label)
	}
	return lipgloss.Place(r.cols, r.rows, lipgloss.Center, lipgloss.Center, content)
}
