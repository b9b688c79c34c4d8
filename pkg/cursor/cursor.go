// Package cursor provides busy indicators for the spinner.
package cursor

import (
	"io"

	"github.com/muesli/termenv"
)

// Pointer shapes understood by terminals that implement OSC 22.
const (
	ShapeBusy    = "watch"
	ShapeDefault = "default"
)

// Terminal switches the mouse pointer shape with OSC 22 and hides the text
// cursor while busy. Terminals without OSC 22 ignore the sequence.
type Terminal struct {
	out  *termenv.Output
	busy bool
}

// NewTerminal writes to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{out: termenv.NewOutput(w)}
}

// SetBusy implements spinner.Cursor. Repeating the current state writes nothing.
func (t *Terminal) SetBusy(busy bool) {
	if t == nil || t.busy == busy {
		return
	}
	t.busy = busy
	if busy {
		_, _ = t.out.WriteString(termenv.OSC + "22;" + ShapeBusy + termenv.ST)
		t.out.HideCursor()
		return
	}
	_, _ = t.out.WriteString(termenv.OSC + "22;" + ShapeDefault + termenv.ST)
	t.out.ShowCursor()
}

// Busy reports the last state set.
func (t *Terminal) Busy() bool { return t != nil && t.busy }

// Recorder keeps every transition; headless renderers use it in place of a
// real terminal.
type Recorder struct {
	Transitions []bool
}

// SetBusy implements spinner.Cursor.
func (r *Recorder) SetBusy(busy bool) {
	r.Transitions = append(r.Transitions, busy)
}

// Busy reports the last recorded state.
func (r *Recorder) Busy() bool {
	return len(r.Transitions) > 0 && r.Transitions[len(r.Transitions)-1]
}
