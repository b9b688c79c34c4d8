package components

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastTimerID int64

func nextTimerID() int {
	return int(atomic.AddInt64(&lastTimerID, 1))
}

// TickMsg is delivered by the Bubble Tea runtime for a TeaTimer tick.
type TickMsg struct {
	Time time.Time
	ID   int
	tag  int
}

// TeaTimer implements spinner.Timer on top of Bubble Tea tick commands.
// Every Start and Stop bumps the tag, so a tick scheduled for an older
// subscription is dropped when it arrives.
type TeaTimer struct {
	id       int
	tag      int
	interval time.Duration
	fn       func()
}

// NewTeaTimer returns an idle timer with a unique ID.
func NewTeaTimer() *TeaTimer {
	return &TeaTimer{id: nextTimerID()}
}

// ID returns the timer's identifier.
func (t *TeaTimer) ID() int { return t.id }

// Start implements spinner.Timer. The caller must schedule Cmd to begin ticking.
func (t *TeaTimer) Start(interval time.Duration, fn func()) {
	t.interval = interval
	t.fn = fn
	t.tag++
}

// Stop implements spinner.Timer.
func (t *TeaTimer) Stop() {
	t.fn = nil
	t.tag++
}

// Active reports whether a callback is subscribed.
func (t *TeaTimer) Active() bool { return t.fn != nil }

// Cmd schedules the next tick, or returns nil when stopped.
func (t *TeaTimer) Cmd() tea.Cmd {
	if t.fn == nil {
		return nil
	}
	id, tag := t.id, t.tag
	return tea.Tick(t.interval, func(now time.Time) tea.Msg {
		return TickMsg{Time: now, ID: id, tag: tag}
	})
}

// Update runs the callback for a current tick and schedules the next one.
func (t *TeaTimer) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(TickMsg)
	if !ok || tick.ID != t.id || tick.tag != t.tag || t.fn == nil {
		return nil
	}
	t.fn()
	return t.Cmd()
}
