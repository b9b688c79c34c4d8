package spinner

import "time"

// ManualTimer is a Timer that only fires when Fire is called. Headless
// renderers use it to step the animation deterministically.
type ManualTimer struct {
	interval time.Duration
	fn       func()
	starts   int
	stops    int
}

// Start implements Timer.
func (t *ManualTimer) Start(interval time.Duration, fn func()) {
	t.interval = interval
	t.fn = fn
	t.starts++
}

// Stop implements Timer.
func (t *ManualTimer) Stop() {
	if t.fn != nil {
		t.stops++
	}
	t.fn = nil
}

// Active reports whether a callback is subscribed.
func (t *ManualTimer) Active() bool { return t.fn != nil }

// Interval returns the interval passed to the last Start.
func (t *ManualTimer) Interval() time.Duration { return t.interval }

// Starts returns how many times Start was called.
func (t *ManualTimer) Starts() int { return t.starts }

// Stops returns how many times an active timer was stopped.
func (t *ManualTimer) Stops() int { return t.stops }

// Fire invokes the subscribed callback n times. It stops early if the callback
// unsubscribes.
func (t *ManualTimer) Fire(n int) {
	for i := 0; i < n && t.fn != nil; i++ {
		t.fn()
	}
}
