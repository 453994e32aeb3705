package layout

import "time"

// DebounceWindow is the quiet period before a relayout fires.
const DebounceWindow = 300 * time.Millisecond

// Size is a viewport size in device pixels.
type Size struct {
	Width  int
	Height int
}

// Debouncer coalesces resize events. Every Push restarts the window; Poll
// fires once the window passes with no further Push, handing back the last
// size seen. There is never more than one pending relayout.
type Debouncer struct {
	Window time.Duration

	pending  bool
	size     Size
	deadline time.Time
}

// NewDebouncer creates a debouncer with the default window.
func NewDebouncer() *Debouncer {
	return &Debouncer{Window: DebounceWindow}
}

// Push records a resize event at now.
func (d *Debouncer) Push(s Size, now time.Time) {
	d.size = s
	d.deadline = now.Add(d.Window)
	d.pending = true
}

// Poll returns the size to lay out at, once the window has passed.
func (d *Debouncer) Poll(now time.Time) (Size, bool) {
	if !d.pending || now.Before(d.deadline) {
		return Size{}, false
	}
	d.pending = false
	return d.size, true
}

// Pending reports whether a relayout is scheduled.
func (d *Debouncer) Pending() bool { return d.pending }

// Cancel drops any scheduled relayout.
func (d *Debouncer) Cancel() { d.pending = false }
