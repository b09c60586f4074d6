package anim

import (
	"time"

	"github.com/san-kum/growlab/internal/turtle"
)

// Surface is the drawing target the scheduler strokes batches onto. The
// surface owns its own coordinate mapping and lifecycle; the scheduler
// only issues clear and stroke calls.
type Surface interface {
	Clear()
	Stroke(segments []turtle.Segment)
}

// Options configures the pacing of one animation.
type Options struct {
	// Batch is the number of segments drawn per tick. Values below 1 are
	// treated as 1.
	Batch int

	// Delay is an extra gap added between ticks on top of the frame
	// interval. Zero means frame-paced only.
	Delay time.Duration
}

// TickInterval returns the tick-to-tick gap for a given frame interval.
func (o Options) TickInterval(frame time.Duration) time.Duration {
	return frame + o.Delay
}

// Scheduler draws a segment sequence onto a surface one batch at a time.
// It is not safe for concurrent use; see the package comment for the
// cooperative scheduling model.
type Scheduler struct {
	surface Surface
	segs    []turtle.Segment
	cursor  int
	opts    Options
	handle  *Handle
}

func NewScheduler(surface Surface) *Scheduler {
	return &Scheduler{surface: surface}
}

// Start begins animating segs from the beginning, clearing the surface.
// Any animation still in flight is cancelled first, so at most one handle
// is ever live. The returned handle is what the caller's tick loop checks.
func (s *Scheduler) Start(segs []turtle.Segment, opts Options) *Handle {
	s.handle.Cancel()

	if opts.Batch < 1 {
		opts.Batch = 1
	}
	s.segs = segs
	s.cursor = 0
	s.opts = opts
	s.handle = &Handle{}

	s.surface.Clear()
	return s.handle
}

// Step draws the next batch and reports whether segments remain and a
// further tick should be scheduled. On completion or cancellation the
// handle is released so a subsequent Start is not blocked.
func (s *Scheduler) Step() bool {
	if s.handle == nil || s.handle.Cancelled() {
		s.handle = nil
		return false
	}

	end := s.cursor + s.opts.Batch
	if end > len(s.segs) {
		end = len(s.segs)
	}
	s.surface.Stroke(s.segs[s.cursor:end])
	s.cursor = end

	if s.cursor >= len(s.segs) {
		s.handle = nil
		return false
	}
	return true
}

// Progress returns how many segments have been drawn and the total.
func (s *Scheduler) Progress() (drawn, total int) {
	return s.cursor, len(s.segs)
}

// Handle returns the live handle, or nil when no animation is in flight.
func (s *Scheduler) Handle() *Handle {
	return s.handle
}

// Cancel stops the in-flight animation, if any, and releases its handle.
func (s *Scheduler) Cancel() {
	s.handle.Cancel()
	s.handle = nil
}

// DrawAll cancels any in-flight animation and renders the whole sequence
// in one pass, so the animation can never double-draw over it.
func (s *Scheduler) DrawAll(segs []turtle.Segment) {
	s.Cancel()
	s.segs = segs
	s.cursor = len(segs)
	s.surface.Clear()
	s.surface.Stroke(segs)
}
