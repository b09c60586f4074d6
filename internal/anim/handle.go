package anim

// Handle identifies one animation and carries its cancellation flag.
// At most one handle per scheduler is live at a time; starting a new
// animation cancels the previous handle before issuing a fresh one.
type Handle struct {
	cancelled bool
}

// Cancel marks the animation as cancelled. The flag is cooperative: a
// batch already being drawn completes, and no further ticks run.
func (h *Handle) Cancel() {
	if h != nil {
		h.cancelled = true
	}
}

// Cancelled reports whether Cancel has been called.
func (h *Handle) Cancelled() bool {
	return h != nil && h.cancelled
}
