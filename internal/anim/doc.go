// Package anim drives incremental, cancellable rendering of a segment
// sequence in fixed-size batches.
//
//   - [Surface]: minimal drawing target (clear + stroke)
//   - [Handle]: cancellation token for one animation
//   - [Scheduler]: advances the draw cursor one batch per tick
//
// # Scheduling model
//
// The package does no timing of its own. The caller owns the frame pacing
// (the TUI re-arms a frame tick) and calls [Scheduler.Step] once per tick;
// Step reports whether another tick is worth scheduling. Everything runs
// on the caller's single cooperative thread, so the Handle flag needs no
// locking: it is written at well-defined points (start, cancel) and read
// once per tick.
package anim
