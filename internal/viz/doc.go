// Package viz renders L-system plots in the terminal.
//
// Rendering is built on a Braille-cell canvas (2x4 sub-pixels per rune)
// driven through a viewport that maps turtle-local coordinates onto the
// sub-pixel grid:
//
//   - [Canvas]: pixel grid with Bresenham line drawing
//   - [Viewport]: uniform-scale, centered turtle-to-canvas transform
//   - [CanvasSurface]: anim.Surface adapter combining the two
//   - [NewGrow]: Bubble Tea model animating a plot batch by batch
//   - [NewMenu]: preset picker that launches the grow view
//
// # Key Bindings (grow view)
//
//	Space - Pause/Resume growth
//	R     - Restart the animation
//	D     - Finish instantly (direct full draw)
//	T     - Cycle color themes
//	G     - Toggle GIF recording
//	?     - Toggle help overlay
package viz
