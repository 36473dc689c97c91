// Package viz renders kernel output in the terminal.
//
//   - [LegendreChart], [TrajectoryChart], [ResultChart]: asciigraph line charts
//   - [Canvas]: Braille-based pixel canvas for dense curves
//   - [Explorer]: Bubble Tea program for stepping through Legendre degrees
//   - Theme selection with built-in color schemes
//
// # Key Bindings (Explorer)
//
//	+/-   - Raise/lower the maximum degree
//	←/→   - Move the cursor across the samples
//	B     - Toggle Braille canvas / asciigraph
//	T     - Cycle color themes
//	Q     - Quit
package viz
