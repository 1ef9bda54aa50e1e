// Package viz runs a session in the terminal using the Bubble Tea framework.
//
// Each terminal row shows two grid rows with the upper-half block glyph: the
// foreground carries the upper cell's palette color and the background the
// lower one. Grids larger than the terminal are cropped to the top-left.
//
// # Key Bindings
//
//	P / Space - Pause/Resume
//	Up / K    - Shorter frame delay
//	Down / J  - Longer frame delay
//	N         - Single step while paused
//	S         - Write a snapshot now (a failed write quits)
//	T         - Cycle color themes
//	?         - Toggle help
//	Esc / Q   - Quit
package viz
