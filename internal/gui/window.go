package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Background is the clear color behind the grid.
var Background = rl.NewColor(10, 10, 10, 255)

// Key identifies a keyboard key.
type Key = int32

const (
	KeyPause    Key = rl.KeyP
	KeySpace    Key = rl.KeySpace
	KeyQuit     Key = rl.KeyEscape
	KeyQ        Key = rl.KeyQ
	KeyFaster   Key = rl.KeyUp
	KeySlower   Key = rl.KeyDown
	KeySnapshot Key = rl.KeyS
)

// Window owns the raylib window and the current draw color. Only one may be
// open per process.
type Window struct {
	color   rl.Color
	drawing bool
}

// Open creates the window. Callers must defer Close.
func Open(title string, width, height int) *Window {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(width), int32(height), title)
	rl.SetExitKey(0)
	return &Window{color: rl.White}
}

// Close ends a pending frame and destroys the window.
func (w *Window) Close() {
	if w.drawing {
		rl.EndDrawing()
		w.drawing = false
	}
	rl.CloseWindow()
}

// ClearToBackground begins a frame and clears it.
func (w *Window) ClearToBackground() {
	if !w.drawing {
		rl.BeginDrawing()
		w.drawing = true
	}
	rl.ClearBackground(Background)
}

func (w *Window) SetDrawColor(r, g, b, a uint8) {
	w.color = rl.NewColor(r, g, b, a)
}

func (w *Window) FillRectangle(x, y, width, height int) {
	rl.DrawRectangle(int32(x), int32(y), int32(width), int32(height), w.color)
}

// Present ends the frame, swaps buffers and polls input.
func (w *Window) Present() {
	if !w.drawing {
		rl.BeginDrawing()
	}
	rl.EndDrawing()
	w.drawing = false
}

// KeyPressed reports whether k went down since the last frame.
func (w *Window) KeyPressed(k Key) bool { return rl.IsKeyPressed(k) }

// CloseRequested reports whether the user asked to close the window.
func (w *Window) CloseRequested() bool { return rl.WindowShouldClose() }
