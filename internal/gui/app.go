// Package gui runs a session in a raylib window.
//
// # Key Bindings
//
//	P / Space - Pause/Resume
//	Up        - Shorter frame delay
//	Down      - Longer frame delay
//	S         - Write a snapshot now
//	Esc / Q   - Quit
package gui

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/san-kum/automaton/internal/render"
	"github.com/san-kum/automaton/internal/session"
	"github.com/san-kum/automaton/internal/snapshot"
)

var keymap = []struct {
	key    Key
	action session.Action
}{
	{KeyPause, session.TogglePause},
	{KeySpace, session.TogglePause},
	{KeyQuit, session.Quit},
	{KeyQ, session.Quit},
	{KeyFaster, session.SpeedUp},
	{KeySlower, session.SlowDown},
}

// Run opens a window sized to the grid and drives s until the user quits or
// a snapshot cannot be written.
func Run(s *session.Session, logger *log.Logger) error {
	cfg := s.Config()
	win := Open("Automaton", cfg.Width*cfg.CellSize, cfg.Height*cfg.CellSize)
	defer win.Close()

	for s.Running() {
		if win.CloseRequested() {
			s.Handle(session.Quit)
			break
		}
		for _, k := range keymap {
			if win.KeyPressed(k.key) {
				s.Handle(k.action)
			}
		}
		if win.KeyPressed(KeySnapshot) && cfg.Snapshots.Path != "" {
			if err := snapshot.Write(s.Grid(), cfg.Snapshots.Path); err != nil {
				return err
			}
			logger.Info("snapshot written", "generation", s.Generation(), "path", cfg.Snapshots.Path)
		}

		if err := s.Tick(); err != nil {
			return err
		}
		render.Frame(win, s.Grid(), s.Palette(), cfg.CellSize)

		time.Sleep(s.Delay())
	}
	return nil
}
