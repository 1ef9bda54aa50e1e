package session

import (
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/san-kum/automaton/internal/config"
	"github.com/san-kum/automaton/internal/snapshot"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Width, cfg.Height = 24, 16
	cfg.Seed = 9
	cfg.Snapshots.Every = 5
	cfg.Snapshots.Path = filepath.Join(t.TempDir(), "grid.txt")
	return cfg
}

func newSession(t *testing.T, cfg *config.Config) *Session {
	t.Helper()
	s, err := New(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s
}

func TestTickAdvancesAndSaves(t *testing.T) {
	cfg := testConfig(t)
	s := newSession(t, cfg)

	for i := 0; i < 12; i++ {
		if err := s.Tick(); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
	}

	if s.Generation() != 12 {
		t.Errorf("expected generation 12, got %d", s.Generation())
	}
	if len(s.Activity()) != 12 {
		t.Errorf("expected 12 activity samples, got %d", len(s.Activity()))
	}
	if s.Snapshots().Writes() != 2 {
		t.Errorf("expected 2 snapshots, got %d", s.Snapshots().Writes())
	}

	b, err := snapshot.ReadFile(cfg.Snapshots.Path)
	if err != nil {
		t.Fatal(err)
	}
	if b.Width() != 24 || b.Height() != 16 {
		t.Errorf("unexpected snapshot shape %dx%d", b.Width(), b.Height())
	}
	if err := s.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
}

func TestPauseStopsStepping(t *testing.T) {
	s := newSession(t, testConfig(t))
	s.Handle(TogglePause)
	before := s.Grid().Copy()

	for i := 0; i < 3; i++ {
		s.Tick()
	}
	if s.Generation() != 0 {
		t.Errorf("paused session advanced to %d", s.Generation())
	}
	if !s.Grid().CurrentBuffer().Equal(before) {
		t.Error("paused session changed the grid")
	}

	s.Handle(TogglePause)
	s.Tick()
	if s.Generation() != 1 {
		t.Errorf("expected generation 1 after resume, got %d", s.Generation())
	}
}

func TestSpeedKeys(t *testing.T) {
	cfg := testConfig(t)
	cfg.DelayMs = 30
	s := newSession(t, cfg)

	s.Handle(SpeedUp)
	if s.Delay() != 20*time.Millisecond {
		t.Errorf("expected 20ms, got %s", s.Delay())
	}
	s.Handle(SpeedUp)
	s.Handle(SpeedUp)
	s.Handle(SpeedUp)
	if s.Delay() != 10*time.Millisecond {
		t.Errorf("delay must not drop below 10ms, got %s", s.Delay())
	}
	s.Handle(SlowDown)
	if s.Delay() != 20*time.Millisecond {
		t.Errorf("expected 20ms, got %s", s.Delay())
	}
}

func TestQuit(t *testing.T) {
	s := newSession(t, testConfig(t))
	s.Handle(Quit)
	if s.Running() {
		t.Error("session should stop running after quit")
	}
	s.Tick()
	if s.Generation() != 0 {
		t.Error("stopped session must not step")
	}
}

func TestSnapshotFailureSurfaces(t *testing.T) {
	cfg := testConfig(t)
	cfg.Snapshots.Every = 1
	cfg.Snapshots.Path = t.TempDir()
	s := newSession(t, cfg)

	if err := s.Tick(); !errors.Is(err, snapshot.ErrOpen) {
		t.Errorf("expected ErrOpen, got %v", err)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.States = 1
	if _, err := New(cfg, log.New(io.Discard)); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestActivityIsBounded(t *testing.T) {
	cfg := testConfig(t)
	cfg.Width, cfg.Height = 4, 4
	cfg.Snapshots.Every = 0
	s := newSession(t, cfg)
	for i := 0; i < historyCapacity+25; i++ {
		s.Advance()
	}
	if len(s.Activity()) != historyCapacity {
		t.Errorf("expected %d samples, got %d", historyCapacity, len(s.Activity()))
	}
}
