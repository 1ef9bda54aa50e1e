package viz

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/san-kum/automaton/internal/config"
	"github.com/san-kum/automaton/internal/grid"
	"github.com/san-kum/automaton/internal/palette"
	"github.com/san-kum/automaton/internal/session"
	"github.com/san-kum/automaton/internal/snapshot"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Width, cfg.Height = 12, 9
	cfg.Seed = 3
	cfg.Snapshots.Every = 0
	cfg.Snapshots.Path = filepath.Join(t.TempDir(), "grid.txt")

	s, err := session.New(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return NewModel(s, "")
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return nm, cmd
}

func TestCellPainterOddRows(t *testing.T) {
	b := grid.NewBuffer(3, 3)
	p := newCellPainter(palette.TwoTone(2))

	out := p.Render(b, 10, 10)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 text rows for 3 grid rows, got %d", len(lines))
	}
	for i, line := range lines {
		if n := strings.Count(line, halfBlock); n != 3 {
			t.Errorf("row %d: expected 3 cells, got %d", i, n)
		}
	}
	// (0,0) for the full row and (0,-1) for the unpaired last row.
	if len(p.styles) != 2 {
		t.Errorf("expected 2 cached styles, got %d", len(p.styles))
	}
}

func TestCellPainterClips(t *testing.T) {
	b := grid.NewBuffer(8, 8)
	p := newCellPainter(palette.TwoTone(2))

	out := p.Render(b, 2, 1)
	if strings.Contains(out, "\n") {
		t.Fatalf("expected a single row, got %q", out)
	}
	if n := strings.Count(out, halfBlock); n != 2 {
		t.Errorf("expected 2 cells, got %d", n)
	}
}

func TestPauseAndSpeedKeys(t *testing.T) {
	m := newTestModel(t)
	base := m.session.Delay()

	m, _ = update(t, m, runes("p"))
	if !m.session.Paused() {
		t.Error("p should pause")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if m.session.Paused() {
		t.Error("space should resume")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if got := m.session.Delay(); got != base-10*time.Millisecond {
		t.Errorf("up: expected %v, got %v", base-10*time.Millisecond, got)
	}
	m, _ = update(t, m, runes("j"))
	m, _ = update(t, m, runes("j"))
	if got := m.session.Delay(); got != base+10*time.Millisecond {
		t.Errorf("j twice: expected %v, got %v", base+10*time.Millisecond, got)
	}
}

func TestTickAdvancesUnlessPaused(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, TickMsg(time.Now()))
	if m.session.Generation() != 1 {
		t.Fatalf("expected generation 1, got %d", m.session.Generation())
	}
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}

	m, _ = update(t, m, runes("p"))
	m, _ = update(t, m, TickMsg(time.Now()))
	if m.session.Generation() != 1 {
		t.Errorf("paused tick advanced to %d", m.session.Generation())
	}

	m, _ = update(t, m, runes("n"))
	if m.session.Generation() != 2 {
		t.Errorf("single step: expected generation 2, got %d", m.session.Generation())
	}
}

func TestStepKeyIgnoredWhileRunning(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, runes("n"))
	if m.session.Generation() != 0 {
		t.Errorf("expected no step while running, got generation %d", m.session.Generation())
	}
}

func TestQuitKey(t *testing.T) {
	for _, key := range []tea.KeyMsg{runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m := newTestModel(t)
		m, cmd := update(t, m, key)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", key)
		}
		if m.session.Running() {
			t.Errorf("%s: session still running", key)
		}
	}
}

func TestThemeAndHelpKeys(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, runes("t"))
	if m.theme.Name != ThemeRetroGreen.Name {
		t.Errorf("expected retro theme, got %s", m.theme.Name)
	}
	m, _ = update(t, m, runes("t"))
	m, _ = update(t, m, runes("t"))
	if m.theme.Name != ThemeMinimal.Name {
		t.Errorf("expected wrap to minimal, got %s", m.theme.Name)
	}

	m, _ = update(t, m, runes("?"))
	if !strings.Contains(m.View(), "snapshot") {
		t.Error("help should list the snapshot key")
	}
}

func TestSnapshotKey(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, runes("s"))

	path := m.session.Config().Snapshots.Path
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}
	if !strings.Contains(m.status, path) {
		t.Errorf("status should mention %s, got %q", path, m.status)
	}
}

func TestSnapshotKeyFailureQuits(t *testing.T) {
	m := newTestModel(t)
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	m.session.Config().Snapshots.Path = filepath.Join(blocker, "grid.txt")

	m, cmd := update(t, m, runes("s"))
	if m.Err() == nil {
		t.Fatal("expected the snapshot error to be kept")
	}
	if !errors.Is(m.Err(), snapshot.ErrOpen) {
		t.Errorf("expected snapshot.ErrOpen, got %v", m.Err())
	}
	if cmd == nil {
		t.Fatal("expected quit command after a failed snapshot")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg after a failed snapshot")
	}
	if !strings.Contains(m.View(), "FAILED") {
		t.Error("view should show FAILED")
	}
}

func TestSnapshotKeyWithoutPath(t *testing.T) {
	m := newTestModel(t)
	m.session.Config().Snapshots.Path = ""

	m, cmd := update(t, m, runes("s"))
	if cmd != nil || m.Err() != nil {
		t.Errorf("missing path should only set a status, got quit %v err %v", cmd != nil, m.Err())
	}
	if m.status == "" {
		t.Error("expected a status message")
	}
}

func TestNewModelTheme(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Width, cfg.Height = 4, 4
	cfg.Snapshots.Every = 0
	s, err := session.New(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if m := NewModel(s, "sunset"); m.theme.Name != "sunset" {
		t.Errorf("expected sunset, got %s", m.theme.Name)
	}
	if m := NewModel(s, "unknown"); m.theme.Name != ThemeMinimal.Name {
		t.Errorf("unknown theme should fall back to minimal, got %s", m.theme.Name)
	}
}

func TestViewShowsState(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 20})
	m, _ = update(t, m, TickMsg(time.Now()))
	m, _ = update(t, m, TickMsg(time.Now()))

	view := m.View()
	for _, want := range []string{"CYCLIC", "RUNNING", "Generation", "12x9"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m, _ = update(t, m, runes("p"))
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("view should show PAUSED")
	}
}

func TestNextTheme(t *testing.T) {
	if NextTheme("unknown").Name != Themes[0].Name {
		t.Error("unknown theme should fall back to the first")
	}
	if GetTheme("sunset").Name != "sunset" {
		t.Error("expected sunset")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names length mismatch")
	}
}
