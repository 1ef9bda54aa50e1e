// Package session holds the host-loop state shared by every front end:
// the grid, the active rule, pacing, pause state and the snapshot cadence.
package session

import (
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"

	"github.com/san-kum/automaton/internal/config"
	"github.com/san-kum/automaton/internal/engine"
	"github.com/san-kum/automaton/internal/grid"
	"github.com/san-kum/automaton/internal/palette"
	"github.com/san-kum/automaton/internal/rules"
	"github.com/san-kum/automaton/internal/snapshot"
)

// historyCapacity bounds the activity ring kept for graphs.
const historyCapacity = 600

// Action is a discrete input the host loop reacts to.
type Action int

const (
	TogglePause Action = iota
	Quit
	SpeedUp
	SlowDown
)

func (a Action) String() string {
	switch a {
	case TogglePause:
		return "pause"
	case Quit:
		return "quit"
	case SpeedUp:
		return "faster"
	case SlowDown:
		return "slower"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

type Session struct {
	cfg     *config.Config
	logger  *log.Logger
	grid    *grid.Grid
	palette palette.Palette
	rule    rules.Rule
	stepper *engine.Stepper
	saver   *snapshot.Saver

	delay      time.Duration
	paused     bool
	running    bool
	generation int
	activity   []float64
}

// New validates cfg, allocates the grid and palette and seeds the first generation.
func New(cfg *config.Config, logger *log.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for _, w := range cfg.Warnings() {
		logger.Warn(w)
	}

	rule, err := rules.Lookup(cfg.Rule)
	if err != nil {
		return nil, err
	}
	pal, err := cfg.BuildPalette()
	if err != nil {
		return nil, err
	}
	g, err := grid.New(cfg.Width, cfg.Height, cfg.States)
	if err != nil {
		return nil, fmt.Errorf("allocate grid: %w", err)
	}
	g.Randomize(cfg.Seed)

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	s := &Session{
		cfg:     cfg,
		logger:  logger,
		grid:    g,
		palette: pal,
		rule:    rule,
		stepper: engine.New(workers),
		saver: &snapshot.Saver{
			Every:      cfg.Snapshots.Every,
			Path:       cfg.Snapshots.Path,
			Background: cfg.Snapshots.Background,
		},
		delay:    cfg.Delay(),
		running:  true,
		activity: make([]float64, 0, historyCapacity),
	}

	logger.Info("session ready",
		"grid", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"states", cfg.States,
		"rule", rule.Name(),
		"palette", cfg.Palette.Strategy,
		"workers", workers)
	return s, nil
}

func (s *Session) Grid() *grid.Grid           { return s.grid }
func (s *Session) Palette() palette.Palette   { return s.palette }
func (s *Session) Rule() rules.Rule           { return s.rule }
func (s *Session) Config() *config.Config     { return s.cfg }
func (s *Session) Delay() time.Duration       { return s.delay }
func (s *Session) Paused() bool               { return s.paused }
func (s *Session) Running() bool              { return s.running }
func (s *Session) Generation() int            { return s.generation }
func (s *Session) Snapshots() *snapshot.Saver { return s.saver }

// Activity returns the changed-cell counts of recent generations, oldest first.
func (s *Session) Activity() []float64 { return s.activity }

// Tick runs one frame: a step plus a due snapshot, unless paused.
// Snapshot failures are returned to the host, which treats them as fatal.
func (s *Session) Tick() error {
	if s.paused || !s.running {
		return nil
	}
	return s.Advance()
}

// Advance steps one generation regardless of the pause state.
func (s *Session) Advance() error {
	changed := s.stepper.Step(s.grid, s.rule)
	s.generation++

	s.activity = append(s.activity, float64(changed))
	if len(s.activity) > historyCapacity {
		s.activity = s.activity[1:]
	}

	saved, err := s.saver.Observe(s.generation, s.grid)
	if err != nil {
		return err
	}
	if saved {
		s.logger.Debug("snapshot", "generation", s.generation, "path", s.saver.Path)
	}
	return nil
}

// Handle applies an input action.
func (s *Session) Handle(a Action) {
	switch a {
	case TogglePause:
		s.paused = !s.paused
		s.logger.Debug("pause toggled", "paused", s.paused, "generation", s.generation)
	case Quit:
		s.running = false
	case SpeedUp:
		step := config.DelayStepMs * time.Millisecond
		if s.delay > config.MinDelayMs*time.Millisecond {
			s.delay -= step
		}
		s.logger.Debug("delay", "delay", s.delay)
	case SlowDown:
		s.delay += config.DelayStepMs * time.Millisecond
		s.logger.Debug("delay", "delay", s.delay)
	}
}

// Close waits for pending snapshots and releases the grid.
func (s *Session) Close() error {
	err := s.saver.Wait()
	s.logger.Info("session closed", "generations", s.generation, "snapshots", s.saver.Writes())
	s.grid.Destroy()
	return err
}
