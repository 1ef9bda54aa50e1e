package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/automaton/internal/palette"
	"github.com/san-kum/automaton/internal/rules"
)

const (
	DefaultWidth     = 400
	DefaultHeight    = 400
	DefaultStates    = 8
	DefaultCellSize  = 2
	DefaultDelayMs   = 100
	DefaultSaveEvery = 20
	DefaultOutput    = "./data/grid.txt"

	// MinDelayMs is the floor the speed-up key cannot go below.
	MinDelayMs = 10
	// DelayStepMs is the change applied by one speed key press.
	DelayStepMs = 10
)

// ErrInvalid indicates a configuration that cannot drive a run.
var ErrInvalid = errors.New("config: invalid configuration")

type Config struct {
	Width     int            `yaml:"width"`
	Height    int            `yaml:"height"`
	States    int            `yaml:"states"`
	Rule      string         `yaml:"rule"`
	CellSize  int            `yaml:"cell_size"`
	DelayMs   int            `yaml:"delay_ms"`
	Seed      int64          `yaml:"seed"`
	Workers   int            `yaml:"workers"`
	Palette   PaletteConfig  `yaml:"palette"`
	Snapshots SnapshotConfig `yaml:"snapshots"`
}

// PaletteConfig selects the palette strategy. Preset names a built-in
// gradient pair; Start and End override its endpoints when set.
type PaletteConfig struct {
	Strategy string `yaml:"strategy"`
	Preset   string `yaml:"preset"`
	Start    string `yaml:"start"`
	End      string `yaml:"end"`
}

type SnapshotConfig struct {
	Every      int    `yaml:"every"`
	Path       string `yaml:"path"`
	Background bool   `yaml:"background"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		States:   DefaultStates,
		Rule:     rules.Default,
		CellSize: DefaultCellSize,
		DelayMs:  DefaultDelayMs,
		Workers:  1,
		Palette: PaletteConfig{
			Strategy: palette.StrategyGradient,
			Preset:   palette.DefaultPair,
		},
		Snapshots: SnapshotConfig{
			Every: DefaultSaveEvery,
			Path:  DefaultOutput,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects configurations that would fail at allocation or render time.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: grid must be positive, got %dx%d", ErrInvalid, c.Width, c.Height)
	}
	if c.States < 2 {
		return fmt.Errorf("%w: states must be at least 2, got %d", ErrInvalid, c.States)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell_size must be positive, got %d", ErrInvalid, c.CellSize)
	}
	if c.DelayMs < 0 {
		return fmt.Errorf("%w: delay_ms must not be negative, got %d", ErrInvalid, c.DelayMs)
	}
	if c.Snapshots.Every < 0 {
		return fmt.Errorf("%w: snapshots.every must not be negative, got %d", ErrInvalid, c.Snapshots.Every)
	}
	if c.Snapshots.Every > 0 && c.Snapshots.Path == "" {
		return fmt.Errorf("%w: snapshots.path is required when saving", ErrInvalid)
	}
	if _, err := rules.Lookup(c.Rule); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := c.BuildPalette(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Warnings lists legal but suspicious combinations.
func (c *Config) Warnings() []string {
	var out []string
	if r, err := rules.Lookup(c.Rule); err == nil && rules.IsBinary(r) && c.States != 2 {
		out = append(out, fmt.Sprintf("rule %s assumes 2 states; neighbor sums are weighted with %d states", c.Rule, c.States))
	}
	if c.Palette.Strategy == palette.StrategyTwoTone && c.States > 2 {
		out = append(out, fmt.Sprintf("twotone palette colors states above 1 black (%d states)", c.States))
	}
	return out
}

// Delay returns the configured inter-frame delay.
func (c *Config) Delay() time.Duration {
	return time.Duration(c.DelayMs) * time.Millisecond
}

// GradientEnds resolves the gradient endpoints from the preset and overrides.
func (c *Config) GradientEnds() (palette.Color, palette.Color, error) {
	name := c.Palette.Preset
	if name == "" {
		name = palette.DefaultPair
	}
	pair, ok := palette.Pairs[name]
	if !ok {
		return palette.Color{}, palette.Color{}, fmt.Errorf("unknown gradient preset: %s (available: %v)", name, palette.PairNames())
	}

	start, end := pair.Start, pair.End
	if c.Palette.Start != "" {
		col, err := palette.ParseHex(c.Palette.Start)
		if err != nil {
			return start, end, err
		}
		start = col
	}
	if c.Palette.End != "" {
		col, err := palette.ParseHex(c.Palette.End)
		if err != nil {
			return start, end, err
		}
		end = col
	}
	return start, end, nil
}

// BuildPalette constructs the palette described by the configuration.
func (c *Config) BuildPalette() (palette.Palette, error) {
	start, end, err := c.GradientEnds()
	if err != nil {
		return nil, err
	}
	return palette.Build(c.Palette.Strategy, c.States, start, end, c.Seed)
}
