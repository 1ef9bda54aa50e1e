package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/automaton/internal/config"
	"github.com/san-kum/automaton/internal/gui"
	"github.com/san-kum/automaton/internal/palette"
	"github.com/san-kum/automaton/internal/rules"
	"github.com/san-kum/automaton/internal/session"
	"github.com/san-kum/automaton/internal/viz"
)

var (
	configFile string
	preset     string
	logLevel   string

	width     int
	height    int
	states    int
	rule      string
	strategy  string
	colors    string
	cellSize  int
	delayMs   int
	seed      int64
	workers   int
	saveEvery int
	output    string
	bgSave    bool

	generations int
	theme       string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.Kitchen,
	Prefix:          "automaton",
})

func main() {
	rootCmd := &cobra.Command{
		Use:           "automaton",
		Short:         "cellular automaton visualizer",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logger.SetLevel(level)
			return nil
		},
		RunE: runWindow,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run the automaton in a window",
		RunE:  runWindow,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "run the automaton in the terminal",
		RunE:  runTerminal,
	}
	tuiCmd.Flags().StringVar(&theme, "theme", viz.ThemeMinimal.Name, "terminal theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	headlessCmd := &cobra.Command{
		Use:   "headless",
		Short: "step generations without rendering",
		RunE:  runHeadless,
	}
	headlessCmd.Flags().IntVar(&generations, "generations", 200, "generations to step")

	compareCmd := &cobra.Command{
		Use:   "compare [rule] [rule] ...",
		Short: "compare rules on the same configuration",
		Args:  cobra.MinimumNArgs(1),
		RunE:  compareRules,
	}
	compareCmd.Flags().IntVar(&generations, "generations", 200, "generations to step")

	for _, c := range []*cobra.Command{rootCmd, runCmd, tuiCmd, headlessCmd, compareCmd} {
		addSimFlags(c)
	}

	inspectCmd := &cobra.Command{
		Use:   "inspect [snapshot]",
		Short: "summarize a grid snapshot",
		Args:  cobra.ExactArgs(1),
		RunE:  inspectSnapshot,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-10s %s, %d states, %dx%d\n", name, p.Rule, p.States, p.Width, p.Height)
			}
			fmt.Printf("\nrules: %s\n", strings.Join(rules.Names(), ", "))
			fmt.Printf("palettes: %s\n", strings.Join(palette.Strategies(), ", "))
			fmt.Printf("gradients: %s\n", strings.Join(palette.PairNames(), ", "))
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			if preset != "" {
				if cfg = config.GetPreset(preset); cfg == nil {
					return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
				}
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(runCmd, tuiCmd, headlessCmd, compareCmd, inspectCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("automaton failed", "err", err)
	}
}

func addSimFlags(c *cobra.Command) {
	f := c.Flags()
	f.IntVar(&width, "width", config.DefaultWidth, "grid width in cells")
	f.IntVar(&height, "height", config.DefaultHeight, "grid height in cells")
	f.IntVar(&states, "states", config.DefaultStates, "number of cell states")
	f.StringVar(&rule, "rule", rules.Default, "transition rule ("+strings.Join(rules.Names(), ", ")+")")
	f.StringVar(&strategy, "palette", palette.StrategyGradient, "palette strategy ("+strings.Join(palette.Strategies(), ", ")+")")
	f.StringVar(&colors, "colors", "", "gradient preset name or two hex colors, e.g. #ff0000,#0000ff")
	f.IntVar(&cellSize, "cell-size", config.DefaultCellSize, "pixels per cell")
	f.IntVar(&delayMs, "delay", config.DefaultDelayMs, "initial frame delay in milliseconds")
	f.Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	f.IntVar(&workers, "workers", 1, "stepper goroutines (0 uses every CPU)")
	f.IntVar(&saveEvery, "save-every", config.DefaultSaveEvery, "generations between snapshots (0 disables)")
	f.StringVar(&output, "output", config.DefaultOutput, "snapshot path")
	f.BoolVar(&bgSave, "background-save", false, "write snapshots off the step loop")
}

// loadConfig layers defaults, preset, config file and explicitly set flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	// The default seed is time based, so it always applies unless the
	// config or preset pinned one.
	if cfg.Seed == 0 {
		cfg.Seed = seed
	}

	f := cmd.Flags()
	if f.Changed("width") {
		cfg.Width = width
	}
	if f.Changed("height") {
		cfg.Height = height
	}
	if f.Changed("states") {
		cfg.States = states
	}
	if f.Changed("rule") {
		cfg.Rule = rule
	}
	if f.Changed("palette") {
		cfg.Palette.Strategy = strategy
	}
	if f.Changed("colors") {
		if start, end, ok := strings.Cut(colors, ","); ok {
			cfg.Palette.Preset = ""
			cfg.Palette.Start, cfg.Palette.End = start, end
		} else {
			cfg.Palette.Preset = colors
		}
	}
	if f.Changed("cell-size") {
		cfg.CellSize = cellSize
	}
	if f.Changed("delay") {
		cfg.DelayMs = delayMs
	}
	if f.Changed("seed") {
		cfg.Seed = seed
	}
	if f.Changed("workers") {
		cfg.Workers = workers
	}
	if f.Changed("save-every") {
		cfg.Snapshots.Every = saveEvery
	}
	if f.Changed("output") {
		cfg.Snapshots.Path = output
	}
	if f.Changed("background-save") {
		cfg.Snapshots.Background = bgSave
	}
	return cfg, nil
}

func newSession(cmd *cobra.Command) (*session.Session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return session.New(cfg, logger)
}

func runWindow(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	runErr := gui.Run(s, logger)
	if err := s.Close(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

func runTerminal(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	runErr := viz.Run(s, theme)
	if err := s.Close(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}
