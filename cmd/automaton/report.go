package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/automaton/internal/analysis"
	"github.com/san-kum/automaton/internal/experiment"
	"github.com/san-kum/automaton/internal/grid"
	"github.com/san-kum/automaton/internal/snapshot"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0088ff"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

func runHeadless(cmd *cobra.Command, args []string) error {
	if generations <= 0 {
		return fmt.Errorf("generations must be positive, got %d", generations)
	}
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	for i := 0; i < generations; i++ {
		if err := s.Tick(); err != nil {
			s.Close()
			return err
		}
	}
	elapsed := time.Since(start)
	if err := s.Close(); err != nil {
		return err
	}

	cfg := s.Config()
	activity := s.Activity()
	sum := analysis.Summarize(activity)

	fmt.Println(titleStyle.Render(fmt.Sprintf("%s  %dx%d  %d states", s.Rule().Name(), cfg.Width, cfg.Height, cfg.States)))
	fmt.Printf("generations: %d in %v (%.1f gen/s)\n", s.Generation(), elapsed.Round(time.Millisecond),
		float64(s.Generation())/elapsed.Seconds())
	fmt.Printf("snapshots:   %d\n", s.Snapshots().Writes())
	fmt.Printf("activity:    mean %.1f  min %.0f  max %.0f  last %.0f\n", sum.Mean, sum.Min, sum.Max, sum.Last)

	if period, ok := analysis.DominantPeriod(activity); ok {
		fmt.Printf("period:      %.1f generations\n", period)
	} else {
		fmt.Println(mutedStyle.Render("period:      none detected"))
	}

	if len(activity) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(activity,
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("changed cells per generation (last %d)", len(activity))),
		))
	}
	return nil
}

func compareRules(cmd *cobra.Command, args []string) error {
	if generations <= 0 {
		return fmt.Errorf("generations must be positive, got %d", generations)
	}
	base, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("comparing rules on %dx%d, %d states, %d generations\n\n", base.Width, base.Height, base.States, generations)
	results, err := experiment.CompareRules(context.Background(), base, args, generations, logger)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RULE\tMEAN\tLAST\tPERIOD\tTIME_MS\tFINAL_STATES")
	for _, r := range results {
		period := "-"
		if r.Periodic {
			period = fmt.Sprintf("%.1f", r.Period)
		}
		fmt.Fprintf(w, "%s\t%.1f\t%.0f\t%s\t%.2f\t%s\n",
			r.Rule,
			r.Activity.Mean,
			r.Activity.Last,
			period,
			float64(r.Elapsed.Microseconds())/1000,
			formatCounts(r.Final),
		)
	}
	return w.Flush()
}

func inspectSnapshot(cmd *cobra.Command, args []string) error {
	b, err := snapshot.ReadFile(args[0])
	if err != nil {
		return err
	}

	counts := b.Histogram(stateCount(b))
	total := b.Width() * b.Height()

	fmt.Println(titleStyle.Render(args[0]))
	fmt.Printf("grid: %dx%d (%d cells, %d states seen)\n\n", b.Width(), b.Height(), total, len(counts))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STATE\tCELLS\tSHARE")
	for state, n := range counts {
		fmt.Fprintf(w, "%d\t%d\t%.1f%%\n", state, n, 100*float64(n)/float64(total))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(counts) > 1 {
		data := make([]float64, len(counts))
		for i, n := range counts {
			data[i] = float64(n)
		}
		fmt.Println()
		fmt.Println(asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Caption("cells per state"),
		))
	}
	return nil
}

// formatCounts renders per-state cell counts as "state:count" pairs.
func formatCounts(counts []int) string {
	parts := make([]string, len(counts))
	for state, n := range counts {
		parts[state] = fmt.Sprintf("%d:%d", state, n)
	}
	return strings.Join(parts, " ")
}

// stateCount is one more than the largest state present.
func stateCount(b grid.Buffer) int {
	highest := grid.Cell(0)
	for _, c := range b.Cells() {
		highest = max(highest, c)
	}
	return int(highest) + 1
}
