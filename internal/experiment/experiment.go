// Package experiment runs headless sessions side by side for comparison.
package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/automaton/internal/analysis"
	"github.com/san-kum/automaton/internal/config"
	"github.com/san-kum/automaton/internal/session"
)

type Result struct {
	Name        string
	Rule        string
	Generations int
	Elapsed     time.Duration
	Activity    analysis.Summary
	Period      float64
	Periodic    bool
	Final       []int
}

// Run steps a fresh session for the given number of generations. The context
// is checked between generations.
func Run(ctx context.Context, name string, cfg *config.Config, generations int, logger *log.Logger) (*Result, error) {
	s, err := session.New(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	start := time.Now()
	for i := 0; i < generations; i++ {
		if err := ctx.Err(); err != nil {
			s.Close()
			return nil, err
		}
		if err := s.Tick(); err != nil {
			s.Close()
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	elapsed := time.Since(start)

	activity := s.Activity()
	period, ok := analysis.DominantPeriod(activity)
	r := &Result{
		Name:        name,
		Rule:        s.Rule().Name(),
		Generations: s.Generation(),
		Elapsed:     elapsed,
		Activity:    analysis.Summarize(activity),
		Period:      period,
		Periodic:    ok,
		Final:       s.Grid().Copy().Histogram(cfg.States),
	}
	if err := s.Close(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return r, nil
}

// CompareRules runs base once per rule name concurrently. Snapshots are
// disabled so the runs do not race on one output path. Results keep the order
// of names; the first failure cancels the rest.
func CompareRules(ctx context.Context, base *config.Config, names []string, generations int, logger *log.Logger) ([]Result, error) {
	results := make([]Result, len(names))
	g, ctx := errgroup.WithContext(ctx)

	for i, name := range names {
		cfg := *base
		cfg.Rule = name
		cfg.Snapshots.Every = 0

		g.Go(func() error {
			r, err := Run(ctx, name, &cfg, generations, logger.With("rule", name))
			if err != nil {
				return err
			}
			results[i] = *r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
