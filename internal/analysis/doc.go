// Package analysis characterizes the activity signal of a running automaton.
//
// Activity is the number of cells that changed state in each generation.
// Oscillators and cyclic spirals settle into a periodic activity signal;
// [DominantPeriod] recovers that period from the power spectrum:
//
//	period, ok := analysis.DominantPeriod(s.Activity())
//	if ok {
//	    fmt.Printf("repeats every %.1f generations\n", period)
//	}
package analysis
