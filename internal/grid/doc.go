// Package grid provides the double-buffered cell store of the automaton.
//
// A [Grid] owns two equally shaped [Buffer] values and an index selecting the
// one that holds the live generation:
//
//   - [Grid.CurrentBuffer]: latest generation, read by rules, renderers and the snapshot writer
//   - [Grid.NextBuffer]: scratch target of the next step
//   - [Grid.Advance]: flips the index in O(1)
//
// Neighborhood helpers ([CountWeightedNeighbors], [HasSuccessorNeighbor]) scan
// the Moore neighborhood with bounded edges: positions outside the grid are
// skipped, never wrapped.
//
// # Thread Safety
//
// At most one step may be in flight per grid; [Grid.Step] serializes them.
// Concurrent readers should use [Grid.Read], which holds the buffer index
// stable for the whole callback.
package grid
