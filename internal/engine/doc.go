// Package engine advances a grid by one generation under a rule.
//
// Every cell reads only the frozen current buffer and writes only its own
// slot in the next buffer, so a pass can be split across goroutines:
//
//	st := engine.New(runtime.NumCPU())
//	changed := st.Step(g, rules.Cyclic{})
//
// All workers join before the grid flips its buffers.
package engine
