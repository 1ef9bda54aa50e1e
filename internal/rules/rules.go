package rules

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/automaton/internal/grid"
)

// ErrUnknownRule indicates a rule name missing from the registry.
var ErrUnknownRule = errors.New("rules: unknown rule")

// Default is the rule used when none is configured.
const Default = "cyclic"

// Rule computes the next state of one cell. Implementations only read from
// the buffer and must return a value in [0, meta.States).
type Rule interface {
	Name() string
	Next(x, y int, read grid.Buffer, meta grid.Meta) grid.Cell
}

// Binary is implemented by rules that assume a two-state space.
type Binary interface {
	Binary() bool
}

var registry = map[string]func() Rule{
	"life":     func() Rule { return Life{} },
	"highlife": func() Rule { return HighLife{} },
	"cyclic":   func() Rule { return Cyclic{} },
}

// Lookup returns the rule registered under name.
func Lookup(name string) (Rule, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownRule, name, Names())
	}
	return fn(), nil
}

// Names lists the registered rules in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsBinary reports whether r only makes sense with two states.
func IsBinary(r Rule) bool {
	b, ok := r.(Binary)
	return ok && b.Binary()
}
