// Package palette maps integer cell states to display colors.
package palette

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"
)

// ErrStrategy indicates an unknown palette strategy name.
var ErrStrategy = errors.New("palette: unknown strategy")

// ErrColor indicates a color string that is not #rrggbb.
var ErrColor = errors.New("palette: malformed color")

const (
	StrategyTwoTone  = "twotone"
	StrategyGradient = "gradient"
	StrategyRandom   = "random"
)

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// RGBA returns the channels with an opaque alpha, in the order renderers expect.
func (c Color) RGBA() (r, g, b, a uint8) { return c.R, c.G, c.B, 255 }

// Hex formats the color as #rrggbb.
func (c Color) Hex() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

// ParseHex parses #rrggbb (the leading # is optional).
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrColor, s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrColor, s)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Palette is indexed directly by cell state.
type Palette []Color

// Lookup returns the color for state, clamping out-of-range states.
func (p Palette) Lookup(state int) Color {
	if len(p) == 0 {
		return Black
	}
	if state < 0 {
		state = 0
	}
	if last := len(p) - 1; state > last {
		state = last
	}
	return p[state]
}

// TwoTone maps state 0 to black and state 1 to white. Higher states are black.
func TwoTone(states int) Palette {
	p := make(Palette, states)
	if states > 1 {
		p[1] = White
	}
	return p
}

// Gradient interpolates linearly from start to end across states entries.
// A single-state palette holds only the start color.
func Gradient(start, end Color, states int) Palette {
	p := make(Palette, states)
	for i := range p {
		t := 0.0
		if states > 1 {
			t = float64(i) / float64(states-1)
		}
		p[i] = Color{
			R: lerp(start.R, end.R, t),
			G: lerp(start.G, end.G, t),
			B: lerp(start.B, end.B, t),
		}
	}
	return p
}

func lerp(a, b uint8, t float64) uint8 {
	return clamp(int(float64(a) + t*(float64(b)-float64(a))))
}

func clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Random draws every channel uniformly from [0, 255].
func Random(states int, seed int64) Palette {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	p := make(Palette, states)
	for i := range p {
		p[i] = Color{R: uint8(rng.IntN(256)), G: uint8(rng.IntN(256)), B: uint8(rng.IntN(256))}
	}
	return p
}

// Build constructs a palette for the named strategy.
func Build(strategy string, states int, start, end Color, seed int64) (Palette, error) {
	switch strategy {
	case StrategyTwoTone:
		return TwoTone(states), nil
	case StrategyGradient, "":
		return Gradient(start, end, states), nil
	case StrategyRandom:
		return Random(states, seed), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrStrategy, strategy)
	}
}

// Strategies lists the supported strategy names.
func Strategies() []string {
	return []string{StrategyGradient, StrategyRandom, StrategyTwoTone}
}

// Pair is a named gradient endpoint pair.
type Pair struct {
	Start, End Color
}

// DefaultPair names the gradient used when none is configured.
const DefaultPair = "beige-olive"

// Pairs holds the built-in gradient endpoints.
var Pairs = map[string]Pair{
	"beige-olive":    {Color{255, 228, 196}, Color{139, 143, 67}},
	"coral-sky":      {Color{255, 182, 193}, Color{135, 206, 250}},
	"green-blue":     {Color{144, 238, 144}, Color{173, 216, 230}},
	"peach-lavender": {Color{255, 218, 185}, Color{230, 230, 250}},
	"cyan-steel":     {Color{224, 255, 255}, Color{176, 224, 230}},
	"mono":           {Black, White},
}

// PairNames lists the built-in gradient names in sorted order.
func PairNames() []string {
	names := make([]string, 0, len(Pairs))
	for name := range Pairs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
