package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/automaton/internal/grid"
	"github.com/san-kum/automaton/internal/palette"
)

const halfBlock = "▀"

// cellPainter renders grid buffers as half-block text, caching one style per
// palette color pair.
type cellPainter struct {
	pal    palette.Palette
	styles map[[2]int]lipgloss.Style
}

func newCellPainter(pal palette.Palette) *cellPainter {
	return &cellPainter{pal: pal, styles: make(map[[2]int]lipgloss.Style)}
}

func (p *cellPainter) style(top, bottom int) lipgloss.Style {
	key := [2]int{top, bottom}
	if st, ok := p.styles[key]; ok {
		return st
	}
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(p.pal.Lookup(top).Hex()))
	if bottom >= 0 {
		st = st.Background(lipgloss.Color(p.pal.Lookup(bottom).Hex()))
	}
	p.styles[key] = st
	return st
}

// Render draws at most cols x rows terminal cells of b. A bottom index of -1
// marks an odd final grid row without a partner.
func (p *cellPainter) Render(b grid.Buffer, cols, rows int) string {
	w := min(b.Width(), cols)
	h := min((b.Height()+1)/2, rows)

	var sb strings.Builder
	for row := 0; row < h; row++ {
		y := row * 2
		for x := 0; x < w; x++ {
			top := int(b.At(x, y))
			bottom := -1
			if y+1 < b.Height() {
				bottom = int(b.At(x, y+1))
			}
			sb.WriteString(p.style(top, bottom).Render(halfBlock))
		}
		if row < h-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
