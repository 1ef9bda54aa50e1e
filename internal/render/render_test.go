package render

import (
	"testing"

	"github.com/san-kum/automaton/internal/grid"
	"github.com/san-kum/automaton/internal/palette"
)

type rect struct {
	x, y, w, h int
	col        palette.Color
}

type recorder struct {
	clears, presents int
	col              palette.Color
	rects            []rect
}

func (r *recorder) ClearToBackground() { r.clears++ }
func (r *recorder) Present()           { r.presents++ }

func (r *recorder) SetDrawColor(red, green, blue, _ uint8) {
	r.col = palette.Color{R: red, G: green, B: blue}
}

func (r *recorder) FillRectangle(x, y, w, h int) {
	r.rects = append(r.rects, rect{x, y, w, h, r.col})
}

func TestFrameDrawsEveryCellScaled(t *testing.T) {
	g, _ := grid.New(3, 2, 2)
	g.Set(2, 1, 1)
	pal := palette.TwoTone(2)

	rec := &recorder{}
	Frame(rec, g, pal, 4)

	if rec.clears != 1 || rec.presents != 1 {
		t.Errorf("expected one clear and one present, got %d/%d", rec.clears, rec.presents)
	}
	if len(rec.rects) != 6 {
		t.Fatalf("expected 6 rectangles, got %d", len(rec.rects))
	}
	last := rec.rects[5]
	if last.x != 8 || last.y != 4 || last.w != 4 || last.h != 4 {
		t.Errorf("unexpected geometry %+v", last)
	}
	if last.col != palette.White {
		t.Errorf("live cell should be white, got %v", last.col)
	}
	if rec.rects[0].col != palette.Black {
		t.Errorf("dead cell should be black, got %v", rec.rects[0].col)
	}
}
