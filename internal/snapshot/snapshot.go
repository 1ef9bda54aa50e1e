// Package snapshot persists the current generation as a plain-text dump.
//
// The format is "<width> <height>" on the first line followed by one line
// per row, each cell written as a decimal integer and a trailing space.
package snapshot

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/san-kum/automaton/internal/grid"
)

var (
	// ErrOpen indicates the target path could not be opened for writing.
	ErrOpen = errors.New("snapshot: cannot open file for writing")

	// ErrFormat indicates a dump that does not follow the text layout.
	ErrFormat = errors.New("snapshot: malformed dump")
)

// Write dumps the current buffer of g to path, truncating existing content.
// Missing parent directories are created.
func Write(g *grid.Grid, path string) error {
	var err error
	g.Read(func(b grid.Buffer) {
		err = WriteBuffer(b, path)
	})
	return err
}

// WriteBuffer dumps b to path, truncating existing content.
func WriteBuffer(b grid.Buffer, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrOpen, path, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOpen, err)
	}
	defer file.Close()

	if err := Encode(file, b); err != nil {
		return err
	}
	return file.Close()
}

// Encode writes b in dump format.
func Encode(w io.Writer, b grid.Buffer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", b.Width(), b.Height())

	num := make([]byte, 0, 20)
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			num = strconv.AppendInt(num[:0], int64(b.At(x, y)), 10)
			num = append(num, ' ')
			bw.Write(num)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Decode reads a dump back into a buffer.
func Decode(r io.Reader) (grid.Buffer, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 64*1024*1024)
	sc.Split(bufio.ScanWords)

	next := func(what string) (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, err
			}
			return 0, fmt.Errorf("%w: missing %s", ErrFormat, what)
		}
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("%w: %s: %v", ErrFormat, what, err)
		}
		return v, nil
	}

	w, err := next("width")
	if err != nil {
		return grid.Buffer{}, err
	}
	h, err := next("height")
	if err != nil {
		return grid.Buffer{}, err
	}
	if w <= 0 || h <= 0 {
		return grid.Buffer{}, fmt.Errorf("%w: dimensions %dx%d", ErrFormat, w, h)
	}

	b := grid.NewBuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v, err := next(fmt.Sprintf("cell (%d,%d)", x, y))
			if err != nil {
				return grid.Buffer{}, err
			}
			if v < 0 {
				return grid.Buffer{}, fmt.Errorf("%w: negative state %d at (%d,%d)", ErrFormat, v, x, y)
			}
			b.Set(x, y, grid.Cell(v))
		}
	}
	if sc.Scan() {
		return grid.Buffer{}, fmt.Errorf("%w: trailing data %q", ErrFormat, sc.Text())
	}
	return b, nil
}

// ReadFile decodes the dump stored at path.
func ReadFile(path string) (grid.Buffer, error) {
	file, err := os.Open(path)
	if err != nil {
		return grid.Buffer{}, err
	}
	defer file.Close()
	return Decode(file)
}
