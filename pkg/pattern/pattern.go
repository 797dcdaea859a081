// Package pattern reads and writes the plaintext ".cells" pattern format.
//
//	!Name: Glider
//	.O.
//	..O
//	OOO
//
// Lines starting with '!' are comments. 'O' or '*' marks a live cell, '.' a
// dead one. Short rows are padded with dead cells.
package pattern

import (
	"bufio"
	"io"
	"slices"
	"strings"

	"github.com/rotisserie/eris"

	"mad-gol/pkg/core"
	"mad-gol/pkg/grid"
)

// ErrSyntax is wrapped by every parse failure.
var ErrSyntax = eris.New("pattern syntax error")

// Read parses a plaintext pattern with its top-left corner at origin. The
// returned grid's viewport is the pattern's full bounding box.
func Read(r io.Reader, origin core.Point) (grid.Sparse, error) {
	out := grid.NewSparse(core.Rect{Origin: origin})
	sc := bufio.NewScanner(r)
	width, row, line := 0, 0, 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.HasPrefix(text, "!") {
			continue
		}
		for x, ch := range text {
			switch ch {
			case 'O', 'o', '*':
				out.Set(origin.Add(core.Pt(x, row)), grid.Active)
			case '.', ' ':
			default:
				return grid.Sparse{}, eris.Wrapf(ErrSyntax, "line %d col %d: unexpected %q", line, x+1, ch)
			}
		}
		width = max(width, len(text))
		row++
	}
	if err := sc.Err(); err != nil {
		return grid.Sparse{}, eris.Wrap(err, "read pattern")
	}
	out.SetViewport(core.Rect{Origin: origin, Size: core.Sz(width, row)})
	return out, nil
}

// Parse is Read over a string.
func Parse(s string, origin core.Point) (grid.Sparse, error) {
	return Read(strings.NewReader(s), origin)
}

// Write renders the viewport of src as plaintext, one row per line.
func Write(w io.Writer, src grid.Sampler, comments ...string) error {
	bw := bufio.NewWriter(w)
	for _, c := range comments {
		bw.WriteString("!" + c + "\n")
	}
	vp := src.Viewport()
	row := make([]byte, vp.Size.W)
	for y := 0; y < vp.Size.H; y++ {
		for x := range row {
			row[x] = '.'
			if src.Get(vp.At(x, y)).Alive() {
				row[x] = 'O'
			}
		}
		bw.Write(row)
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return eris.Wrap(err, "write pattern")
	}
	return nil
}

var builtins = map[string]string{
	"blinker":    "OOO",
	"block":      "OO\nOO",
	"glider":     ".O.\n..O\nOOO",
	"rpentomino": ".OO\nOO.\n.O.",
	"lwss":       ".O..O\nO....\nO...O\nOOOO.",
	"gosper": `........................O...........
......................O.O...........
............OO......OO............OO
...........O...O....OO............OO
OO........O.....O...OO..............
OO........O...O.OO....O.O...........
..........O.....O.......O...........
...........O...O....................
............OO......................`,
}

// Builtin returns a named pattern placed at origin.
func Builtin(name string, origin core.Point) (grid.Sparse, error) {
	src, ok := builtins[strings.ToLower(name)]
	if !ok {
		return grid.Sparse{}, eris.Errorf("unknown pattern %q", name)
	}
	return Parse(src, origin)
}

// Names lists the built-in pattern names.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
