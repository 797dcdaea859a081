// Package render converts cell grids into pixel buffers for the GUI viewer.
package render

import (
	"image/color"

	"mad-gol/pkg/grid"
)

// fillBinaryRGBA converts cells into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []grid.Cell, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c.Alive() {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// Pixels renders the viewport of d as a tightly packed RGBA buffer, reusing
// buf when it is large enough.
func Pixels(buf []byte, d grid.Dense, on, off color.Color) []byte {
	n := 4 * len(d.Cells())
	if cap(buf) < n {
		buf = make([]byte, n)
	}
	buf = buf[:n]
	fillBinaryRGBA(buf, d.Cells(), on, off)
	return buf
}
