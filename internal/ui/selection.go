package ui

import pkgcore "mad-gol/pkg/core"

// SelectionRect returns the rect spanning a and b, both corners included.
func SelectionRect(a, b pkgcore.Point) pkgcore.Rect {
	lo := pkgcore.Pt(min(a.X, b.X), min(a.Y, b.Y))
	hi := pkgcore.Pt(max(a.X, b.X), max(a.Y, b.Y))
	return pkgcore.R(lo.X, lo.Y, hi.X-lo.X+1, hi.Y-lo.Y+1)
}

// CellAt maps a screen pixel to the absolute cell under it.
func CellAt(viewport pkgcore.Rect, px, py, scale int) pkgcore.Point {
	if scale <= 0 {
		scale = 1
	}
	return viewport.Origin.Add(pkgcore.Pt(floorDiv(px, scale), floorDiv(py, scale)))
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
