package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	pkgcore "mad-gol/pkg/core"
)

func TestSelectionRectIsInclusive(t *testing.T) {
	assert.Equal(t, pkgcore.R(2, 3, 1, 1), SelectionRect(pkgcore.Pt(2, 3), pkgcore.Pt(2, 3)))
	assert.Equal(t, pkgcore.R(-1, 0, 4, 3), SelectionRect(pkgcore.Pt(2, 2), pkgcore.Pt(-1, 0)))
}

func TestCellAt(t *testing.T) {
	vp := pkgcore.R(10, -5, 20, 20)
	assert.Equal(t, pkgcore.Pt(10, -5), CellAt(vp, 0, 0, 4))
	assert.Equal(t, pkgcore.Pt(12, -4), CellAt(vp, 11, 7, 4))
	assert.Equal(t, pkgcore.Pt(9, -6), CellAt(vp, -1, -1, 4))
	assert.Equal(t, pkgcore.Pt(13, -2), CellAt(vp, 3, 3, 0))
}
