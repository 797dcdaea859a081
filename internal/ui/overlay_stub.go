//go:build !ebiten

package ui

import pkgcore "mad-gol/pkg/core"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(int) *Overlay { return &Overlay{} }

// Selection is always empty in headless builds.
func (o *Overlay) Selection() pkgcore.Rect { return pkgcore.ZR }

// ClearSelection is a no-op in headless builds.
func (o *Overlay) ClearSelection() {}

// Update is a no-op in headless builds.
func (o *Overlay) Update(pkgcore.Rect) {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, pkgcore.Rect) {}
