package core

// Point is an absolute integer grid coordinate.
type Point struct {
	X int
	Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// PtF truncates host floating-point coordinates toward zero.
func PtF(x, y float64) Point { return Point{X: int(x), Y: int(y)} }

// Add returns p translated by d.
func (p Point) Add(d Point) Point { return Point{X: p.X + d.X, Y: p.Y + d.Y} }

// Sub returns the delta that moves q onto p.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// In reports whether p lies inside r.
func (p Point) In(r Rect) bool { return r.Contains(p) }

// Size describes the dimensions of a grid or rectangle.
type Size struct {
	W int
	H int
}

// Sz builds a Size, clamping negative dimensions to zero.
func Sz(w, h int) Size {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Size{W: w, H: h}
}

// Area returns W*H, or zero for degenerate sizes.
func (s Size) Area() int {
	if s.W <= 0 || s.H <= 0 {
		return 0
	}
	return s.W * s.H
}

// Rect is an axis-aligned rectangle whose Origin is the minimum corner.
// The maximum corner is exclusive.
type Rect struct {
	Origin Point
	Size   Size
}

// ZR is the zero rectangle.
var ZR Rect

// R builds a Rect from an origin and dimensions. Negative dimensions clamp to zero.
func R(x, y, w, h int) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Sz(w, h)}
}

// RectF converts a host floating-point rectangle, truncating every component
// toward zero.
func RectF(x, y, w, h float64) Rect {
	return R(int(x), int(y), int(w), int(h))
}

// Float returns the rectangle in host floating-point form.
func (r Rect) Float() (x, y, w, h float64) {
	return float64(r.Origin.X), float64(r.Origin.Y), float64(r.Size.W), float64(r.Size.H)
}

// Max returns the exclusive maximum corner.
func (r Rect) Max() Point {
	return Point{X: r.Origin.X + r.Size.W, Y: r.Origin.Y + r.Size.H}
}

// Empty reports whether the rectangle covers no points.
func (r Rect) Empty() bool { return r.Size.W <= 0 || r.Size.H <= 0 }

// Eq reports whether two rectangles are identical.
func (r Rect) Eq(o Rect) bool { return r == o }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Origin.X && p.X < r.Origin.X+r.Size.W &&
		p.Y >= r.Origin.Y && p.Y < r.Origin.Y+r.Size.H
}

// Translate moves the rectangle origin by d.
func (r Rect) Translate(d Point) Rect {
	r.Origin = r.Origin.Add(d)
	return r
}

// Intersect returns the largest rectangle contained by both r and o. Disjoint
// rectangles yield a zero-size rectangle.
func (r Rect) Intersect(o Rect) Rect {
	lo := Point{X: max(r.Origin.X, o.Origin.X), Y: max(r.Origin.Y, o.Origin.Y)}
	rm, om := r.Max(), o.Max()
	hi := Point{X: min(rm.X, om.X), Y: min(rm.Y, om.Y)}
	return Rect{Origin: lo, Size: Sz(hi.X-lo.X, hi.Y-lo.Y)}
}

// Union returns the smallest rectangle containing both r and o. Empty
// rectangles are ignored.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	rm, om := r.Max(), o.Max()
	origin := Point{X: min(r.Origin.X, o.Origin.X), Y: min(r.Origin.Y, o.Origin.Y)}
	return Rect{Origin: origin, Size: Sz(max(rm.X, om.X)-origin.X, max(rm.Y, om.Y)-origin.Y)}
}

// Index returns the row-major offset of p relative to r's origin. The caller
// must ensure r contains p.
func (r Rect) Index(p Point) int {
	return (p.Y-r.Origin.Y)*r.Size.W + (p.X - r.Origin.X)
}

// At returns the absolute point for the local offset (x, y).
func (r Rect) At(x, y int) Point {
	return Point{X: r.Origin.X + x, Y: r.Origin.Y + y}
}
