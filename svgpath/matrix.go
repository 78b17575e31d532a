package svgpath

import "math"

// Matrix2D represents an affine transform
//
//	| A C E |
//	| B D F |
//	| 0 0 1 |
//
// mapping (x, y) to (A*x + C*y + E, B*x + D*y + F).
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Identity is the identity matrix
var Identity = Matrix2D{1, 0, 0, 1, 0, 0}

// Mult returns a*b : the resulting transform applies `b` first, then `a`.
func (a Matrix2D) Mult(b Matrix2D) Matrix2D {
	return Matrix2D{
		A: a.A*b.A + a.C*b.B,
		B: a.B*b.A + a.D*b.B,
		C: a.A*b.C + a.C*b.D,
		D: a.B*b.C + a.D*b.D,
		E: a.A*b.E + a.C*b.F + a.E,
		F: a.B*b.E + a.D*b.F + a.F,
	}
}

// Transform applies the matrix to the point (x1, y1).
func (a Matrix2D) Transform(x1, y1 float64) (x2, y2 float64) {
	return a.A*x1 + a.C*y1 + a.E, a.B*x1 + a.D*y1 + a.F
}

// Apply is the same as Transform, for points.
func (a Matrix2D) Apply(p Point) Point {
	x, y := a.Transform(p.X, p.Y)
	return Point{x, y}
}

// Translate concatenates a translation, applied before `a`.
func (a Matrix2D) Translate(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{1, 0, 0, 1, x, y})
}

// Scale concatenates a scaling, applied before `a`.
func (a Matrix2D) Scale(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{x, 0, 0, y, 0, 0})
}

// Rotate concatenates a rotation of `theta` radians, applied before `a`.
func (a Matrix2D) Rotate(theta float64) Matrix2D {
	s, c := math.Sincos(theta)
	return a.Mult(Matrix2D{c, s, -s, c, 0, 0})
}

// SkewX concatenates a horizontal skew of `theta` radians.
func (a Matrix2D) SkewX(theta float64) Matrix2D {
	return a.Mult(Matrix2D{1, 0, math.Tan(theta), 1, 0, 0})
}

// SkewY concatenates a vertical skew of `theta` radians.
func (a Matrix2D) SkewY(theta float64) Matrix2D {
	return a.Mult(Matrix2D{1, math.Tan(theta), 0, 1, 0, 0})
}

// Normalization maps `box` into the unit square anchored at the origin:
// the min corner goes to (0,0) and the larger side of the box to 1.
// A single point box only gets translated.
func Normalization(box Rect) Matrix2D {
	size := math.Max(box.W(), box.H())
	scale := 1.
	if size != 0 {
		scale = 1 / size
	}
	return Identity.Scale(scale, scale).Translate(-box.Min.X, -box.Min.Y)
}

// Placement maps the unit square into `rect`, using a uniform scale
// by the smaller side of `rect` and centering the result on both axes.
func Placement(rect Rect) Matrix2D {
	s := math.Min(rect.W(), rect.H())
	offX := rect.Min.X + (rect.W()-s)/2
	offY := rect.Min.Y + (rect.H()-s)/2
	return Identity.Translate(offX, offY).Scale(s, s)
}

// Compose returns the transform applying `first`, then `then`.
func Compose(first, then Matrix2D) Matrix2D {
	return then.Mult(first)
}

// Fit returns the transform drawing the content of `box` into `rect`,
// centered and with its aspect ratio preserved.
func Fit(box, rect Rect) Matrix2D {
	return Compose(Normalization(box), Placement(rect))
}
