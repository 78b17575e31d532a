package svgpath

import (
	"math"
)

// compute the tight bounding box of a path: curves contribute
// their extrema, not their control points

// Rect is an axis aligned rectangle, with Min <= Max on both axes.
type Rect struct{ Min, Max Point }

// NewRect returns the rectangle having `a` and `b` as opposite corners,
// in any order.
func NewRect(a, b Point) Rect {
	return Rect{
		Min: Point{math.Min(a.X, b.X), math.Min(a.Y, b.Y)},
		Max: Point{math.Max(a.X, b.X), math.Max(a.Y, b.Y)},
	}
}

// W returns the width of the rectangle.
func (r Rect) W() float64 { return r.Max.X - r.Min.X }

// H returns the height of the rectangle.
func (r Rect) H() float64 { return r.Max.Y - r.Min.Y }

// Union returns the smallest rectangle containing both `r` and `s`.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		Min: Point{math.Min(r.Min.X, s.Min.X), math.Min(r.Min.Y, s.Min.Y)},
		Max: Point{math.Max(r.Max.X, s.Max.X), math.Max(r.Max.Y, s.Max.Y)},
	}
}

// extend returns the smallest rectangle containing `r` and `p`.
func (r Rect) extend(p Point) Rect {
	return r.Union(Rect{p, p})
}

type quadBezier [3]Point

// quadratic polinomial
// x = At^2 + Bt + C
// where
// A = p0 + p2 - 2p1
// B = 2(p1 - p0)
// C = p0
func bezierQuad(p0, p1, p2, t float64) float64 {
	return (p0+p2-2*p1)*t*t + 2*(p1-p0)*t + p0
}

// derivative as at + b where a,b :
func quadraticDerivative(p0, p1, p2 float64) (a, b float64) {
	return 2 * (p2 - p1 - (p1 - p0)), 2 * (p1 - p0)
}

// handle the case where a = 0
func linearRoots(a, b float64) []float64 {
	if a == 0 {
		return nil
	}
	return []float64{-b / a}
}

func (cu quadBezier) criticalPoints() (tX, tY []float64) {
	aX, bX := quadraticDerivative(cu[0].X, cu[1].X, cu[2].X)
	aY, bY := quadraticDerivative(cu[0].Y, cu[1].Y, cu[2].Y)
	return linearRoots(aX, bX), linearRoots(aY, bY)
}

func (cu quadBezier) evaluateCurve(t float64) Point {
	return Point{
		bezierQuad(cu[0].X, cu[1].X, cu[2].X, t),
		bezierQuad(cu[0].Y, cu[1].Y, cu[2].Y, t),
	}
}

type cubicBezier [4]Point

func (cu cubicBezier) criticalPoints() (tX, tY []float64) {
	aX, bX, cX := cubicDerivative(cu[0].X, cu[1].X, cu[2].X, cu[3].X)
	aY, bY, cY := cubicDerivative(cu[0].Y, cu[1].Y, cu[2].Y, cu[3].Y)
	return quadraticRoots(aX, bX, cX), quadraticRoots(aY, bY, cY)
}

func (cu cubicBezier) evaluateCurve(t float64) Point {
	return Point{
		bezierSpline(cu[0].X, cu[1].X, cu[2].X, cu[3].X, t),
		bezierSpline(cu[0].Y, cu[1].Y, cu[2].Y, cu[3].Y, t),
	}
}

// cubic polinomial
// x = At^3 + Bt^2 + Ct + D
// where A,B,C,D:
// A = p3 -3 * p2 + 3 * p1 - p0
// B = 3 * p2 - 6 * p1 +3 * p0
// C = 3 * p1 - 3 * p0
// D = p0
func bezierSpline(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		(p0)
}

// X' = (3*p3-9*p2+9*p1-3*p0)t^2 + (6*p2-12*p1+6*p0)t + (3*p1-3*p0)
// taken as aX^2 + bX + c
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

// b^2 - 4ac = Determinant
func determinant(a, b, c float64) float64 { return b*b - 4*a*c }

func solve(a, b, c float64, plus bool) float64 {
	sign := 1.
	if !plus {
		sign = -1.
	}
	return (-b + math.Sqrt(determinant(a, b, c))*sign) / (2 * a)
}

func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		// simple line: x = -c / b
		return linearRoots(b, c)
	}

	d := determinant(a, b, c)
	if d < 0 {
		return nil
	}
	if d == 0 {
		return []float64{solve(a, b, c, true)}
	}
	return []float64{solve(a, b, c, true), solve(a, b, c, false)}
}

type bezier interface {
	// compute the t zeroing the derivative
	criticalPoints() (tX, tY []float64)
	// compute the point a time t
	evaluateCurve(t float64) Point
}

func computeBoundingBox(curve bezier) Rect {
	resX, resY := curve.criticalPoints()

	box := Rect{Min: curve.evaluateCurve(0), Max: curve.evaluateCurve(0)}
	box = box.extend(curve.evaluateCurve(1))
	for _, t := range append(resX, resY...) {
		// filter invalid value
		if !(0 <= t && t <= 1) {
			continue
		}
		box = box.extend(curve.evaluateCurve(t))
	}
	return box
}

// Bounds returns the tight bounding box of the path.
// It returns false for an empty path.
func (p Path) Bounds() (Rect, bool) {
	var (
		box          Rect
		start, a     Point // start of the sub path and current point
		hasPoint     bool
		extendWithPt = func(pt Point) {
			if !hasPoint {
				box, hasPoint = Rect{pt, pt}, true
				return
			}
			box = box.extend(pt)
		}
	)
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			a, start = Point(op), Point(op)
			extendWithPt(a)
		case LineTo:
			a = Point(op)
			extendWithPt(a)
		case QuadTo:
			cu := computeBoundingBox(quadBezier{a, op[0], op[1]})
			extendWithPt(cu.Min)
			extendWithPt(cu.Max)
			a = op[1]
		case CubicTo:
			cu := computeBoundingBox(cubicBezier{a, op[0], op[1], op[2]})
			extendWithPt(cu.Min)
			extendWithPt(cu.Max)
			a = op[2]
		case Close:
			a = start
		}
	}
	return box, hasPoint
}
