package svgpath

// Subdivisions is the number of points used to approximate
// every curve, whatever its length.
const Subdivisions = 10

// Lerp interpolates linearly between `a` and `b`, independently on each axis.
func Lerp(a, b Point, t float64) Point {
	return a.Add(b.Sub(a).Mul(t))
}

func quadAt(p0, p1, p2 Point, t float64) Point {
	return Lerp(Lerp(p0, p1, t), Lerp(p1, p2, t), t)
}

func cubicAt(p0, p1, p2, p3 Point, t float64) Point {
	q0, q1, q2 := Lerp(p0, p1, t), Lerp(p1, p2, t), Lerp(p2, p3, t)
	return Lerp(Lerp(q0, q1, t), Lerp(q1, q2, t), t)
}

// FlattenQuad returns `n` points of the quadratic curve p0, p1, p2,
// evaluated at t = 1/n, 2/n, ..., 1. The start point is not included.
func FlattenQuad(p0, p1, p2 Point, n int) []Point {
	if n <= 0 {
		return nil
	}
	out := make([]Point, n)
	for i := 1; i <= n; i++ {
		out[i-1] = quadAt(p0, p1, p2, float64(i)/float64(n))
	}
	return out
}

// FlattenCubic is the same as FlattenQuad for the cubic curve p0, p1, p2, p3.
func FlattenCubic(p0, p1, p2, p3 Point, n int) []Point {
	if n <= 0 {
		return nil
	}
	out := make([]Point, n)
	for i := 1; i <= n; i++ {
		out[i-1] = cubicAt(p0, p1, p2, p3, float64(i)/float64(n))
	}
	return out
}
