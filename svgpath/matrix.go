package svgpath

import (
	"fmt"
	"math"

	"github.com/srwiley/rasterx"
)

const epsilon = 1e-9

// Point is a position or a vector in user space.
type Point struct{ X, Y float64 }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) Mul(f float64) Point { return Point{p.X * f, p.Y * f} }

func (p Point) String() string { return fmt.Sprintf("%g,%g", p.X, p.Y) }

// Matrix is a 2D affine transform, with the same layout as rasterx.Matrix2D:
// a point (x, y) is mapped to (A*x + C*y + E, B*x + D*y + F).
type Matrix rasterx.Matrix2D

// Identity is the neutral transform.
var Identity = Matrix(rasterx.Identity)

func NewTranslate(x, y float64) Matrix { return Identity.Translate(x, y) }

func NewScale(x, y float64) Matrix { return Identity.Scale(x, y) }

// NewRotate returns a rotation of `angle` degrees around the origin.
func NewRotate(angle float64) Matrix { return Identity.Rotate(angle * math.Pi / 180) }

// NewSkew returns a skew transform, with angles in degrees.
func NewSkew(angleX, angleY float64) Matrix {
	return Matrix{A: 1, B: math.Tan(angleY * math.Pi / 180), C: math.Tan(angleX * math.Pi / 180), D: 1}
}

// Mult returns m*n, that is the transform applying n first, then m.
func (m Matrix) Mult(n Matrix) Matrix {
	return Matrix(rasterx.Matrix2D(m).Mult(rasterx.Matrix2D(n)))
}

// Then returns the transform applying m first, then n.
func (m Matrix) Then(n Matrix) Matrix { return n.Mult(m) }

// Translate returns m*T, so that the translation is applied before m.
func (m Matrix) Translate(x, y float64) Matrix {
	return Matrix(rasterx.Matrix2D(m).Translate(x, y))
}

// Rotate returns m*R, with `theta` in radians.
func (m Matrix) Rotate(theta float64) Matrix {
	return Matrix(rasterx.Matrix2D(m).Rotate(theta))
}

func (m Matrix) Scale(x, y float64) Matrix {
	return Matrix(rasterx.Matrix2D(m).Scale(x, y))
}

// Invert returns the inverse of m, which must be invertible.
func (m Matrix) Invert() Matrix { return Matrix(rasterx.Matrix2D(m).Invert()) }

func (m Matrix) Determinant() float64 { return m.A*m.D - m.B*m.C }

// IsInvertible returns false for degenerate transforms, such as scale(0).
func (m Matrix) IsInvertible() bool { return math.Abs(m.Determinant()) > epsilon }

func (m Matrix) IsIdentity() bool { return m == Identity }

// Apply maps the point p.
func (m Matrix) Apply(p Point) Point {
	x, y := rasterx.Matrix2D(m).Transform(p.X, p.Y)
	return Point{x, y}
}

// ApplyVector maps the vector v, ignoring the translation part.
func (m Matrix) ApplyVector(v Point) Point {
	return Point{m.A*v.X + m.C*v.Y, m.B*v.X + m.D*v.Y}
}

// LengthScale returns the factor applied by m to lengths,
// averaged over all directions.
func (m Matrix) LengthScale() float64 { return math.Sqrt(math.Abs(m.Determinant())) }

func (m Matrix) String() string {
	return fmt.Sprintf("matrix(%g %g %g %g %g %g)", m.A, m.B, m.C, m.D, m.E, m.F)
}
