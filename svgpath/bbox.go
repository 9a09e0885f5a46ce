package svgpath

import "math"

// compute the bounding box of a path, needed by bounds queries
// and gradients using objectBoundingBox

// Rect is an axis aligned rectangle.
type Rect struct{ Min, Max Point }

func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Union returns the smallest rectangle containing r and s.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		Min: Point{math.Min(r.Min.X, s.Min.X), math.Min(r.Min.Y, s.Min.Y)},
		Max: Point{math.Max(r.Max.X, s.Max.X), math.Max(r.Max.Y, s.Max.Y)},
	}
}

func (r Rect) extend(p Point) Rect { return r.Union(Rect{Min: p, Max: p}) }

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
// taken as aX^2 + bX + c  a,b and c are:
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

func quadraticRoots(a, b, c float64) []float64 {
	if math.Abs(a) < epsilon {
		// this is a simple line
		if math.Abs(b) < epsilon {
			return nil
		}
		return []float64{-c / b}
	}
	d := b*b - 4*a*c
	if d < 0 {
		return nil
	}
	if d == 0 {
		return []float64{-b / (2 * a)}
	}
	sq := math.Sqrt(d)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

func bezierBounds(b Bezier) Rect {
	aX, bX, cX := cubicDerivative(b.Start.X, b.Control1.X, b.Control2.X, b.End.X)
	aY, bY, cY := cubicDerivative(b.Start.Y, b.Control1.Y, b.Control2.Y, b.End.Y)
	out := Rect{Min: b.Start, Max: b.Start}.extend(b.End)
	for _, t := range append(quadraticRoots(aX, bX, cX), quadraticRoots(aY, bY, cY)...) {
		// filter invalid value
		if !(0 <= t && t <= 1) {
			continue
		}
		out = out.extend(Point{
			bezierSpline(b.Start.X, b.Control1.X, b.Control2.X, b.End.X, t),
			bezierSpline(b.Start.Y, b.Control1.Y, b.Control2.Y, b.End.Y, t),
		})
	}
	return out
}

// elementBounds returns the bounds of e mapped by m.
func elementBounds(e Element, m Matrix) Rect {
	switch e := e.(type) {
	case Line:
		a := m.Apply(e.Start)
		return Rect{Min: a, Max: a}.extend(m.Apply(e.End))
	case Bezier:
		return bezierBounds(transformElement(e, m)[0].(Bezier))
	case Ellipse:
		// x(t) = cx + A rx cos(t) + C ry sin(t), and the same for y
		c := m.Apply(e.Center)
		hx := math.Hypot(m.A*e.RX, m.C*e.RY)
		hy := math.Hypot(m.B*e.RX, m.D*e.RY)
		return Rect{Min: Point{c.X - hx, c.Y - hy}, Max: Point{c.X + hx, c.Y + hy}}
	case Rectangle:
		a := m.Apply(e.TopLeft())
		return Rect{Min: a, Max: a}.extend(m.Apply(e.TopRight())).
			extend(m.Apply(e.BottomLeft())).extend(m.Apply(e.BottomRight()))
	case Text:
		a := m.Apply(e.Location)
		return Rect{Min: a, Max: a}
	}
	return Rect{}
}

// Bounds returns the bounding box of the path, mapped by its
// pending transforms and then by m. It returns false for an empty path.
func (p *Path) Bounds(m Matrix) (Rect, bool) {
	var (
		out   Rect
		found bool
	)
	if p == nil {
		return out, false
	}
	p.Walk(m, func(m Matrix, f *Figure) {
		for _, e := range f.elements {
			r := elementBounds(e, m)
			if !found {
				out, found = r, true
			} else {
				out = out.Union(r)
			}
		}
	})
	return out, found
}
