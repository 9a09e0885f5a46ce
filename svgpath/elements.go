package svgpath

import (
	"fmt"
	"math"
)

// Element is a drawing primitive, the leaf of a Path.
// Elements are values : they are never mutated once built.
type Element interface {
	// Clone returns an independent copy of the element.
	Clone() Element
	String() string

	isElement()
}

// Line is a straight segment.
type Line struct {
	Start, End Point
}

// Bezier is a cubic Bezier curve, extending
// Line with two control points.
type Bezier struct {
	Line
	Control1, Control2 Point
}

// Ellipse is an axis aligned ellipse.
type Ellipse struct {
	Center Point
	RX, RY float64
}

// Rectangle is an axis aligned rectangle, whose
// top left corner is Location.
type Rectangle struct {
	Location Point
	Size     Point
}

// Text is a text run anchored at Location.
// Its layout is left to the rasterizer.
type Text struct {
	Location Point
	Size     float64
	Text     string
}

func (Line) isElement()      {}
func (Bezier) isElement()    {}
func (Ellipse) isElement()   {}
func (Rectangle) isElement() {}
func (Text) isElement()      {}

func (l Line) Clone() Element      { return l }
func (b Bezier) Clone() Element    { return b }
func (e Ellipse) Clone() Element   { return e }
func (r Rectangle) Clone() Element { return r }
func (t Text) Clone() Element      { return t }

func (l Line) String() string { return fmt.Sprintf("M%s L%s", l.Start, l.End) }

func (b Bezier) String() string {
	return fmt.Sprintf("M%s C%s %s %s", b.Start, b.Control1, b.Control2, b.End)
}

func (e Ellipse) String() string { return fmt.Sprintf("E%s %g,%g", e.Center, e.RX, e.RY) }

func (r Rectangle) String() string { return fmt.Sprintf("R%s %s", r.Location, r.Size) }

func (t Text) String() string { return fmt.Sprintf("T%s %g %q", t.Location, t.Size, t.Text) }

// NewBezier returns the cubic curve from start to end.
func NewBezier(start, control1, control2, end Point) Bezier {
	return Bezier{Line: Line{Start: start, End: end}, Control1: control1, Control2: control2}
}

func (r Rectangle) TopLeft() Point { return r.Location }

func (r Rectangle) TopRight() Point { return Point{r.Location.X + r.Size.X, r.Location.Y} }

func (r Rectangle) BottomLeft() Point { return Point{r.Location.X, r.Location.Y + r.Size.Y} }

func (r Rectangle) BottomRight() Point { return r.Location.Add(r.Size) }

func (r Rectangle) Center() Point { return r.Location.Add(r.Size.Mul(0.5)) }

// isLineLike returns true for the elements which may be
// joined by an implicit closing segment.
func isLineLike(e Element) bool {
	switch e.(type) {
	case Line, Bezier:
		return true
	}
	return false
}

// startPoint and endPoint are only meaningful for line-like elements.
func startPoint(e Element) Point {
	switch e := e.(type) {
	case Line:
		return e.Start
	case Bezier:
		return e.Start
	}
	return Point{}
}

func endPoint(e Element) Point {
	switch e := e.(type) {
	case Line:
		return e.End
	case Bezier:
		return e.End
	}
	return Point{}
}

// kappa is the control point distance used to approximate
// a quarter of a unit circle by a cubic Bezier curve.
const kappa = 0.5522847498307936

// ellipseCurves approximates e with four cubic curves.
func ellipseCurves(e Ellipse) []Element {
	c, rx, ry := e.Center, e.RX, e.RY
	kx, ky := kappa*rx, kappa*ry
	right, bottom := Point{c.X + rx, c.Y}, Point{c.X, c.Y + ry}
	left, top := Point{c.X - rx, c.Y}, Point{c.X, c.Y - ry}
	return []Element{
		NewBezier(right, Point{right.X, right.Y + ky}, Point{bottom.X + kx, bottom.Y}, bottom),
		NewBezier(bottom, Point{bottom.X - kx, bottom.Y}, Point{left.X, left.Y + ky}, left),
		NewBezier(left, Point{left.X, left.Y - ky}, Point{top.X - kx, top.Y}, top),
		NewBezier(top, Point{top.X + kx, top.Y}, Point{right.X, right.Y - ky}, right),
	}
}

// transformElement maps e by m. Ellipses and rectangles
// stay primitives under scales and translations, and are
// lowered to curves and lines otherwise.
func transformElement(e Element, m Matrix) []Element {
	axisAligned := m.B == 0 && m.C == 0
	switch e := e.(type) {
	case Line:
		return []Element{Line{Start: m.Apply(e.Start), End: m.Apply(e.End)}}
	case Bezier:
		return []Element{NewBezier(m.Apply(e.Start), m.Apply(e.Control1), m.Apply(e.Control2), m.Apply(e.End))}
	case Ellipse:
		if axisAligned {
			return []Element{Ellipse{Center: m.Apply(e.Center), RX: math.Abs(e.RX * m.A), RY: math.Abs(e.RY * m.D)}}
		}
		out := ellipseCurves(e)
		for i, c := range out {
			out[i] = transformElement(c, m)[0]
		}
		return out
	case Rectangle:
		if axisAligned {
			a, b := m.Apply(e.TopLeft()), m.Apply(e.BottomRight())
			loc := Point{math.Min(a.X, b.X), math.Min(a.Y, b.Y)}
			return []Element{Rectangle{Location: loc, Size: Point{math.Abs(b.X - a.X), math.Abs(b.Y - a.Y)}}}
		}
		corners := [4]Point{m.Apply(e.TopLeft()), m.Apply(e.TopRight()), m.Apply(e.BottomRight()), m.Apply(e.BottomLeft())}
		return []Element{
			Line{Start: corners[0], End: corners[1]},
			Line{Start: corners[1], End: corners[2]},
			Line{Start: corners[2], End: corners[3]},
			Line{Start: corners[3], End: corners[0]},
		}
	case Text:
		return []Element{Text{Location: m.Apply(e.Location), Size: e.Size * m.LengthScale(), Text: e.Text}}
	}
	return nil
}
