package svgpath

import (
	"fmt"
	"strings"
)

// Segment is a drawing command, lowered into
// geometry by AddToPath.
type Segment interface {
	StartPoint() Point
	EndPoint() Point
	// AddToPath appends the geometry of the segment to p.
	AddToPath(p *Path)
	String() string
}

// MoveTo starts a new contour at To.
type MoveTo struct{ To Point }

type LineTo struct{ Start, End Point }

type CubicCurve struct {
	Start, Control1, Control2, End Point
}

type QuadraticCurve struct {
	Start, Control, End Point
}

// Close closes the current contour. End is the start point
// of the contour.
type Close struct{ Start, End Point }

func (s MoveTo) StartPoint() Point         { return s.To }
func (s MoveTo) EndPoint() Point           { return s.To }
func (s LineTo) StartPoint() Point         { return s.Start }
func (s LineTo) EndPoint() Point           { return s.End }
func (s CubicCurve) StartPoint() Point     { return s.Start }
func (s CubicCurve) EndPoint() Point       { return s.End }
func (s QuadraticCurve) StartPoint() Point { return s.Start }
func (s QuadraticCurve) EndPoint() Point   { return s.End }
func (s Close) StartPoint() Point          { return s.Start }
func (s Close) EndPoint() Point            { return s.End }

func (s MoveTo) AddToPath(p *Path) { p.StartFigure() }

func (s LineTo) AddToPath(p *Path) { p.AddElement(Line{Start: s.Start, End: s.End}) }

func (s CubicCurve) AddToPath(p *Path) {
	p.AddElement(NewBezier(s.Start, s.Control1, s.Control2, s.End))
}

// FirstControlPoint returns the first control point of the
// equivalent cubic curve : S + 2/3 (C - S).
func (s QuadraticCurve) FirstControlPoint() Point {
	return s.Start.Add(s.Control.Sub(s.Start).Mul(2. / 3))
}

// SecondControlPoint returns the second control point of the
// equivalent cubic curve : C + 1/3 (E - C).
func (s QuadraticCurve) SecondControlPoint() Point {
	return s.Control.Add(s.End.Sub(s.Control).Mul(1. / 3))
}

// AddToPath adds the exact cubic equivalent of the curve.
func (s QuadraticCurve) AddToPath(p *Path) {
	p.AddElement(NewBezier(s.Start, s.FirstControlPoint(), s.SecondControlPoint(), s.End))
}

func (s Close) AddToPath(p *Path) { p.CloseFigure(true) }

func (s MoveTo) String() string { return "M" + s.To.String() }
func (s LineTo) String() string { return "L" + s.End.String() }
func (s CubicCurve) String() string {
	return fmt.Sprintf("C%s %s %s", s.Control1, s.Control2, s.End)
}
func (s QuadraticCurve) String() string { return fmt.Sprintf("Q%s %s", s.Control, s.End) }
func (s Close) String() string          { return "z" }

// Segments is a sequence of drawing commands.
type Segments []Segment

// AddToPath replays the segments into p.
func (ss Segments) AddToPath(p *Path) {
	for _, s := range ss {
		s.AddToPath(p)
	}
}

// Path returns a new path built from the segments.
func (ss Segments) Path() *Path {
	p := NewPath()
	ss.AddToPath(p)
	return p
}

func (ss Segments) String() string {
	chunks := make([]string, len(ss))
	for i, s := range ss {
		chunks[i] = s.String()
	}
	return strings.Join(chunks, " ")
}

// Builder accumulates segments, keeping track of the current
// point so that each segment starts where the previous one ended.
type Builder struct {
	segments Segments
	current  Point
	start    Point // of the current contour
	closed   bool  // the last command was a Close
}

// MoveTo starts a new contour at p.
func (b *Builder) MoveTo(p Point) {
	b.segments = append(b.segments, MoveTo{To: p})
	b.current, b.start, b.closed = p, p, false
}

// after a close, a drawing command implicitly starts
// a new contour at the start of the previous one
func (b *Builder) reopen() {
	if b.closed {
		b.MoveTo(b.start)
	}
}

func (b *Builder) LineTo(p Point) {
	b.reopen()
	b.segments = append(b.segments, LineTo{Start: b.current, End: p})
	b.current = p
}

func (b *Builder) QuadTo(control, p Point) {
	b.reopen()
	b.segments = append(b.segments, QuadraticCurve{Start: b.current, Control: control, End: p})
	b.current = p
}

func (b *Builder) CubicTo(control1, control2, p Point) {
	b.reopen()
	b.segments = append(b.segments, CubicCurve{Start: b.current, Control1: control1, Control2: control2, End: p})
	b.current = p
}

// ArcTo adds an elliptical arc to p, using the SVG arc parameters
// (rotation is in degrees).
func (b *Builder) ArcTo(rx, ry, rotation float64, largeArc, sweep bool, p Point) {
	b.reopen()
	b.segments = append(b.segments, Arc{
		Start: b.current, End: p,
		RX: rx, RY: ry, Rotation: rotation,
		LargeArc: largeArc, Sweep: sweep,
	})
	b.current = p
}

// Close closes the current contour.
func (b *Builder) Close() {
	b.segments = append(b.segments, Close{Start: b.current, End: b.start})
	b.current, b.closed = b.start, true
}

// CurrentPoint returns the end point of the last segment.
func (b *Builder) CurrentPoint() Point { return b.current }

func (b *Builder) Segments() Segments { return b.segments }

// Path returns a new path built from the accumulated segments.
func (b *Builder) Path() *Path { return b.segments.Path() }
