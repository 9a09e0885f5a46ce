// Implements an abstract representation of
// SVG geometry : paths made of contours (figures) and
// drawing primitives, which can then be consumed by
// painting drivers.
package svgpath

import (
	"math"
	"strings"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Figure is one contour : a sequence of elements, optionally closed.
type Figure struct {
	elements []Element
	// Closed is true when the contour is geometrically closed.
	Closed bool
}

// RawElements returns the stored elements, without
// the implicit closing segment.
func (f *Figure) RawElements() []Element { return f.elements }

// Elements returns the elements of the contour. When the figure is closed
// and both its first and last elements are line-like, a closing
// line from the end of the last element to the start of the first is appended.
func (f *Figure) Elements() []Element {
	out := append([]Element(nil), f.elements...)
	if !f.Closed || len(f.elements) == 0 {
		return out
	}
	first, last := f.elements[0], f.elements[len(f.elements)-1]
	if isLineLike(first) && isLineLike(last) {
		out = append(out, Line{Start: endPoint(last), End: startPoint(first)})
	}
	return out
}

func (f *Figure) clone() *Figure {
	out := &Figure{Closed: f.Closed, elements: make([]Element, len(f.elements))}
	for i, e := range f.elements {
		out.elements[i] = e.Clone()
	}
	return out
}

// Path holds the geometry of one shape or of
// a whole subtree : nested sub-paths, figures and loose elements.
// The zero value is an empty path, ready to use.
type Path struct {
	matrix      Matrix
	transformed bool // if false, matrix is Identity

	subPaths []*Path
	figures  []*Figure
	elements []Element

	figureOpen bool // the last figure receives new elements
}

// NewPath returns an empty path.
func NewPath() *Path { return &Path{} }

// Matrix returns the pending transform of the path, applied
// to its content when it is composed into a parent.
func (p *Path) Matrix() Matrix {
	if !p.transformed {
		return Identity
	}
	return p.matrix
}

// Transform accumulates m onto the pending transform :
// m is applied after the existing transform.
func (p *Path) Transform(m Matrix) {
	p.matrix = m.Mult(p.Matrix())
	p.transformed = true
}

// StartFigure opens a new contour, receiving the following
// AddElement calls.
func (p *Path) StartFigure() {
	p.figures = append(p.figures, &Figure{})
	p.figureOpen = true
}

// CloseFigure ends the open contour, if any.
func (p *Path) CloseFigure(closeGeometry bool) {
	if !p.figureOpen {
		return
	}
	p.figures[len(p.figures)-1].Closed = closeGeometry
	p.figureOpen = false
}

// AddElement appends e to the open contour, or to the
// loose elements if there is none.
func (p *Path) AddElement(e Element) {
	if p.figureOpen {
		f := p.figures[len(p.figures)-1]
		f.elements = append(f.elements, e)
		return
	}
	p.elements = append(p.elements, e)
}

// AddPath nests other as a sub-path. The geometry is not flattened,
// and other keeps its own pending transform.
func (p *Path) AddPath(other *Path) {
	if other == nil {
		return
	}
	p.subPaths = append(p.subPaths, other)
}

func (p *Path) SubPaths() []*Path { return p.subPaths }

func (p *Path) Figures() []*Figure { return p.figures }

func (p *Path) LooseElements() []Element { return p.elements }

// IsEmpty returns true if the path contains no element,
// including in its sub-paths and figures. A nil path is empty.
// Figures are counted by their elements : a path holding only
// started but empty figures is empty, so that a shape without
// valid points produces no drawable geometry.
func (p *Path) IsEmpty() bool {
	if p == nil {
		return true
	}
	if len(p.elements) != 0 {
		return false
	}
	for _, f := range p.figures {
		if len(f.elements) != 0 {
			return false
		}
	}
	for _, s := range p.subPaths {
		if !s.IsEmpty() {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of p. Cloning a nil path
// returns a new empty path.
func (p *Path) Clone() *Path {
	if p == nil {
		return NewPath()
	}
	out := &Path{
		matrix:      p.matrix,
		transformed: p.transformed,
		figureOpen:  p.figureOpen,
	}
	if len(p.subPaths) != 0 {
		out.subPaths = make([]*Path, len(p.subPaths))
		for i, s := range p.subPaths {
			out.subPaths[i] = s.Clone()
		}
	}
	if len(p.figures) != 0 {
		out.figures = make([]*Figure, len(p.figures))
		for i, f := range p.figures {
			out.figures[i] = f.clone()
		}
	}
	if len(p.elements) != 0 {
		out.elements = make([]Element, len(p.elements))
		for i, e := range p.elements {
			out.elements[i] = e.Clone()
		}
	}
	return out
}

// Elements returns every element of the path, in drawing order :
// sub-paths first, then figures (with their closing segment), then loose elements.
// Pending transforms are ignored : see Flatten to get global coordinates.
func (p *Path) Elements() []Element {
	var out []Element
	for _, s := range p.subPaths {
		out = append(out, s.Elements()...)
	}
	for _, f := range p.figures {
		out = append(out, f.Elements()...)
	}
	return append(out, p.elements...)
}

// Walk calls fn for each contour of the path, in drawing order,
// with the matrix mapping the contour coordinates to the space of `m`.
// Loose elements are given as one open figure.
func (p *Path) Walk(m Matrix, fn func(m Matrix, f *Figure)) {
	local := m.Mult(p.Matrix())
	for _, s := range p.subPaths {
		s.Walk(local, fn)
	}
	for _, f := range p.figures {
		if len(f.elements) != 0 {
			fn(local, f)
		}
	}
	if len(p.elements) != 0 {
		fn(local, &Figure{elements: p.elements})
	}
}

// Flatten returns the elements of the path mapped by its pending transforms,
// then by m.
func (p *Path) Flatten(m Matrix) []Element {
	var out []Element
	p.Walk(m, func(m Matrix, f *Figure) {
		for _, e := range f.Elements() {
			out = append(out, transformElement(e, m)...)
		}
	})
	return out
}

func (p *Path) String() string {
	var chunks []string
	for _, e := range p.Flatten(Identity) {
		chunks = append(chunks, e.String())
	}
	return strings.Join(chunks, " ")
}

func toFixedP(pt Point) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(math.Round(pt.X * 64)), Y: fixed.Int26_6(math.Round(pt.Y * 64))}
}

// AddTo lowers the path into rasterx commands, mapping every point by the
// pending transforms and then by m. Text elements are skipped.
func (p *Path) AddTo(q rasterx.Adder, m Matrix) {
	p.Walk(m, func(m Matrix, f *Figure) {
		addFigure(&rasterx.MatrixAdder{Adder: q, M: rasterx.Matrix2D(m)}, f)
	})
}

func addFigure(q rasterx.Adder, f *Figure) {
	var (
		started bool
		current Point
	)
	stop := func(closeLoop bool) {
		if started {
			q.Stop(closeLoop)
			started = false
		}
	}
	moveTo := func(start Point) {
		if started && start == current {
			return
		}
		stop(false)
		q.Start(toFixedP(start))
		started = true
	}
	for _, e := range f.elements {
		switch e := e.(type) {
		case Line:
			moveTo(e.Start)
			q.Line(toFixedP(e.End))
			current = e.End
		case Bezier:
			moveTo(e.Start)
			q.CubeBezier(toFixedP(e.Control1), toFixedP(e.Control2), toFixedP(e.End))
			current = e.End
		case Ellipse:
			stop(false)
			rasterx.AddEllipse(e.Center.X, e.Center.Y, e.RX, e.RY, 0, q)
		case Rectangle:
			stop(false)
			corner := e.BottomRight()
			rasterx.AddRect(e.Location.X, e.Location.Y, corner.X, corner.Y, 0, q)
		}
	}
	stop(f.Closed)
}
