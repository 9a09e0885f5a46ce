package svgpath

import (
	"testing"

	"github.com/srwiley/rasterx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

func TestFigureRouting(t *testing.T) {
	p := NewPath()
	p.AddElement(Line{End: Point{1, 1}}) // no open figure
	p.StartFigure()
	p.AddElement(Line{Start: Point{0, 0}, End: Point{10, 0}})
	p.AddElement(Line{Start: Point{10, 0}, End: Point{10, 10}})
	p.CloseFigure(true)
	p.AddElement(Ellipse{RX: 1, RY: 1})

	assert.Len(t, p.LooseElements(), 2)
	require.Len(t, p.Figures(), 1)
	assert.Len(t, p.Figures()[0].RawElements(), 2)
	assert.True(t, p.Figures()[0].Closed)

	// closing twice is harmless
	p.CloseFigure(false)
	assert.True(t, p.Figures()[0].Closed)
}

func TestFigureClosure(t *testing.T) {
	l1 := Line{Start: Point{0, 0}, End: Point{10, 0}}
	l2 := Line{Start: Point{10, 0}, End: Point{10, 10}}

	closed := &Figure{elements: []Element{l1, l2}, Closed: true}
	elems := closed.Elements()
	require.Len(t, elems, 3)
	assert.Equal(t, Line{Start: Point{10, 10}, End: Point{0, 0}}, elems[2])
	// storage is untouched
	assert.Len(t, closed.RawElements(), 2)

	open := &Figure{elements: []Element{l1, l2}}
	assert.Len(t, open.Elements(), 2)

	curve := NewBezier(Point{10, 10}, Point{5, 15}, Point{0, 15}, Point{0, 5})
	withCurve := &Figure{elements: []Element{l1, l2, curve}, Closed: true}
	elems = withCurve.Elements()
	require.Len(t, elems, 4)
	assert.Equal(t, Line{Start: Point{0, 5}, End: Point{0, 0}}, elems[3])

	withEllipse := &Figure{elements: []Element{Ellipse{RX: 2, RY: 2}, Ellipse{Center: Point{4, 4}, RX: 2, RY: 2}}, Closed: true}
	assert.Len(t, withEllipse.Elements(), 2)

	assert.Empty(t, (&Figure{Closed: true}).Elements())
}

func TestIsEmpty(t *testing.T) {
	var nilPath *Path
	assert.True(t, nilPath.IsEmpty())
	assert.True(t, NewPath().IsEmpty())

	p := NewPath()
	p.StartFigure()
	p.CloseFigure(true)
	p.AddPath(NewPath())
	assert.True(t, p.IsEmpty())

	sub := NewPath()
	sub.AddElement(Line{End: Point{1, 0}})
	p.AddPath(sub)
	assert.False(t, p.IsEmpty())
}

func TestClone(t *testing.T) {
	p := NewPath()
	p.StartFigure()
	p.AddElement(Line{Start: Point{0, 0}, End: Point{10, 0}})
	sub := NewPath()
	sub.AddElement(Ellipse{Center: Point{5, 5}, RX: 1, RY: 1})
	p.AddPath(sub)
	p.Transform(NewTranslate(1, 2))

	c := p.Clone()
	assert.Equal(t, p.Elements(), c.Elements())
	assert.Equal(t, p.Matrix(), c.Matrix())

	// mutating the clone leaves the original untouched
	c.AddElement(Line{Start: Point{10, 0}, End: Point{10, 10}})
	c.CloseFigure(true)
	c.SubPaths()[0].AddElement(Text{Text: "x"})
	c.Transform(NewScale(2, 2))

	assert.Len(t, p.Elements(), 2)
	assert.Len(t, p.Figures()[0].RawElements(), 1)
	assert.False(t, p.Figures()[0].Closed)
	assert.Len(t, p.SubPaths()[0].Elements(), 1)
	assert.Equal(t, NewTranslate(1, 2), p.Matrix())

	var nilPath *Path
	assert.True(t, nilPath.Clone().IsEmpty())
}

func TestTransformAccumulates(t *testing.T) {
	p := NewPath()
	assert.Equal(t, Identity, p.Matrix())
	p.Transform(NewTranslate(10, 0))
	p.Transform(NewScale(2, 2))
	// translation first, then scale
	assertPoint(t, Point{22, 0}, p.Matrix().Apply(Point{1, 0}))
}

func TestElementsOrder(t *testing.T) {
	loose := Line{End: Point{1, 0}}
	inFigure := Line{End: Point{2, 0}}
	inSub := Line{End: Point{3, 0}}

	p := NewPath()
	p.AddElement(loose)
	p.StartFigure()
	p.AddElement(inFigure)
	p.CloseFigure(false)
	sub := NewPath()
	sub.AddElement(inSub)
	p.AddPath(sub)

	assert.Equal(t, []Element{inSub, inFigure, loose}, p.Elements())
}

func TestFlatten(t *testing.T) {
	sub := NewPath()
	sub.AddElement(Line{Start: Point{0, 0}, End: Point{1, 0}})
	sub.Transform(NewTranslate(10, 0))

	p := NewPath()
	p.AddPath(sub)
	p.AddElement(Rectangle{Location: Point{1, 1}, Size: Point{2, 3}})
	p.Transform(NewScale(2, 2))

	elems := p.Flatten(Identity)
	require.Len(t, elems, 2)
	assert.Equal(t, Line{Start: Point{20, 0}, End: Point{22, 0}}, elems[0])
	assert.Equal(t, Rectangle{Location: Point{2, 2}, Size: Point{4, 6}}, elems[1])

	// rotated ellipses are lowered to curves
	q := NewPath()
	q.AddElement(Ellipse{RX: 2, RY: 1})
	elems = q.Flatten(NewRotate(30))
	assert.Len(t, elems, 4)
	for _, e := range elems {
		assert.IsType(t, Bezier{}, e)
	}
}

type adderCall struct {
	op     string
	points []fixed.Point26_6
}

type recordingAdder struct{ calls []adderCall }

func (r *recordingAdder) Start(a fixed.Point26_6) {
	r.calls = append(r.calls, adderCall{"start", []fixed.Point26_6{a}})
}

func (r *recordingAdder) Line(b fixed.Point26_6) {
	r.calls = append(r.calls, adderCall{"line", []fixed.Point26_6{b}})
}

func (r *recordingAdder) QuadBezier(b, c fixed.Point26_6) {
	r.calls = append(r.calls, adderCall{"quad", []fixed.Point26_6{b, c}})
}

func (r *recordingAdder) CubeBezier(b, c, d fixed.Point26_6) {
	r.calls = append(r.calls, adderCall{"cube", []fixed.Point26_6{b, c, d}})
}

func (r *recordingAdder) Stop(closeLoop bool) {
	op := "stop"
	if closeLoop {
		op = "close"
	}
	r.calls = append(r.calls, adderCall{op: op})
}

var _ rasterx.Adder = (*recordingAdder)(nil)

func ops(calls []adderCall) []string {
	out := make([]string, len(calls))
	for i, c := range calls {
		out[i] = c.op
	}
	return out
}

func TestAddTo(t *testing.T) {
	p := NewPath()
	p.StartFigure()
	p.AddElement(Line{Start: Point{0, 0}, End: Point{10, 0}})
	p.AddElement(Line{Start: Point{10, 0}, End: Point{10, 10}})
	p.CloseFigure(true)
	p.AddElement(NewBezier(Point{20, 20}, Point{25, 20}, Point{30, 25}, Point{30, 30}))

	var q recordingAdder
	p.AddTo(&q, NewTranslate(1, 0))
	assert.Equal(t, []string{"start", "line", "line", "close", "start", "cube", "stop"}, ops(q.calls))
	assert.Equal(t, fixed.Point26_6{X: 64, Y: 0}, q.calls[0].points[0])
	assert.Equal(t, fixed.Point26_6{X: 11 * 64, Y: 10 * 64}, q.calls[2].points[0])

	// disjoint lines start new sub-contours
	q = recordingAdder{}
	p = NewPath()
	p.AddElement(Line{Start: Point{0, 0}, End: Point{1, 0}})
	p.AddElement(Line{Start: Point{5, 5}, End: Point{6, 5}})
	p.AddTo(&q, Identity)
	assert.Equal(t, []string{"start", "line", "stop", "start", "line", "stop"}, ops(q.calls))

	// text is ignored
	q = recordingAdder{}
	p = NewPath()
	p.AddElement(Text{Text: "ignored"})
	p.AddTo(&q, Identity)
	assert.Empty(t, q.calls)
}
