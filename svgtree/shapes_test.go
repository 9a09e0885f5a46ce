package svgtree

import (
	"testing"

	"github.com/benoitkugler/svgshapes/svgdraw"
	"github.com/benoitkugler/svgshapes/svgpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func pt(x, y float64) svgpath.Point { return svgpath.Point{X: x, Y: y} }

func line(x1, y1, x2, y2 float64) svgpath.Line {
	return svgpath.Line{Start: pt(x1, y1), End: pt(x2, y2)}
}

func circle(x, y, r float64) svgpath.Ellipse {
	return svgpath.Ellipse{Center: pt(x, y), RX: r, RY: r}
}

func TestLinePath(t *testing.T) {
	rec := &svgdraw.Recorder{}
	l := NewLine(0, 0, 10, 0)
	l.SetAttr("stroke-width", 0.)
	assert.Nil(t, l.Path(rec))
	assert.Nil(t, l.Path(nil))

	l.SetAttr("stroke-width", 4.)
	bounds := l.Path(nil)
	require.NotNil(t, bounds)
	require.Len(t, bounds.Figures(), 1)
	assert.Equal(t, []svgpath.Element{circle(0, 0, 2), circle(10, 0, 2)}, bounds.Figures()[0].Elements())

	paint := l.Path(rec)
	require.NotNil(t, paint)
	assert.Empty(t, paint.Figures())
	assert.Equal(t, []svgpath.Element{line(0, 0, 10, 0)}, paint.LooseElements())

	assert.Nil(t, l.Fill())
}

func TestLineUnits(t *testing.T) {
	l := NewLine(0, 0, 0, 0)
	require.NoError(t, l.SetAttr("x2", "1in"))
	require.NoError(t, l.SetAttr("y2", "72pt"))
	assert.Equal(t, pt(96, 96), l.End())

	err := l.SetAttr("x1", "twelve")
	assert.ErrorIs(t, err, ErrInvalidUnit)
	assert.Equal(t, pt(0, 0), l.Start())
}

func TestPolygonPath(t *testing.T) {
	p := NewPolygon(0, 0, 10, 0, 10, 10)
	path := p.Path(&svgdraw.Recorder{})
	require.Len(t, path.Figures(), 1)
	fig := path.Figures()[0]
	assert.True(t, fig.Closed)
	assert.Equal(t, []svgpath.Element{line(0, 0, 10, 0), line(10, 0, 10, 10)}, fig.RawElements())
	assert.Equal(t, []svgpath.Element{
		line(0, 0, 10, 0), line(10, 0, 10, 10), line(10, 10, 0, 0),
	}, fig.Elements())

	p.SetAttr("stroke-width", 1.5)
	bounds := p.Path(nil)
	require.Len(t, bounds.Figures(), 1)
	assert.Equal(t, []svgpath.Element{
		circle(0, 0, 3), circle(10, 0, 3), circle(10, 10, 3),
	}, bounds.Figures()[0].Elements())
}

func TestPolygonInvalidPoints(t *testing.T) {
	doc := NewDocument(Options{ErrorMode: StrictErrorMode})
	p := &Polygon{}
	AppendChild(doc, p)

	err := p.SetAttr("points", "0,0 10,0 10")
	assert.ErrorIs(t, err, ErrOddPoints)

	path := p.Path(&svgdraw.Recorder{})
	require.Len(t, path.Figures(), 1)
	assert.Equal(t, []svgpath.Element{line(0, 0, 10, 0)}, path.Figures()[0].RawElements())
	// building the bounds geometry does not report again
	p.Path(nil)
	require.Len(t, doc.Errors(), 1)
	assert.ErrorIs(t, doc.Errors()[0], ErrOddPoints)

	err = p.SetAttr("points", "0,0 5,x 10,10")
	assert.ErrorIs(t, err, ErrInvalidPoint)
	path = p.Path(&svgdraw.Recorder{})
	assert.True(t, path.IsEmpty())
	assert.Len(t, doc.Errors(), 2)
}

func TestIgnoreErrorMode(t *testing.T) {
	doc := NewDocument(Options{ErrorMode: IgnoreErrorMode})
	p := NewPolygon(0, 0, 1)
	AppendChild(doc, p)
	p.Path(nil)
	assert.Empty(t, doc.Errors())
}

func TestPolylinePath(t *testing.T) {
	p := NewPolyline(0, 0, 10, 0, 10, 10)
	path := p.Path(&svgdraw.Recorder{})
	require.Len(t, path.Figures(), 1)
	fig := path.Figures()[0]
	assert.False(t, fig.Closed)
	assert.Equal(t, []svgpath.Element{
		line(0, 0, 0, 0), line(0, 0, 10, 0), line(10, 0, 10, 10),
	}, fig.Elements())

	bounds := p.Path(nil)
	assert.Equal(t, []svgpath.Element{
		circle(0, 0, 0.5), circle(10, 0, 0.5), circle(10, 10, 0.5),
	}, bounds.Figures()[0].Elements())

	p.SetAttr("stroke-width", -1.)
	assert.Nil(t, p.Path(&svgdraw.Recorder{}))
}

func TestPathCache(t *testing.T) {
	rec := &svgdraw.Recorder{}
	p := NewPolygon(0, 0, 10, 0, 10, 10)

	first := p.Path(rec)
	assert.Same(t, first, p.Path(rec))
	bounds := p.Path(nil)
	assert.NotSame(t, first, bounds)
	assert.Same(t, bounds, p.Path(nil))

	// presentation attributes keep the cache
	p.SetAttr("fill", "red")
	p.SetAttr("opacity", 0.5)
	assert.Same(t, first, p.Path(rec))

	p.SetAttr("stroke-width", 2.)
	second := p.Path(rec)
	assert.NotSame(t, first, second)
	assert.NotSame(t, bounds, p.Path(nil))

	// setting the same value keeps the cache
	p.SetAttr("stroke-width", 2.)
	assert.Same(t, second, p.Path(rec))

	p.SetAttr("points", "0,0 20,0 20,20")
	third := p.Path(rec)
	assert.NotSame(t, second, third)
	assert.Equal(t, line(0, 0, 20, 0), third.Figures()[0].RawElements()[0])

	p.DelAttr("points")
	assert.True(t, p.Path(rec).IsEmpty())
}

func TestInheritedStrokeWidth(t *testing.T) {
	rec := &svgdraw.Recorder{}
	l := NewLine(0, 0, 10, 0)
	g := NewGroup(l)
	g.SetAttr("stroke-width", 0.)
	assert.Nil(t, l.Path(rec))

	g.SetAttr("stroke-width", 2.)
	path := l.Path(rec)
	require.NotNil(t, path)
	assert.Equal(t, []svgpath.Element{line(0, 0, 10, 0)}, path.LooseElements())

	p := NewPolygon(0, 0, 10, 0, 10, 10)
	g = NewGroup(p)
	g.SetAttr("stroke-width", 1.)
	assert.Equal(t, circle(0, 0, 2), p.Path(nil).Figures()[0].RawElements()[0])
	g.SetAttr("stroke-width", 5.)
	assert.Equal(t, circle(0, 0, 10), p.Path(nil).Figures()[0].RawElements()[0])

	g.SetAttr("font-size", 10.)
	g.SetAttr("stroke-width", "1em")
	assert.Equal(t, circle(0, 0, 20), p.Path(nil).Figures()[0].RawElements()[0])
	g.SetAttr("font-size", 20.)
	assert.Equal(t, circle(0, 0, 40), p.Path(nil).Figures()[0].RawElements()[0])
}

func TestReparentDropsCache(t *testing.T) {
	rec := &svgdraw.Recorder{}
	p := NewPolygon(0, 0, 10, 0, 10, 10)
	g1, g2 := NewGroup(p), NewGroup()
	first := p.Path(rec)
	assert.Same(t, first, p.Path(rec))

	AppendChild(g2, p)
	assert.Empty(t, g1.Children())
	assert.NotSame(t, first, p.Path(rec))
}

func TestMarkerPropagation(t *testing.T) {
	l1 := NewLine(0, 0, 1, 1)
	l2 := NewLine(0, 0, 1, 1)
	l2.SetAttr("marker-start", "url(#own)")
	poly := NewPolyline(0, 0, 1, 1)
	sym := NewSymbol("sym")
	g := NewGroup(l1, l2, poly, sym)
	g.SetAttr("marker-start", "url(#start)")
	g.SetAttr("marker-end", "url(#end)")

	rec := &svgdraw.Recorder{}
	g.Render(rec)

	v, _ := l1.GetAttr("marker-start")
	assert.Equal(t, "url(#start)", v)
	v, _ = l1.GetAttr("marker-end")
	assert.Equal(t, "url(#end)", v)
	v, _ = l2.GetAttr("marker-start")
	assert.Equal(t, "url(#own)", v)
	v, _ = poly.GetAttr("marker-end")
	assert.Equal(t, "url(#end)", v)
	_, has := sym.GetAttr("marker-start")
	assert.False(t, has)
	_, has = l1.GetAttr("marker-mid")
	assert.False(t, has)

	// only done once
	g.SetAttr("marker-start", "url(#other)")
	l3 := NewLine(0, 0, 1, 1)
	AppendChild(g, l3)
	g.Render(rec)
	v, _ = l1.GetAttr("marker-start")
	assert.Equal(t, "url(#start)", v)
	_, has = l3.GetAttr("marker-start")
	assert.False(t, has)
}

func TestSwitchSelection(t *testing.T) {
	fr := NewLine(0, 0, 1, 0)
	fr.SetAttr("systemLanguage", "fr-CA, de")
	en := NewLine(0, 0, 2, 0)
	en.SetAttr("systemLanguage", "en-US")
	ext := NewLine(0, 0, 3, 0)
	ext.SetAttr("requiredExtensions", "http://example.org/ext")
	fallback := NewLine(0, 0, 4, 0)
	sw := NewSwitch(ext, fr, en, fallback)
	doc := NewDocument(Options{Languages: []language.Tag{language.English}}, sw)

	assert.Same(t, en, sw.Selected())

	doc.Options.Languages = []language.Tag{language.Italian, language.German}
	assert.Same(t, fr, sw.Selected())

	doc.Options.Languages = []language.Tag{language.Japanese}
	assert.Same(t, fallback, sw.Selected())

	rec := &svgdraw.Recorder{}
	doc.Render(rec)
	require.Len(t, rec.Records, 1)
	assert.Equal(t, []svgpath.Element{line(0, 0, 4, 0)}, rec.Elements(svgpath.Identity))

	// the geometry includes every child
	assert.Len(t, sw.Path(rec).SubPaths(), 4)
}

func TestUsePath(t *testing.T) {
	l := NewLine(0, 0, 10, 0)
	l.SetAttr("id", "l")
	l.SetAttr("transform", "scale(2)")
	u := NewUse("l", 5, 5)
	doc := NewDocument(DefaultOptions, l, u)

	path := u.Path(&svgdraw.Recorder{})
	assert.Equal(t, []svgpath.Element{line(5, 5, 25, 5)}, path.Flatten(svgpath.Identity))
	// fresh at each call
	assert.NotSame(t, path, u.Path(&svgdraw.Recorder{}))

	u.SetAttr("href", "#missing")
	assert.Nil(t, u.Path(nil))

	// a reference cycle is cut
	g := NewGroup()
	g.SetAttr("id", "loop")
	loop := NewUse("loop", 1, 1)
	AppendChild(g, loop)
	AppendChild(doc, g)
	assert.True(t, loop.Path(nil).IsEmpty())
	doc.Render(&svgdraw.Recorder{})
}

func TestUseSymbol(t *testing.T) {
	sym := NewSymbol("s", NewLine(0, 0, 10, 10))
	sym.SetAttr("viewBox", "0 0 10 10")
	u := NewUse("s", 100, 0)
	u.SetAttr("width", 20.)
	u.SetAttr("height", 20.)
	doc := NewDocument(DefaultOptions, sym, u)

	rec := &svgdraw.Recorder{}
	doc.Render(rec)
	require.Len(t, rec.Records, 1)
	elems := rec.Elements(svgpath.Identity)
	require.Len(t, elems, 1)
	got := elems[0].(svgpath.Line)
	assert.InDelta(t, 100, got.Start.X, 1e-9)
	assert.InDelta(t, 120, got.End.X, 1e-9)
	assert.InDelta(t, 20, got.End.Y, 1e-9)

	flat := u.Path(rec).Flatten(svgpath.Identity)
	require.Len(t, flat, 1)
	assert.InDelta(t, 120, flat[0].(svgpath.Line).End.X, 1e-9)
}
