package svgtree

import (
	"github.com/benoitkugler/svgshapes/svgdraw"
	"github.com/benoitkugler/svgshapes/svgpath"
)

// Line is the segment (x1, y1) -> (x2, y2).
type Line struct {
	NodeBase
}

func NewLine(x1, y1, x2, y2 float64) *Line {
	l := &Line{}
	l.SetAttr("x1", x1)
	l.SetAttr("y1", y1)
	l.SetAttr("x2", x2)
	l.SetAttr("y2", y2)
	return l
}

func (*Line) TagName() string { return "line" }

func (*Line) acceptsMarkers() {}

// Fill is always nil : a line can't be filled.
func (*Line) Fill() PaintServer { return nil }

func (l *Line) Start() svgpath.Point {
	return svgpath.Point{X: device(l, "x1", false, Px(0)), Y: device(l, "y1", false, Px(0))}
}

func (l *Line) End() svgpath.Point {
	return svgpath.Point{X: device(l, "x2", false, Px(0)), Y: device(l, "y2", false, Px(0))}
}

// Path returns nil if the stroke width is not positive.
// In bounds mode, the end points are replaced by circles
// of radius half the stroke width.
func (l *Line) Path(r svgdraw.Renderer) *svgpath.Path {
	return l.paths.get(l, r, func() *svgpath.Path {
		sw := StrokeWidth(l)
		if sw <= 0 {
			return nil
		}
		start, end := l.Start(), l.End()
		path := svgpath.NewPath()
		if r != nil {
			path.AddElement(svgpath.Line{Start: start, End: end})
			return path
		}
		radius := sw / 2
		path.StartFigure()
		path.AddElement(svgpath.Ellipse{Center: start, RX: radius, RY: radius})
		path.AddElement(svgpath.Ellipse{Center: end, RX: radius, RY: radius})
		path.CloseFigure(false)
		return path
	})
}

func (l *Line) Render(r svgdraw.Renderer) { renderShape(l, r) }
