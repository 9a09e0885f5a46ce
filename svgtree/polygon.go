package svgtree

import (
	"fmt"

	"github.com/benoitkugler/svgshapes/svgdraw"
	"github.com/benoitkugler/svgshapes/svgpath"
)

// Points is the "points" attribute. When parsing failed,
// Coords holds the coordinates read before the error.
type Points struct {
	Coords []Unit
	Err    error
}

// ParsePoints parses a list of coordinates separated by
// commas or spaces. On error, the valid prefix is returned.
func ParsePoints(s string) (Points, error) {
	var out Points
	for _, field := range svgpath.SplitOnCommaOrSpace(s) {
		u, err := ParseUnit(field)
		if err != nil {
			out.Err = fmt.Errorf("%w: %q", ErrInvalidPoint, field)
			return out, out.Err
		}
		out.Coords = append(out.Coords, u)
	}
	if len(out.Coords)%2 != 0 {
		out.Err = ErrOddPoints
		return out, out.Err
	}
	return out, nil
}

// devicePoints converts the "points" attribute of n,
// returning the valid points and the parsing error, if any.
func devicePoints(n Node) ([]svgpath.Point, error) {
	pts := Attribute(n, "points", false, Points{})
	out := make([]svgpath.Point, 0, len(pts.Coords)/2)
	for i := 0; i+1 < len(pts.Coords); i += 2 {
		out = append(out, svgpath.Point{
			X: toDevice(n, pts.Coords[i], AxisHorizontal),
			Y: toDevice(n, pts.Coords[i+1], AxisVertical),
		})
	}
	err := pts.Err
	if err == nil && len(pts.Coords)%2 != 0 {
		err = ErrOddPoints
	}
	return out, err
}

// Polygon is a closed contour through its "points".
type Polygon struct {
	NodeBase
}

// NewPolygon returns a polygon with coordinates x0, y0, x1, y1, ...
func NewPolygon(coords ...float64) *Polygon {
	p := &Polygon{}
	p.SetAttr("points", coords)
	return p
}

func (*Polygon) TagName() string { return "polygon" }

func (*Polygon) acceptsMarkers() {}

// Path connects the points in order and closes the contour.
// In bounds mode, a circle of radius twice the stroke width
// is used for each vertex.
// Invalid points are reported and the valid ones are still used.
func (p *Polygon) Path(r svgdraw.Renderer) *svgpath.Path {
	return p.paths.get(p, r, func() *svgpath.Path {
		points, err := devicePoints(p)
		p.paths.reportOnce(p, err)

		path := svgpath.NewPath()
		path.StartFigure()
		if r == nil {
			radius := 2 * StrokeWidth(p)
			for _, pt := range points {
				path.AddElement(svgpath.Ellipse{Center: pt, RX: radius, RY: radius})
			}
		} else {
			for i := 1; i < len(points); i++ {
				path.AddElement(svgpath.Line{Start: points[i-1], End: points[i]})
			}
		}
		path.CloseFigure(true)
		return path
	})
}

func (p *Polygon) Render(r svgdraw.Renderer) { renderShape(p, r) }

// Polyline is an open contour through its "points".
type Polyline struct {
	Polygon
}

// NewPolyline returns a polyline with coordinates x0, y0, x1, y1, ...
func NewPolyline(coords ...float64) *Polyline {
	p := &Polyline{}
	p.SetAttr("points", coords)
	return p
}

func (*Polyline) TagName() string { return "polyline" }

// Path returns nil if the stroke width is not positive.
// The contour starts with a zero length line on the first point.
// In bounds mode, a circle of radius half the stroke width
// is used for each vertex.
func (p *Polyline) Path(r svgdraw.Renderer) *svgpath.Path {
	return p.paths.get(p, r, func() *svgpath.Path {
		sw := StrokeWidth(p)
		if sw <= 0 {
			return nil
		}
		points, err := devicePoints(p)
		p.paths.reportOnce(p, err)

		path := svgpath.NewPath()
		path.StartFigure()
		if r == nil {
			radius := sw / 2
			for _, pt := range points {
				path.AddElement(svgpath.Ellipse{Center: pt, RX: radius, RY: radius})
			}
		} else if len(points) != 0 {
			path.AddElement(svgpath.Line{Start: points[0], End: points[0]})
			for i := 1; i < len(points); i++ {
				path.AddElement(svgpath.Line{Start: points[i-1], End: points[i]})
			}
		}
		path.CloseFigure(false)
		return path
	})
}

func (p *Polyline) Render(r svgdraw.Renderer) { renderShape(p, r) }
