package svgtree

import (
	"image/color"

	"github.com/benoitkugler/svgshapes/svgdraw"
	"github.com/benoitkugler/svgshapes/svgpath"
)

type gradient interface {
	Node
	stopList() *gradientBase
}

// gradientBase holds the stops shared by linear and radial gradients.
type gradientBase struct {
	NodeBase
	stops       []*Stop
	stopsLoaded bool
	loading     bool // guards href cycles
}

func (g *gradientBase) stopList() *gradientBase { return g }

func (*gradientBase) Render(svgdraw.Renderer) {}

// loadStops copies the stops of the referenced gradient, if
// self has none. Once self has stops, own or copied, the list is final.
// A reference not resolved yet is looked up again on the next call.
func (g *gradientBase) loadStops(self Node) {
	if g.stopsLoaded || g.loading {
		return
	}
	if len(g.stops) != 0 {
		g.stopsLoaded = true
		return
	}
	ref, ok := href(self).(gradient)
	if !ok {
		return
	}
	src := ref.stopList()
	g.loading = true
	src.loadStops(ref)
	g.loading = false
	if len(src.stops) == 0 {
		return
	}
	g.stops = append([]*Stop(nil), src.stops...)
	g.stopsLoaded = true
}

// resolve returns the color of the first stop, or black
// without stops.
func (g *gradientBase) resolve(self Node, opacity float64) color.NRGBA {
	g.loadStops(self)
	if len(g.stops) == 0 {
		return opaqueBlack
	}
	return withOpacity(g.stops[0].color(), opacity)
}

func (g *gradientBase) units() svgdraw.GradientUnits {
	return attribute(&g.NodeBase, "gradientUnits", false, svgdraw.ObjectBoundingBox)
}

// coord resolves a gradient coordinate : a fraction of the bounding box
// or a length in user space, depending on the gradient units.
func (g *gradientBase) coord(owner Node, name string, def Unit) float64 {
	u := attribute(&g.NodeBase, name, false, def)
	if g.units() == svgdraw.ObjectBoundingBox {
		if u.Kind == UnitPercent {
			return u.Value / 100
		}
		return u.Value
	}
	return toDevice(owner, u, unitAttributes[name])
}

// describe builds the common part of the gradient description,
// returning false with less than two stops.
func (g *gradientBase) describe(self Node) (svgdraw.Gradient, bool) {
	g.loadStops(self)
	if len(g.stops) < 2 {
		return svgdraw.Gradient{}, false
	}
	out := svgdraw.Gradient{
		Stops:  make([]svgdraw.GradStop, len(g.stops)),
		Matrix: attribute[svgpath.Transforms](&g.NodeBase, "gradientTransform", false, nil).Matrix(),
		Spread: attribute(&g.NodeBase, "spreadMethod", false, svgdraw.PadSpread),
		Units:  g.units(),
	}
	for i, s := range g.stops {
		out.Stops[i] = svgdraw.GradStop{
			StopColor: s.StopColor().Color(s, nil, 1, false),
			Offset:    s.Offset(),
			Opacity:   s.StopOpacity(),
		}
	}
	return out, true
}

// LinearGradient is a paint server, whose colors
// vary along the vector (x1, y1) -> (x2, y2).
type LinearGradient struct {
	gradientBase
}

// NewLinearGradient returns a gradient with the given id and stops.
func NewLinearGradient(id string, stops ...*Stop) *LinearGradient {
	g := &LinearGradient{}
	if id != "" {
		g.SetAttr("id", id)
	}
	for _, s := range stops {
		AppendChild(g, s)
	}
	return g
}

func (*LinearGradient) TagName() string { return "linearGradient" }

// Stops returns the gradient stops, which may come
// from the gradient referenced by "href".
func (g *LinearGradient) Stops() []*Stop {
	g.loadStops(g)
	return g.stops
}

// Color returns the color of the first stop, scaled by opacity,
// or opaque black if there is no stop.
func (g *LinearGradient) Color(_ Node, _ svgdraw.Renderer, opacity float64, _ bool) color.NRGBA {
	return g.resolve(g, opacity)
}

// Describe returns the full gradient, to be painted for owner.
// It returns false if there is less than two stops.
func (g *LinearGradient) Describe(owner Node) (svgdraw.Gradient, bool) {
	out, ok := g.describe(g)
	if !ok {
		return out, false
	}
	out.Direction = svgdraw.Linear{
		g.coord(owner, "x1", Percent(0)),
		g.coord(owner, "y1", Percent(0)),
		g.coord(owner, "x2", Percent(100)),
		g.coord(owner, "y2", Percent(0)),
	}
	return out, true
}

// RadialGradient is a paint server, whose colors
// vary from the focal point (fx, fy) to the circle (cx, cy, r).
type RadialGradient struct {
	gradientBase
}

// NewRadialGradient returns a gradient with the given id and stops.
func NewRadialGradient(id string, stops ...*Stop) *RadialGradient {
	g := &RadialGradient{}
	if id != "" {
		g.SetAttr("id", id)
	}
	for _, s := range stops {
		AppendChild(g, s)
	}
	return g
}

func (*RadialGradient) TagName() string { return "radialGradient" }

// Stops returns the gradient stops, which may come
// from the gradient referenced by "href".
func (g *RadialGradient) Stops() []*Stop {
	g.loadStops(g)
	return g.stops
}

// Color returns the color of the first stop, scaled by opacity,
// or opaque black if there is no stop.
func (g *RadialGradient) Color(_ Node, _ svgdraw.Renderer, opacity float64, _ bool) color.NRGBA {
	return g.resolve(g, opacity)
}

// Describe returns the full gradient, to be painted for owner.
// It returns false if there is less than two stops.
// The focal point defaults to the center.
func (g *RadialGradient) Describe(owner Node) (svgdraw.Gradient, bool) {
	out, ok := g.describe(g)
	if !ok {
		return out, false
	}
	cx := g.coord(owner, "cx", Percent(50))
	cy := g.coord(owner, "cy", Percent(50))
	fx, fy := cx, cy
	if _, has := g.GetAttr("fx"); has {
		fx = g.coord(owner, "fx", Percent(50))
	}
	if _, has := g.GetAttr("fy"); has {
		fy = g.coord(owner, "fy", Percent(50))
	}
	out.Direction = svgdraw.Radial{cx, cy, fx, fy, g.coord(owner, "r", Percent(50))}
	return out, true
}

// Stop is a color step of a gradient, and
// must be a child of the gradient.
type Stop struct {
	NodeBase
}

// NewStop returns a stop with the given offset (in [0,1]),
// color and opacity.
func NewStop(offset float64, c color.Color, opacity float64) *Stop {
	s := &Stop{}
	s.SetAttr("offset", offset)
	s.SetAttr("stop-color", c)
	s.SetAttr("stop-opacity", opacity)
	return s
}

func (*Stop) TagName() string { return "stop" }

func (*Stop) Render(svgdraw.Renderer) {}

// Offset is clamped to [0, 1].
func (s *Stop) Offset() float64 { return clamp01(Attribute(s, "offset", false, 0.)) }

func (s *Stop) StopColor() PaintServer {
	return Attribute[PaintServer](s, "stop-color", false, Black)
}

func (s *Stop) StopOpacity() float64 { return clamp01(Attribute(s, "stop-opacity", false, 1.)) }

// color folds the stop opacity into the stop color.
func (s *Stop) color() color.NRGBA {
	return s.StopColor().Color(s, nil, s.StopOpacity(), false)
}
