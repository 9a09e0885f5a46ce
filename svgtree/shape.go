package svgtree

import (
	"github.com/benoitkugler/svgshapes/svgdraw"
	"github.com/benoitkugler/svgshapes/svgpath"
)

// Shape is a node with geometry.
type Shape interface {
	Node
	// Path returns the geometry of the shape, in its local coordinates.
	// A nil r requests bounds geometry : point like features are
	// inflated by the stroke width so that they remain measurable.
	// The returned path is owned by the shape and must not be modified.
	Path(r svgdraw.Renderer) *svgpath.Path
	Fill() PaintServer
	Stroke() PaintServer
}

// container is implemented by the structural shapes,
// whose geometry is the aggregation of their children.
type container interface {
	Shape
	isContainer()
}

// markerElement is implemented by the nodes accepting
// the marker-start, marker-mid and marker-end attributes.
type markerElement interface {
	Node
	acceptsMarkers()
}

func asContainer(n Node) (container, bool) {
	c, ok := n.(container)
	return c, ok
}

func asPaintServer(n Node) (PaintServer, bool) {
	ps, ok := n.(PaintServer)
	return ps, ok
}

func asShape(n Node) (Shape, bool) {
	s, ok := n.(Shape)
	return s, ok
}

type cacheState uint8

const (
	dirty cacheState = iota
	clean
)

const (
	paintMode = iota
	boundsMode
)

// cacheContext gathers the inputs a shape geometry reads
// from its ancestors and its document.
type cacheContext struct {
	strokeWidth    float64
	fontSize       Unit
	viewportWidth  float64
	viewportHeight float64
}

func contextOf(n Node) cacheContext {
	opts := optionsOf(n)
	return cacheContext{
		strokeWidth:    StrokeWidth(n),
		fontSize:       Attribute(n, "font-size", true, Px(defaultFontSize)),
		viewportWidth:  opts.ViewportWidth,
		viewportHeight: opts.ViewportHeight,
	}
}

// pathCache memoizes the geometry of a shape, with
// one slot for each request mode.
// A slot only becomes clean in get, when the build returns a path,
// and dirty in invalidate or when the inherited context changes.
type pathCache struct {
	paths    [2]*svgpath.Path
	states   [2]cacheState
	contexts [2]cacheContext

	reported bool // the points error was reported since the last invalidate
}

func requestMode(r svgdraw.Renderer) int {
	if r == nil {
		return boundsMode
	}
	return paintMode
}

func (c *pathCache) get(n Node, r svgdraw.Renderer, build func() *svgpath.Path) *svgpath.Path {
	m := requestMode(r)
	ctx := contextOf(n)
	if c.states[m] == clean && c.contexts[m] == ctx {
		return c.paths[m]
	}
	c.paths[m] = build()
	if c.paths[m] == nil {
		c.states[m] = dirty
		return nil
	}
	c.states[m], c.contexts[m] = clean, ctx
	return c.paths[m]
}

func (c *pathCache) invalidate() {
	c.states = [2]cacheState{dirty, dirty}
	c.reported = false
}

// reportOnce reports err at most once between two invalidations,
// whatever the number of slots built.
func (c *pathCache) reportOnce(n Node, err error) {
	if err == nil || c.reported {
		return
	}
	c.reported = true
	report(n, err)
}

// invalidateTree drops the cached paths of n and its descendants.
func invalidateTree(n Node) {
	Walk(n, func(c Node) bool {
		c.Base().paths.invalidate()
		return true
	})
}

// Fill returns the inherited "fill" attribute, NotSet by default.
func (b *NodeBase) Fill() PaintServer {
	return attribute[PaintServer](b, "fill", true, NotSet)
}

// Stroke returns the inherited "stroke" attribute, nil by default.
func (b *NodeBase) Stroke() PaintServer {
	return attribute[PaintServer](b, "stroke", true, nil)
}

// Transforms returns the "transform" attribute.
func (b *NodeBase) Transforms() svgpath.Transforms {
	return attribute[svgpath.Transforms](b, "transform", false, nil)
}

func transformOf(n Node) svgpath.Matrix { return n.Base().Transforms().Matrix() }

// StrokeWidth returns the inherited stroke width of n, in device units.
func StrokeWidth(n Node) float64 { return device(n, "stroke-width", true, Px(1)) }
