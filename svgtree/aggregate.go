package svgtree

import (
	"github.com/benoitkugler/svgshapes/svgdraw"
	"github.com/benoitkugler/svgshapes/svgpath"
)

// Aggregate returns the geometry of the children of n, in the
// coordinates of n : each child path is nested as a sub-path,
// carrying the child transform. Structural children are aggregated
// recursively, paint servers are skipped and empty geometries are
// discarded. The returned path is always freshly built.
func Aggregate(n Node, r svgdraw.Renderer) *svgpath.Path {
	return aggregate(n, r, false)
}

// AggregateBounds is the bounds mode variant of Aggregate, which
// also skips symbols : they only contribute through Use.
func AggregateBounds(n Node) *svgpath.Path {
	return aggregate(n, nil, true)
}

func aggregate(n Node, r svgdraw.Renderer, skipSymbols bool) *svgpath.Path {
	out := svgpath.NewPath()
	for _, child := range n.Base().children {
		if _, isPaint := asPaintServer(child); isPaint {
			continue
		}
		if _, isSymbol := child.(*Symbol); isSymbol && skipSymbols {
			continue
		}
		var sub *svgpath.Path
		if c, ok := asContainer(child); ok {
			sub = aggregate(c, r, skipSymbols)
		} else if s, ok := asShape(child); ok {
			// the cached path must not be modified
			sub = s.Path(r).Clone()
			if len(s.Base().children) != 0 {
				sub.AddPath(aggregate(s, r, skipSymbols))
			}
		} else {
			continue
		}
		if sub.IsEmpty() {
			continue
		}
		sub.Transform(transformOf(child))
		out.AddPath(sub)
	}
	return out
}

// Bounds returns the bounding box of n and its children, in the
// coordinates of n (that is, without its own transform), using the
// bounds geometry. It returns false if there is no geometry.
func Bounds(n Node) (svgpath.Rect, bool) {
	var path *svgpath.Path
	if c, ok := asContainer(n); ok {
		path = AggregateBounds(c)
	} else if s, ok := asShape(n); ok {
		path = s.Path(nil).Clone()
		path.AddPath(AggregateBounds(s))
	} else {
		return svgpath.Rect{}, false
	}
	return path.Bounds(svgpath.Identity)
}
