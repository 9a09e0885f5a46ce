package svgtree

import (
	"image/color"

	"github.com/benoitkugler/svgshapes/svgdraw"
	"github.com/benoitkugler/svgshapes/svgpath"
)

// Pattern is a paint server repeating its children.
// Tiling is left to the renderers : as a color, a pattern
// is opaque black.
type Pattern struct {
	NodeBase
}

func (*Pattern) TagName() string { return "pattern" }

// Render does nothing : the content of a pattern is only
// painted through Tile.
func (*Pattern) Render(svgdraw.Renderer) {}

func (p *Pattern) Color(Node, svgdraw.Renderer, float64, bool) color.NRGBA { return opaqueBlack }

// Units returns the "patternUnits" attribute, objectBoundingBox by default.
func (p *Pattern) Units() svgdraw.GradientUnits {
	return Attribute(p, "patternUnits", false, svgdraw.ObjectBoundingBox)
}

// ContentUnits returns the "patternContentUnits" attribute, userSpaceOnUse by default.
func (p *Pattern) ContentUnits() svgdraw.GradientUnits {
	return Attribute(p, "patternContentUnits", false, svgdraw.UserSpaceOnUse)
}

// Matrix returns the "patternTransform" attribute.
func (p *Pattern) Matrix() svgpath.Matrix {
	return Attribute[svgpath.Transforms](p, "patternTransform", false, nil).Matrix()
}

// content returns the node providing the tile children,
// following "href" when p has none.
func (p *Pattern) content() Node {
	if len(p.children) != 0 {
		return p
	}
	seen := map[Node]bool{p: true}
	var n Node = p
	for {
		ref, ok := href(n).(*Pattern)
		if !ok || seen[ref] {
			return p
		}
		if len(ref.children) != 0 {
			return ref
		}
		seen[ref] = true
		n = ref
	}
}

// Tile returns the tile rectangle, in user units, for owner.
func (p *Pattern) Tile(owner Node) svgpath.Rect {
	coord := func(name string) float64 {
		u := Attribute(p, name, false, Px(0))
		switch {
		case p.Units() == svgdraw.UserSpaceOnUse:
			return toDevice(owner, u, unitAttributes[name])
		case u.Kind == UnitPercent:
			return u.Value / 100
		default:
			return u.Value
		}
	}
	x, y := coord("x"), coord("y")
	return svgpath.Rect{
		Min: svgpath.Point{X: x, Y: y},
		Max: svgpath.Point{X: x + coord("width"), Y: y + coord("height")},
	}
}

// TilePath returns the geometry of one tile : the aggregated
// content, mapped by the viewBox into the tile size.
func (p *Pattern) TilePath(r svgdraw.Renderer, owner Node) *svgpath.Path {
	content := p.content()
	out := Aggregate(content, r)
	if vb := Attribute(p, "viewBox", false, ViewBox{}); !vb.IsEmpty() {
		tile := p.Tile(owner)
		ar := Attribute(p, "preserveAspectRatio", false, DefaultAspectRatio)
		out.Transform(vb.Matrix(tile.Width(), tile.Height(), ar))
	}
	return out
}
