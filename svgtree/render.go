package svgtree

import (
	"github.com/benoitkugler/svgshapes/svgdraw"
	"github.com/benoitkugler/svgshapes/svgpath"
)

func isVisible(n Node) bool {
	v := Attribute(n, "visibility", true, "visible")
	return v != "hidden" && v != "collapse"
}

func isDisplayable(n Node) bool {
	return Attribute(n, "display", false, "inline") != "none"
}

// opacityOf returns the product of the "opacity" of n and its ancestors.
func opacityOf(n Node) float64 {
	op := 1.
	for b := n.Base(); b != nil; {
		if v, ok := b.attrs["opacity"].(float64); ok {
			op *= clamp01(v)
		}
		if b.parent == nil {
			break
		}
		b = b.parent.Base()
	}
	return op
}

// pushTransform composes local onto the current transform of r,
// returning the function restoring it.
// If local is not invertible, nothing is pushed and ok is false.
func pushTransform(r svgdraw.Renderer, local svgpath.Matrix) (pop func(), ok bool) {
	if !local.IsInvertible() {
		return func() {}, false
	}
	saved := r.Transform()
	r.SetTransform(saved.Mult(local))
	return func() { r.SetTransform(saved) }, true
}

// renderContainer renders children under the transform of n,
// composed with extra (applied first).
func renderContainer(n Node, r svgdraw.Renderer, extra svgpath.Matrix, children []Node) {
	if !isVisible(n) || !isDisplayable(n) {
		return
	}
	pop, ok := pushTransform(r, transformOf(n).Mult(extra))
	defer pop()
	if !ok {
		return
	}
	for _, c := range children {
		c.Render(r)
	}
}

func renderShape(s Shape, r svgdraw.Renderer) {
	if !isVisible(s) || !isDisplayable(s) {
		return
	}
	path := s.Path(r)
	if path == nil {
		return
	}
	pop, ok := pushTransform(r, transformOf(s))
	defer pop()
	if !ok {
		return
	}
	filled := renderFill(s, path, r)
	stroked := renderStroke(s, path, r, s.Stroke())
	if !filled && !stroked {
		renderStroke(s, path, r, Black)
	}
}

// gradientServer is implemented by the gradients.
type gradientServer interface {
	Describe(owner Node) (svgdraw.Gradient, bool)
}

// renderFill returns false if there is nothing to fill.
func renderFill(s Shape, path *svgpath.Path, r svgdraw.Renderer) bool {
	fill := resolvePaint(s, s.Fill())
	if fill == nil || fill == PaintServer(None) {
		return false
	}
	opacity := clamp01(Attribute(s, "fill-opacity", true, 1.)) * opacityOf(s)
	if g, ok := fill.(gradientServer); ok {
		if gf, ok := r.(svgdraw.GradientFiller); ok {
			if desc, ok := g.Describe(s); ok {
				gf.FillPathGradient(path, desc, opacity)
				return true
			}
		}
	}
	if c := fill.Color(s, r, opacity, false); c.A != 0 {
		r.FillPath(path, c)
	}
	return true
}

// renderStroke returns false if there is nothing to stroke.
func renderStroke(s Shape, path *svgpath.Path, r svgdraw.Renderer, stroke PaintServer) bool {
	stroke = resolvePaint(s, stroke)
	if stroke == nil || stroke == PaintServer(None) {
		return false
	}
	opacity := clamp01(Attribute(s, "stroke-opacity", true, 1.)) * opacityOf(s)
	width := StrokeWidth(s)
	if c := stroke.Color(s, r, opacity, true); c.A != 0 && width > 0 {
		r.DrawPath(path, c, width)
	}
	return true
}
