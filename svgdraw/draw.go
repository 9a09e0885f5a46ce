// Defines the contract between SVG shapes and
// the drivers implementing the actual draw operations,
// such as a rasterizer to output .png images or a pdf writer.
package svgdraw

import (
	"image/color"
	"math"

	"github.com/benoitkugler/svgshapes/svgpath"
)

// Renderer knows how to paint geometry, but doesn't need any SVG knowledge.
// Shapes push their transforms onto the current transform
// before sending their paths.
type Renderer interface {
	// Transform returns the current transform, mapping user space to device space.
	Transform() svgpath.Matrix
	SetTransform(m svgpath.Matrix)

	// DrawPath strokes the path.
	DrawPath(path *svgpath.Path, c color.NRGBA, strokeWidth float64)
	// FillPath fills the path.
	FillPath(path *svgpath.Path, c color.NRGBA)

	// Translate, Rotate and Scale compose onto the current transform : the
	// new operation is applied first, in the local coordinate system.
	Translate(dx, dy float64)
	Rotate(angle float64) // in degrees
	Scale(sx, sy float64)
}

// GradientFiller is implemented by renderers able to paint gradients.
// Others receive a representative solid color.
type GradientFiller interface {
	FillPathGradient(path *svgpath.Path, g Gradient, opacity float64)
}

// Transformer implements the transform register of a Renderer,
// and is meant to be embedded. Its zero value holds the identity.
type Transformer struct {
	m   svgpath.Matrix
	set bool
}

func (t *Transformer) Transform() svgpath.Matrix {
	if !t.set {
		return svgpath.Identity
	}
	return t.m
}

func (t *Transformer) SetTransform(m svgpath.Matrix) { t.m, t.set = m, true }

func (t *Transformer) Translate(dx, dy float64) { t.SetTransform(t.Transform().Translate(dx, dy)) }

func (t *Transformer) Rotate(angle float64) {
	t.SetTransform(t.Transform().Rotate(angle * math.Pi / 180))
}

func (t *Transformer) Scale(sx, sy float64) { t.SetTransform(t.Transform().Scale(sx, sy)) }
