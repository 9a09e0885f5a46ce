// Implements a raster backend to render SVG shapes,
// by wrapping rasterx.
package svgraster

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/benoitkugler/svgshapes/svgdraw"
	"github.com/benoitkugler/svgshapes/svgpath"
	"github.com/benoitkugler/svgshapes/svgtree"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// assert interface conformance
var (
	_ svgdraw.Renderer       = (*Renderer)(nil)
	_ svgdraw.GradientFiller = (*Renderer)(nil)
)

// Renderer paints paths on a rasterx.Scanner.
type Renderer struct {
	svgdraw.Transformer

	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
}

// NewRenderer returns a renderer with default values.
// Paths are filled with the non-zero winding rule.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	rd := &Renderer{dasher: rasterx.NewDasher(width, height, scanner), filler: rasterx.NewFiller(width, height, scanner)}
	rd.filler.SetWinding(true)
	return rd
}

// Rasterize uses a ScannerGV instance to render the
// tree rooted at `root` into a new image of size width x height.
func Rasterize(root svgtree.Node, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	RenderTo(img, root)
	return img
}

// RenderTo renders the tree rooted at `root` onto `img`, which is not cleared.
func RenderTo(img draw.Image, root svgtree.Node) {
	b := img.Bounds()
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), img, b)
	root.Render(NewRenderer(b.Dx(), b.Dy(), scanner))
}

func (rd *Renderer) FillPath(path *svgpath.Path, c color.NRGBA) {
	if path.IsEmpty() {
		return
	}
	rd.filler.Clear()
	path.AddTo(rd.filler, rd.Transform())
	rd.filler.SetColor(c)
	rd.filler.Draw()
}

// DrawPath strokes with butt caps and bevel joins. The width
// is scaled by the current transform.
func (rd *Renderer) DrawPath(path *svgpath.Path, c color.NRGBA, strokeWidth float64) {
	if path.IsEmpty() {
		return
	}
	width := strokeWidth * rd.Transform().LengthScale()
	rd.dasher.Clear()
	rd.dasher.SetStroke(fixed.Int26_6(width*64), 4*64, rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Bevel, nil, 0)
	path.AddTo(rd.dasher, rd.Transform())
	rd.dasher.SetColor(c)
	rd.dasher.Draw()
}

func (rd *Renderer) FillPathGradient(path *svgpath.Path, g svgdraw.Gradient, opacity float64) {
	if path.IsEmpty() {
		return
	}
	rd.filler.Clear()
	path.AddTo(rd.filler, rd.Transform())
	grad := toRasterxGradient(g, rd.Transform())
	if g.Units == svgdraw.ObjectBoundingBox {
		// the extent is in device space
		fRect := rd.filler.GetPathExtent()
		mnx, mny := float64(fRect.Min.X)/64, float64(fRect.Min.Y)/64
		mxx, mxy := float64(fRect.Max.X)/64, float64(fRect.Max.Y)/64
		grad.Bounds.X, grad.Bounds.Y = mnx, mny
		grad.Bounds.W, grad.Bounds.H = mxx-mnx, mxy-mny
	}
	rd.filler.SetColor(grad.GetColorFunction(opacity))
	rd.filler.Draw()
}

// toRasterxGradient maps user space coordinates by `m`, unless
// the gradient is expressed in bounding box fractions.
func toRasterxGradient(grad svgdraw.Gradient, m svgpath.Matrix) rasterx.Gradient {
	var (
		points   [5]float64
		isRadial bool
	)
	switch dir := grad.Direction.(type) {
	case svgdraw.Linear:
		points[0], points[1], points[2], points[3] = dir[0], dir[1], dir[2], dir[3]
	case svgdraw.Radial:
		points = dir
		isRadial = true
	}
	matrix := grad.Matrix
	if grad.Units == svgdraw.UserSpaceOnUse {
		matrix = m.Mult(matrix)
	}
	stops := make([]rasterx.GradStop, len(grad.Stops))
	for i, s := range grad.Stops {
		stops[i] = rasterx.GradStop{StopColor: s.StopColor, Offset: s.Offset, Opacity: s.Opacity}
	}
	return rasterx.Gradient{
		Points:   points,
		Stops:    stops,
		Matrix:   rasterx.Matrix2D(matrix),
		Spread:   rasterx.SpreadMethod(grad.Spread),
		Units:    rasterx.GradientUnits(grad.Units),
		IsRadial: isRadial,
	}
}
