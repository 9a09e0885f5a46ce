// Implements a PDF backend to render SVG shapes,
// by wrapping github.com/jung-kurt/gofpdf.
package svgpdf

import (
	"image/color"
	"io"

	"github.com/benoitkugler/svgshapes/svgdraw"
	"github.com/benoitkugler/svgshapes/svgpath"
	"github.com/benoitkugler/svgshapes/svgtree"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/math/fixed"
)

var _ svgdraw.Renderer = (*Renderer)(nil) // assert interface conformance

// Renderer writes paths on the current page of a PDF document.
// Gradients are not supported : they are painted with their
// representative color.
type Renderer struct {
	svgdraw.Transformer
	pdf *gofpdf.Fpdf
}

// NewRenderer return a renderer which will
// write to the given `pdf`, whose unit should be the point.
func NewRenderer(pdf *gofpdf.Fpdf) *Renderer {
	return &Renderer{pdf: pdf}
}

// RenderToPDF renders the tree rooted at `root` on a one page
// document of size width x height (in points), and writes it to `w`.
func RenderToPDF(root svgtree.Node, w io.Writer, width, height float64) error {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.AddPage()
	root.Render(NewRenderer(pdf))
	return pdf.Output(w)
}

// pather implements rasterx.Adder by emitting PDF path operators.
type pather struct {
	pdf *gofpdf.Fpdf
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func (p pather) Start(a fixed.Point26_6) {
	p.pdf.MoveTo(fixedTof(a))
}

func (p pather) Line(b fixed.Point26_6) {
	p.pdf.LineTo(fixedTof(b))
}

func (p pather) QuadBezier(b fixed.Point26_6, c fixed.Point26_6) {
	cx, cy := fixedTof(b)
	x, y := fixedTof(c)
	p.pdf.CurveTo(cx, cy, x, y)
}

func (p pather) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {
	cx0, cy0 := fixedTof(b)
	cx1, cy1 := fixedTof(c)
	x, y := fixedTof(d)
	p.pdf.CurveBezierCubicTo(cx0, cy0, cx1, cy1, x, y)
}

func (p pather) Stop(closeLoop bool) {
	if closeLoop {
		p.pdf.ClosePath()
	}
}

func (rd *Renderer) setAlpha(c color.NRGBA) {
	rd.pdf.SetAlpha(float64(c.A)/255, "Normal")
}

// FillPath uses the non-zero winding rule.
func (rd *Renderer) FillPath(path *svgpath.Path, c color.NRGBA) {
	if path.IsEmpty() {
		return
	}
	rd.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	rd.setAlpha(c)
	path.AddTo(pather{pdf: rd.pdf}, rd.Transform())
	rd.pdf.DrawPath("f")
}

func (rd *Renderer) DrawPath(path *svgpath.Path, c color.NRGBA, strokeWidth float64) {
	if path.IsEmpty() {
		return
	}
	rd.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
	rd.setAlpha(c)
	rd.pdf.SetLineWidth(strokeWidth * rd.Transform().LengthScale())
	path.AddTo(pather{pdf: rd.pdf}, rd.Transform())
	rd.pdf.DrawPath("D")
}
