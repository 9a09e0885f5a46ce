package svgraster

import (
	"image"
	"image/color"
	"testing"

	"github.com/benoitkugler/svgshapes/svgdraw"
	"github.com/benoitkugler/svgshapes/svgpath"
	"github.com/benoitkugler/svgshapes/svgtree"
	"github.com/srwiley/rasterx"
	"github.com/stretchr/testify/assert"
)

var red = color.NRGBA{R: 255, A: 255}

func square(t *testing.T) *svgtree.Polygon {
	p := svgtree.NewPolygon(10, 10, 40, 10, 40, 40, 10, 40)
	assert.NoError(t, p.SetAttr("fill", red))
	return p
}

func TestRasterizePolygon(t *testing.T) {
	doc := svgtree.NewDocument(svgtree.DefaultOptions, square(t))
	img := Rasterize(doc, 50, 50)

	r, _, _, a := img.At(25, 25).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), a)

	_, _, _, a = img.At(5, 5).RGBA()
	assert.Zero(t, a)
}

func TestRasterizeTransformed(t *testing.T) {
	p := square(t)
	assert.NoError(t, p.SetAttr("transform", "translate(50, 0)"))
	doc := svgtree.NewDocument(svgtree.DefaultOptions, p)
	img := Rasterize(doc, 100, 50)

	_, _, _, a := img.At(25, 25).RGBA()
	assert.Zero(t, a)
	_, _, _, a = img.At(75, 25).RGBA()
	assert.Equal(t, uint32(0xffff), a)
}

func TestStrokeLine(t *testing.T) {
	l := svgtree.NewLine(0, 20, 50, 20)
	assert.NoError(t, l.SetAttr("stroke", red))
	assert.NoError(t, l.SetAttr("stroke-width", 6.))
	img := Rasterize(svgtree.NewDocument(svgtree.DefaultOptions, l), 50, 50)

	_, _, _, a := img.At(25, 20).RGBA()
	assert.NotZero(t, a)
	_, _, _, a = img.At(25, 30).RGBA()
	assert.Zero(t, a)
}

func TestEmptyPath(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	rd := NewRenderer(10, 10, rasterx.NewScannerGV(10, 10, img, img.Bounds()))
	rd.FillPath(svgpath.NewPath(), red)
	rd.DrawPath(nil, red, 1)
	for _, b := range img.Pix {
		assert.Zero(t, b)
	}
}

func TestRenderViewBox(t *testing.T) {
	doc := svgtree.NewDocument(svgtree.DefaultOptions, square(t))
	assert.NoError(t, doc.SetAttr("viewBox", "0 0 50 50"))
	assert.NoError(t, doc.SetAttr("width", 100.))
	assert.NoError(t, doc.SetAttr("height", 100.))
	img := Rasterize(doc, 100, 100)

	_, _, _, a := img.At(70, 70).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	_, _, _, a = img.At(90, 90).RGBA()
	assert.Zero(t, a)
}

func TestGradient(t *testing.T) {
	g := svgdraw.Gradient{
		Direction: svgdraw.Linear{0, 0, 1, 0},
		Stops: []svgdraw.GradStop{
			{StopColor: color.Black, Offset: 0, Opacity: 1},
			{StopColor: color.White, Offset: 1, Opacity: 1},
		},
		Matrix: svgpath.Identity,
	}
	rg := toRasterxGradient(g, svgpath.NewScale(2, 2))
	assert.False(t, rg.IsRadial)
	assert.Equal(t, 1., rg.Points[2])
	// bounding box gradients are not mapped
	assert.Equal(t, 1., rg.Matrix.A)

	g.Units = svgdraw.UserSpaceOnUse
	g.Direction = svgdraw.Radial{5, 5, 5, 5, 3}
	rg = toRasterxGradient(g, svgpath.NewScale(2, 2))
	assert.True(t, rg.IsRadial)
	assert.Equal(t, 3., rg.Points[4])
	assert.Equal(t, 2., rg.Matrix.A)
}
