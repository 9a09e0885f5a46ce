package svgdraw

import (
	"image/color"

	"github.com/benoitkugler/svgshapes/svgpath"
)

var _ Renderer = (*Recorder)(nil) // assert interface conformance

// Pen describes how a recorded path is painted :
// it is either Stroke or Fill.
type Pen interface {
	isPen()
}

type Stroke struct {
	Color color.NRGBA
	Width float64
}

type Fill struct {
	Color color.NRGBA
}

func (Stroke) isPen() {}
func (Fill) isPen()   {}

// Record is one painting operation.
type Record struct {
	Transform svgpath.Matrix // the renderer transform at the time of the call
	Path      *svgpath.Path
	Pen       Pen
}

// Elements returns the matrix mapping the recorded elements to the
// space of `global`, and the elements themselves, untransformed.
// It only takes into account the top-level pending transform of the path :
// use Flatten for nested sub-paths.
func (r Record) Elements(global svgpath.Matrix) (svgpath.Matrix, []svgpath.Element) {
	return global.Mult(r.Transform).Mult(r.Path.Matrix()), r.Path.Elements()
}

// Flatten returns the recorded elements in the space of `global`.
func (r Record) Flatten(global svgpath.Matrix) []svgpath.Element {
	return r.Path.Flatten(global.Mult(r.Transform))
}

// Recorder is a Renderer storing every painting operation.
// It is mainly useful to check the geometry produced by shapes.
type Recorder struct {
	Transformer
	Records []Record
}

func (r *Recorder) record(path *svgpath.Path, pen Pen) {
	if path == nil {
		return
	}
	r.Records = append(r.Records, Record{Transform: r.Transform(), Path: path.Clone(), Pen: pen})
}

func (r *Recorder) DrawPath(path *svgpath.Path, c color.NRGBA, strokeWidth float64) {
	r.record(path, Stroke{Color: c, Width: strokeWidth})
}

func (r *Recorder) FillPath(path *svgpath.Path, c color.NRGBA) {
	r.record(path, Fill{Color: c})
}

// Elements flattens every record into the space of `global`.
func (r *Recorder) Elements(global svgpath.Matrix) []svgpath.Element {
	var out []svgpath.Element
	for _, rec := range r.Records {
		out = append(out, rec.Flatten(global)...)
	}
	return out
}

// Reset drops the records and restores the identity transform.
func (r *Recorder) Reset() {
	r.Records = r.Records[:0]
	r.Transformer = Transformer{}
}
