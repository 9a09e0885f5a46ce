package svgdraw

import (
	"image/color"

	"github.com/benoitkugler/svgshapes/svgpath"
)

// GradientUnits is the type for gradient units
type GradientUnits byte

// SVG bounds paremater constants
const (
	ObjectBoundingBox GradientUnits = iota
	UserSpaceOnUse
)

func (u GradientUnits) String() string {
	switch u {
	case ObjectBoundingBox:
		return "objectBoundingBox"
	case UserSpaceOnUse:
		return "userSpaceOnUse"
	default:
		return "<unknown GradientUnits>"
	}
}

// SpreadMethod is the type for spread parameters
type SpreadMethod byte

// SVG spread parameter constants
const (
	PadSpread SpreadMethod = iota
	ReflectSpread
	RepeatSpread
)

func (s SpreadMethod) String() string {
	switch s {
	case PadSpread:
		return "pad"
	case ReflectSpread:
		return "reflect"
	case RepeatSpread:
		return "repeat"
	default:
		return "<unknown SpreadMethod>"
	}
}

// GradStop represents a stop in the SVG 2.0 gradient specification
type GradStop struct {
	StopColor color.Color
	Offset    float64
	Opacity   float64
}

// Gradient holds a resolved description of an SVG 2.0 gradient,
// with at least two stops.
type Gradient struct {
	Direction GradientDirection
	Stops     []GradStop
	Matrix    svgpath.Matrix
	Spread    SpreadMethod
	Units     GradientUnits
}

// GradientDirection is either Linear or Radial
type GradientDirection interface {
	isRadial() bool
}

// x1, y1, x2, y2
type Linear [4]float64

func (Linear) isRadial() bool { return false }

// cx, cy, fx, fy, r
type Radial [5]float64

func (Radial) isRadial() bool { return true }
