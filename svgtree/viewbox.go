package svgtree

import (
	"fmt"
	"strings"

	"github.com/benoitkugler/svgshapes/svgpath"
)

// ViewBox is the user space rectangle mapped into a viewport.
type ViewBox struct {
	X, Y, Width, Height float64
}

// IsEmpty is true when the view box has no area,
// which disables it.
func (vb ViewBox) IsEmpty() bool { return vb.Width <= 0 || vb.Height <= 0 }

// ParseViewBox parses "min-x min-y width height".
func ParseViewBox(s string) (ViewBox, error) {
	nums, err := parseFloats(s)
	if err != nil {
		return ViewBox{}, err
	}
	if len(nums) != 4 {
		return ViewBox{}, fmt.Errorf("invalid viewBox %q: %w", s, svgpath.ErrParamMismatch)
	}
	return ViewBox{nums[0], nums[1], nums[2], nums[3]}, nil
}

// Align is the alignment part of "preserveAspectRatio".
type Align uint8

const (
	AlignXMidYMid Align = iota
	AlignNone
	AlignXMinYMin
	AlignXMidYMin
	AlignXMaxYMin
	AlignXMinYMid
	AlignXMaxYMid
	AlignXMinYMax
	AlignXMidYMax
	AlignXMaxYMax
)

var alignNames = [...]string{
	AlignXMidYMid: "xMidYMid",
	AlignNone:     "none",
	AlignXMinYMin: "xMinYMin",
	AlignXMidYMin: "xMidYMin",
	AlignXMaxYMin: "xMaxYMin",
	AlignXMinYMid: "xMinYMid",
	AlignXMaxYMid: "xMaxYMid",
	AlignXMinYMax: "xMinYMax",
	AlignXMidYMax: "xMidYMax",
	AlignXMaxYMax: "xMaxYMax",
}

func (a Align) String() string {
	if int(a) < len(alignNames) {
		return alignNames[a]
	}
	return fmt.Sprintf("<align %d>", a)
}

// factors returns the position of the content in the free space,
// between 0 and 1, on each axis.
func (a Align) factors() (fx, fy float64) {
	name := a.String()
	switch {
	case strings.HasPrefix(name, "xMin"):
		fx = 0
	case strings.HasPrefix(name, "xMax"):
		fx = 1
	default:
		fx = 0.5
	}
	switch {
	case strings.HasSuffix(name, "YMin"):
		fy = 0
	case strings.HasSuffix(name, "YMax"):
		fy = 1
	default:
		fy = 0.5
	}
	return fx, fy
}

// AspectRatio is the "preserveAspectRatio" attribute.
type AspectRatio struct {
	Align Align
	Slice bool // false for "meet"
}

// DefaultAspectRatio is "xMidYMid meet".
var DefaultAspectRatio = AspectRatio{Align: AlignXMidYMid}

func (ar AspectRatio) String() string {
	if ar.Slice {
		return ar.Align.String() + " slice"
	}
	return ar.Align.String()
}

// ParseAspectRatio parses the "preserveAspectRatio" attribute.
func ParseAspectRatio(s string) (AspectRatio, error) {
	fields := strings.Fields(s)
	if len(fields) != 0 && fields[0] == "defer" {
		fields = fields[1:]
	}
	if len(fields) == 0 || len(fields) > 2 {
		return DefaultAspectRatio, fmt.Errorf("invalid preserveAspectRatio %q", s)
	}
	var out AspectRatio
	found := false
	for a, name := range alignNames {
		if name == fields[0] {
			out.Align, found = Align(a), true
			break
		}
	}
	if !found {
		return DefaultAspectRatio, fmt.Errorf("invalid preserveAspectRatio %q", s)
	}
	if len(fields) == 2 {
		switch fields[1] {
		case "meet":
		case "slice":
			out.Slice = true
		default:
			return DefaultAspectRatio, fmt.Errorf("invalid preserveAspectRatio %q", s)
		}
	}
	return out, nil
}

// Matrix maps the view box into a viewport of size (width, height),
// positioned at the origin.
func (vb ViewBox) Matrix(width, height float64, ar AspectRatio) svgpath.Matrix {
	if vb.IsEmpty() {
		return svgpath.Identity
	}
	sx, sy := width/vb.Width, height/vb.Height
	if ar.Align == AlignNone {
		return svgpath.NewScale(sx, sy).Translate(-vb.X, -vb.Y)
	}
	s := sx
	if (ar.Slice && sy > sx) || (!ar.Slice && sy < sx) {
		s = sy
	}
	fx, fy := ar.Align.factors()
	tx := fx * (width - vb.Width*s)
	ty := fy * (height - vb.Height*s)
	return svgpath.NewTranslate(tx, ty).Scale(s, s).Translate(-vb.X, -vb.Y)
}

func parseFloats(s string) ([]float64, error) {
	fields := svgpath.SplitOnCommaOrSpace(s)
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		u, err := ParseUnit(f)
		if err != nil || u.Kind != UnitUser {
			return out, fmt.Errorf("%w: %q", ErrInvalidPoint, f)
		}
		out = append(out, u.Value)
	}
	return out, nil
}
