package svgtree

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/benoitkugler/svgshapes/svgdraw"
	"golang.org/x/image/colornames"
)

// PaintServer resolves a fill or stroke paint to a color.
type PaintServer interface {
	// Color returns the color used to paint owner.
	// r is nil when no renderer is active.
	Color(owner Node, r svgdraw.Renderer, opacity float64, forStroke bool) color.NRGBA
}

type solidKind uint8

const (
	solidColor solidKind = iota
	solidNone
	solidNotSet
	solidInherit
)

// Solid is a plain color, or one of the None, NotSet
// and Inherit special values.
type Solid struct {
	kind solidKind
	c    color.NRGBA
}

var (
	// None paints nothing.
	None = Solid{kind: solidNone}
	// NotSet is the value of an absent paint: transparent
	// for strokes and black for fills.
	NotSet = Solid{kind: solidNotSet}
	// Inherit takes the paint of the closest ancestor.
	Inherit = Solid{kind: solidInherit}

	Black = NewSolid(color.Black)
)

var opaqueBlack = color.NRGBA{A: 0xff}

func NewSolid(c color.Color) Solid {
	return Solid{c: color.NRGBAModel.Convert(c).(color.NRGBA)}
}

// NRGBA returns the stored color, or false for the special values.
func (s Solid) NRGBA() (color.NRGBA, bool) { return s.c, s.kind == solidColor }

func (s Solid) Color(_ Node, _ svgdraw.Renderer, opacity float64, forStroke bool) color.NRGBA {
	switch s.kind {
	case solidNone:
		return color.NRGBA{}
	case solidNotSet, solidInherit:
		if forStroke {
			return color.NRGBA{}
		}
		return withOpacity(opaqueBlack, opacity)
	default:
		return withOpacity(s.c, opacity)
	}
}

func (s Solid) String() string {
	switch s.kind {
	case solidNone:
		return "none"
	case solidNotSet:
		return "<not set>"
	case solidInherit:
		return "inherit"
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%d)", s.c.R, s.c.G, s.c.B, s.c.A)
}

// withOpacity scales the alpha channel by opacity, clamped to [0,1].
func withOpacity(c color.NRGBA, opacity float64) color.NRGBA {
	opacity = clamp01(opacity)
	c.A = uint8(math.Round(opacity * float64(c.A) / 255 * 255))
	return c
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	} else if f > 1 {
		return 1
	}
	return f
}

// Deferred references a paint server by id, which is
// resolved when painting.
type Deferred struct {
	ID string
	// Fallback is used when ID is not found. It may be nil.
	Fallback PaintServer
}

// Resolve looks up the paint server in the tree of owner.
func (d Deferred) Resolve(owner Node) PaintServer {
	if ps, ok := lookupID(owner, d.ID).(PaintServer); ok {
		return ps
	}
	if d.Fallback != nil {
		return d.Fallback
	}
	return NotSet
}

func (d Deferred) Color(owner Node, r svgdraw.Renderer, opacity float64, forStroke bool) color.NRGBA {
	ps := d.Resolve(owner)
	if _, isDeferred := ps.(Deferred); isDeferred {
		return NotSet.Color(owner, r, opacity, forStroke)
	}
	return ps.Color(owner, r, opacity, forStroke)
}

func (d Deferred) String() string {
	if d.Fallback != nil {
		return fmt.Sprintf("url(#%s) %v", d.ID, d.Fallback)
	}
	return fmt.Sprintf("url(#%s)", d.ID)
}

// resolvePaint follows deferred references.
func resolvePaint(owner Node, ps PaintServer) PaintServer {
	if d, ok := ps.(Deferred); ok {
		return d.Resolve(owner)
	}
	return ps
}

// ParsePaint parses a fill or stroke value : "none", "inherit",
// "currentColor", a color, or an url reference with an optional
// fallback, such as "url(#grad) red".
func ParsePaint(s string) (PaintServer, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "none":
		return None, nil
	case "inherit":
		return Inherit, nil
	case "currentcolor", "":
		return NotSet, nil
	}
	if strings.HasPrefix(s, "url(") {
		end := strings.IndexByte(s, ')')
		if end == -1 {
			return NotSet, fmt.Errorf("%w: %q", ErrInvalidPaint, s)
		}
		d := Deferred{ID: parseIRI(s[:end+1])}
		if rest := strings.TrimSpace(s[end+1:]); rest != "" {
			fallback, err := ParsePaint(rest)
			if err != nil {
				return d, err
			}
			d.Fallback = fallback
		}
		return d, nil
	}
	c, err := parseColor(s)
	if err != nil {
		return NotSet, err
	}
	return Solid{c: c}, nil
}

// parseColor accepts the SVG 1.1 color names,
// #rgb, #rrggbb and rgb(r, g, b) forms.
func parseColor(s string) (color.NRGBA, error) {
	v := strings.ToLower(s)
	if cn, ok := colornames.Map[v]; ok {
		return color.NRGBA{R: cn.R, G: cn.G, B: cn.B, A: cn.A}, nil
	}
	if cs := strings.TrimPrefix(v, "rgb("); cs != v {
		cs = strings.TrimSuffix(cs, ")")
		vals := strings.Split(cs, ",")
		if len(vals) != 3 {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidPaint, s)
		}
		var cvals [3]uint8
		for i := range cvals {
			var err error
			cvals[i], err = parseColorValue(vals[i])
			if err != nil {
				return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidPaint, s)
			}
		}
		return color.NRGBA{R: cvals[0], G: cvals[1], B: cvals[2], A: 0xff}, nil
	}
	if strings.HasPrefix(v, "#") {
		hex := v[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidPaint, s)
		}
		t, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidPaint, s)
		}
		return color.NRGBA{R: uint8(t >> 16), G: uint8(t >> 8), B: uint8(t), A: 0xff}, nil
	}
	return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidPaint, s)
}

// parseColorValue accepts an integer or a percentage,
// clamped to [0, 255].
func parseColorValue(v string) (uint8, error) {
	v = strings.TrimSpace(v)
	if strings.HasSuffix(v, "%") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64)
		if err != nil {
			return 0, err
		}
		return uint8(math.Round(clamp01(f/100) * 255)), nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	return uint8(math.Max(0, math.Min(255, math.Round(f)))), nil
}
