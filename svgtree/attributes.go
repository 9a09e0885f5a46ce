package svgtree

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/benoitkugler/svgshapes/svgdraw"
	"github.com/benoitkugler/svgshapes/svgpath"
)

// inheritMarker is stored for the "inherit" keyword: the
// ancestor walk skips it.
type inheritMarker struct{}

// axes of the attributes stored as Unit
var unitAttributes = map[string]Axis{
	"x": AxisHorizontal, "y": AxisVertical,
	"x1": AxisHorizontal, "y1": AxisVertical,
	"x2": AxisHorizontal, "y2": AxisVertical,
	"cx": AxisHorizontal, "cy": AxisVertical,
	"fx": AxisHorizontal, "fy": AxisVertical,
	"rx": AxisHorizontal, "ry": AxisVertical,
	"r":      AxisOther,
	"width":  AxisHorizontal,
	"height": AxisVertical,

	"stroke-width": AxisOther,
	"font-size":    AxisOther,
}

// attributes changing the geometry of a shape
var geometryAttributes = map[string]bool{
	"x": true, "y": true, "x1": true, "y1": true, "x2": true, "y2": true,
	"width": true, "height": true, "points": true, "stroke-width": true,
	"href": true, "xlink:href": true,
}

// SetAttr stores the attribute value on the node.
// Strings are parsed according to the attribute name: transforms,
// points, paints, units, fractions, viewBox and preserveAspectRatio.
// A value failing to parse is not stored, except for "points", where
// the valid prefix is kept so that the shape may draw a partial contour.
// Changing a geometry attribute invalidates the cached paths of the node.
func (b *NodeBase) SetAttr(name string, value any) error {
	v, err := normalizeAttr(name, value)
	if err != nil {
		if _, isPoints := v.(Points); !isPoints {
			return fmt.Errorf("attribute %s: %w", name, err)
		}
	}
	old, has := b.attrs[name]
	if b.attrs == nil {
		b.attrs = make(map[string]any)
	}
	b.attrs[name] = v
	if geometryAttributes[name] && !(has && sameValue(old, v)) {
		b.paths.invalidate()
	}
	if err != nil {
		return fmt.Errorf("attribute %s: %w", name, err)
	}
	return nil
}

// DelAttr removes the attribute from the node.
func (b *NodeBase) DelAttr(name string) {
	if _, has := b.attrs[name]; !has {
		return
	}
	delete(b.attrs, name)
	if geometryAttributes[name] {
		b.paths.invalidate()
	}
}

func sameValue(a, b any) bool {
	switch a.(type) {
	case string, float64, bool, Unit, Solid, inheritMarker, ViewBox, AspectRatio,
		svgdraw.GradientUnits, svgdraw.SpreadMethod:
		return a == b
	}
	return false
}

func normalizeAttr(name string, value any) (any, error) {
	s, isString := value.(string)
	if isString {
		s = strings.TrimSpace(s)
		if s == "inherit" {
			if isPaintAttribute(name) {
				return Inherit, nil
			}
			return inheritMarker{}, nil
		}
	}
	switch name {
	case "transform", "gradientTransform", "patternTransform":
		switch v := value.(type) {
		case string:
			return svgpath.ParseTransforms(v)
		case svgpath.Matrix:
			return svgpath.Transforms{svgpath.MatrixOp(v)}, nil
		case svgpath.TransformOp:
			return svgpath.Transforms{v}, nil
		}
	case "points":
		switch v := value.(type) {
		case string:
			return ParsePoints(v)
		case []float64:
			coords := make([]Unit, len(v))
			for i, f := range v {
				coords[i] = Px(f)
			}
			return Points{Coords: coords}, nil
		}
	case "fill", "stroke", "stop-color":
		switch v := value.(type) {
		case string:
			return ParsePaint(v)
		case color.Color:
			return NewSolid(v), nil
		}
	case "opacity", "fill-opacity", "stroke-opacity", "stop-opacity", "offset":
		switch v := value.(type) {
		case string:
			return readFraction(v)
		case int:
			return float64(v), nil
		}
	case "viewBox":
		if isString {
			return ParseViewBox(s)
		}
	case "preserveAspectRatio":
		if isString {
			return ParseAspectRatio(s)
		}
	case "gradientUnits", "patternUnits", "patternContentUnits":
		if isString {
			return parseGradientUnits(s)
		}
	case "spreadMethod":
		if isString {
			return parseSpreadMethod(s)
		}
	}
	if _, isUnit := unitAttributes[name]; isUnit {
		switch v := value.(type) {
		case string:
			return ParseUnit(v)
		case float64:
			return Px(v), nil
		case int:
			return Px(float64(v)), nil
		}
	}
	return value, nil
}

func isInherit(v any) bool {
	switch v := v.(type) {
	case inheritMarker:
		return true
	case Solid:
		return v == Inherit
	}
	return false
}

func isPaintAttribute(name string) bool {
	return name == "fill" || name == "stroke" || name == "stop-color"
}

// readFraction accepts a number or a percentage.
func readFraction(v string) (float64, error) {
	v = strings.TrimSpace(v)
	d := 1.0
	if strings.HasSuffix(v, "%") {
		d = 100
		v = strings.TrimSuffix(v, "%")
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	return f / d, nil
}

func parseGradientUnits(s string) (svgdraw.GradientUnits, error) {
	switch s {
	case "objectBoundingBox":
		return svgdraw.ObjectBoundingBox, nil
	case "userSpaceOnUse":
		return svgdraw.UserSpaceOnUse, nil
	}
	return 0, fmt.Errorf("unsupported units %q", s)
}

func parseSpreadMethod(s string) (svgdraw.SpreadMethod, error) {
	switch s {
	case "pad":
		return svgdraw.PadSpread, nil
	case "reflect":
		return svgdraw.ReflectSpread, nil
	case "repeat":
		return svgdraw.RepeatSpread, nil
	}
	return 0, fmt.Errorf("unsupported spread method %q", s)
}

// attribute walks up from b until a value of type T is found.
// When inherited is false, only b itself is inspected.
// Values not of type T (such as the inherit keyword) are skipped.
func attribute[T any](b *NodeBase, name string, inherited bool, def T) T {
	for b != nil {
		v, has := b.attrs[name]
		skip := has && isInherit(v)
		if has && !skip {
			if t, ok := v.(T); ok {
				return t
			}
		}
		if !inherited && !skip {
			break
		}
		if b.parent == nil {
			break
		}
		b = b.parent.Base()
	}
	return def
}

// Attribute returns the value of the attribute name for n,
// looking up the ancestors if inherited is true, or if the
// node uses the inherit keyword. def is returned if no value
// with type T is found.
func Attribute[T any](n Node, name string, inherited bool, def T) T {
	return attribute(n.Base(), name, inherited, def)
}

// device converts the unit attribute to device coordinates
func device(n Node, name string, inherited bool, def Unit) float64 {
	u := Attribute(n, name, inherited, def)
	return toDevice(n, u, unitAttributes[name])
}
