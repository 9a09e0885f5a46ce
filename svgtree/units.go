package svgtree

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// UnitKind is the suffix of a length.
type UnitKind uint8

const (
	UnitUser UnitKind = iota // no suffix, user space
	UnitPx
	UnitPt
	UnitPc
	UnitMm
	UnitCm
	UnitIn
	UnitEm
	UnitEx
	UnitPercent
)

var unitSuffixes = [...]string{
	UnitUser:    "",
	UnitPx:      "px",
	UnitPt:      "pt",
	UnitPc:      "pc",
	UnitMm:      "mm",
	UnitCm:      "cm",
	UnitIn:      "in",
	UnitEm:      "em",
	UnitEx:      "ex",
	UnitPercent: "%",
}

func (k UnitKind) String() string {
	if int(k) < len(unitSuffixes) {
		return unitSuffixes[k]
	}
	return fmt.Sprintf("<unit %d>", k)
}

// Unit is a length with its unit.
type Unit struct {
	Value float64
	Kind  UnitKind
}

// Px returns a length in user space.
func Px(v float64) Unit { return Unit{Value: v} }

// Percent returns a length relative to the viewport.
func Percent(v float64) Unit { return Unit{Value: v, Kind: UnitPercent} }

func (u Unit) String() string {
	return strconv.FormatFloat(u.Value, 'g', -1, 64) + u.Kind.String()
}

// ParseUnit parses a length such as "12", "1.5em" or "50%".
func ParseUnit(s string) (Unit, error) {
	s = strings.TrimSpace(s)
	kind := UnitUser
	lower := strings.ToLower(s)
	for k := UnitPercent; k > UnitUser; k-- {
		if strings.HasSuffix(lower, unitSuffixes[k]) {
			kind = k
			s = s[:len(s)-len(unitSuffixes[k])]
			break
		}
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return Unit{}, fmt.Errorf("%w: %q", ErrInvalidUnit, s)
	}
	return Unit{Value: v, Kind: kind}, nil
}

// Axis orients the percentage lengths.
type Axis uint8

const (
	// AxisOther uses the normalized diagonal of the viewport,
	// for radius or stroke widths.
	AxisOther Axis = iota
	AxisHorizontal
	AxisVertical
)

// UnitConverter maps lengths to device values.
type UnitConverter interface {
	// ToDevice converts u, using owner to resolve the relative units.
	// owner may be nil.
	ToDevice(u Unit, axis Axis, owner Node) float64
}

const (
	defaultDPI      = 96
	defaultFontSize = 16
)

// DefaultUnits converts lengths with a fixed resolution.
// Percentages are relative to the document viewport and
// font relative units use the inherited "font-size".
type DefaultUnits struct {
	DPI float64 // 96 if zero
}

func (d DefaultUnits) ToDevice(u Unit, axis Axis, owner Node) float64 {
	dpi := d.DPI
	if dpi <= 0 {
		dpi = defaultDPI
	}
	switch u.Kind {
	case UnitPt:
		return u.Value * dpi / 72
	case UnitPc:
		return u.Value * dpi / 6
	case UnitMm:
		return u.Value * dpi / 25.4
	case UnitCm:
		return u.Value * dpi / 2.54
	case UnitIn:
		return u.Value * dpi
	case UnitEm:
		return u.Value * d.fontSize(owner)
	case UnitEx:
		return u.Value * d.fontSize(owner) / 2
	case UnitPercent:
		opts := optionsOf(owner)
		w, h := opts.ViewportWidth, opts.ViewportHeight
		switch axis {
		case AxisHorizontal:
			return u.Value / 100 * w
		case AxisVertical:
			return u.Value / 100 * h
		default:
			return u.Value / 100 * math.Sqrt(w*w+h*h) / math.Sqrt2
		}
	default:
		return u.Value
	}
}

func (d DefaultUnits) fontSize(owner Node) float64 {
	if owner == nil {
		return defaultFontSize
	}
	size := Attribute(owner, "font-size", true, Px(defaultFontSize))
	switch size.Kind {
	case UnitEm:
		return size.Value * defaultFontSize
	case UnitEx:
		return size.Value * defaultFontSize / 2
	case UnitPercent:
		return size.Value / 100 * defaultFontSize
	}
	return d.ToDevice(size, AxisOther, nil)
}

func toDevice(n Node, u Unit, axis Axis) float64 {
	return optionsOf(n).units().ToDevice(u, axis, n)
}
