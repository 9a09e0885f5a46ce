package svgpath

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrParamMismatch is returned when a transform function
// has a wrong number of arguments or is badly formed.
var ErrParamMismatch = errors.New("svgpath: transform parameter mismatch")

// TransformOp is one named transform, as found in
// a SVG transform list.
type TransformOp interface {
	Matrix() Matrix
	String() string
}

type Translate struct{ X, Y float64 }

// Scale is a scaling transform. Use Scale{X: s, Y: s} for an uniform scale.
type Scale struct{ X, Y float64 }

// Rotate is a rotation of Angle degrees around (CX, CY).
type Rotate struct{ Angle, CX, CY float64 }

// Skew is a skew transform, with angles in degrees.
type Skew struct{ AngleX, AngleY float64 }

// Shear is a skew defined by its shear factors, that is
// Skew{atan(X), atan(Y)}.
type Shear struct{ X, Y float64 }

// MatrixOp is an arbitrary affine transform.
type MatrixOp Matrix

func (t Translate) Matrix() Matrix { return NewTranslate(t.X, t.Y) }

func (t Translate) String() string { return fmt.Sprintf("translate(%g, %g)", t.X, t.Y) }

func (t Scale) Matrix() Matrix { return NewScale(t.X, t.Y) }

func (t Scale) String() string {
	if t.X == t.Y {
		return fmt.Sprintf("scale(%g)", t.X)
	}
	return fmt.Sprintf("scale(%g, %g)", t.X, t.Y)
}

func (t Rotate) Matrix() Matrix {
	return NewTranslate(t.CX, t.CY).Rotate(t.Angle*math.Pi/180).Translate(-t.CX, -t.CY)
}

func (t Rotate) String() string {
	if t.CX == 0 && t.CY == 0 {
		return fmt.Sprintf("rotate(%g)", t.Angle)
	}
	return fmt.Sprintf("rotate(%g, %g, %g)", t.Angle, t.CX, t.CY)
}

func (t Skew) Matrix() Matrix { return NewSkew(t.AngleX, t.AngleY) }

func (t Skew) String() string { return fmt.Sprintf("skew(%g, %g)", t.AngleX, t.AngleY) }

func (t Shear) Matrix() Matrix {
	return Skew{AngleX: math.Atan(t.X) * 180 / math.Pi, AngleY: math.Atan(t.Y) * 180 / math.Pi}.Matrix()
}

func (t Shear) String() string { return fmt.Sprintf("shear(%g, %g)", t.X, t.Y) }

func (t MatrixOp) Matrix() Matrix { return Matrix(t) }

func (t MatrixOp) String() string { return Matrix(t).String() }

// Transforms is a transform list. The operations are composed
// in document order: in "translate(10) rotate(90)", points are
// rotated first, then translated.
type Transforms []TransformOp

// Matrix composes the list in one matrix. An empty list
// returns Identity.
func (ts Transforms) Matrix() Matrix {
	m := Identity
	for _, t := range ts {
		m = m.Mult(t.Matrix())
	}
	return m
}

func (ts Transforms) String() string {
	chunks := make([]string, len(ts))
	for i, t := range ts {
		chunks[i] = t.String()
	}
	return strings.Join(chunks, " ")
}

// SplitOnCommaOrSpace splits a list of numbers separated
// by commas and/or white spaces.
func SplitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
}

func parseNumbers(s string) ([]float64, error) {
	fields := SplitOnCommaOrSpace(s)
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func readTransformOp(name string, points []float64) (TransformOp, error) {
	ln := len(points)
	switch name {
	case "rotate":
		if ln == 1 {
			return Rotate{Angle: points[0]}, nil
		} else if ln == 3 {
			return Rotate{Angle: points[0], CX: points[1], CY: points[2]}, nil
		}
	case "translate":
		if ln == 1 {
			return Translate{X: points[0]}, nil
		} else if ln == 2 {
			return Translate{X: points[0], Y: points[1]}, nil
		}
	case "skewx":
		if ln == 1 {
			return Skew{AngleX: points[0]}, nil
		}
	case "skewy":
		if ln == 1 {
			return Skew{AngleY: points[0]}, nil
		}
	case "skew":
		if ln == 2 {
			return Skew{AngleX: points[0], AngleY: points[1]}, nil
		}
	case "shear":
		if ln == 2 {
			return Shear{X: points[0], Y: points[1]}, nil
		}
	case "scale":
		if ln == 1 {
			return Scale{X: points[0], Y: points[0]}, nil
		} else if ln == 2 {
			return Scale{X: points[0], Y: points[1]}, nil
		}
	case "matrix":
		if ln == 6 {
			return MatrixOp{
				A: points[0],
				B: points[1],
				C: points[2],
				D: points[3],
				E: points[4],
				F: points[5],
			}, nil
		}
	}
	return nil, ErrParamMismatch
}

// ParseTransforms parses a SVG transform list, such as
// "translate(10, 20) rotate(45)".
func ParseTransforms(v string) (Transforms, error) {
	var out Transforms
	for _, t := range strings.Split(v, ")") {
		t = strings.TrimSpace(strings.TrimLeft(t, ", "))
		if len(t) == 0 {
			continue
		}
		d := strings.Split(t, "(")
		if len(d) != 2 || len(d[1]) < 1 {
			return out, ErrParamMismatch // badly formed transformation
		}
		points, err := parseNumbers(d[1])
		if err != nil {
			return out, fmt.Errorf("svgpath: invalid transform argument: %w", err)
		}
		op, err := readTransformOp(strings.ToLower(strings.TrimSpace(d[0])), points)
		if err != nil {
			return out, err
		}
		out = append(out, op)
	}
	return out, nil
}
