package svgpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPoint(t *testing.T, expected, got Point) {
	t.Helper()
	assert.InDelta(t, expected.X, got.X, 1e-9)
	assert.InDelta(t, expected.Y, got.Y, 1e-9)
}

func TestCompositionOrder(t *testing.T) {
	rotate, translate := NewRotate(90), NewTranslate(10, 0)

	p := Point{1, 0}
	rotateFirst := rotate.Then(translate).Apply(p)
	translateFirst := translate.Then(rotate).Apply(p)
	assertPoint(t, Point{10, 1}, rotateFirst)
	assertPoint(t, Point{0, 11}, translateFirst)
	assert.NotEqual(t, rotate.Then(translate), translate.Then(rotate))

	// Mult is the reverse of Then
	assertPoint(t, rotateFirst, translate.Mult(rotate).Apply(p))
}

func TestIdentity(t *testing.T) {
	assert.True(t, Identity.IsIdentity())
	assert.True(t, Identity.IsInvertible())
	m := NewTranslate(3, 4).Scale(2, 2)
	assert.Equal(t, m, m.Mult(Identity))
	assert.Equal(t, m, Identity.Mult(m))
	assert.False(t, NewScale(0, 1).IsInvertible())

	inv := m.Invert()
	assertPoint(t, Point{5, 7}, m.Apply(inv.Apply(Point{5, 7})))
}

func TestTransformOps(t *testing.T) {
	for _, test := range []struct {
		op       TransformOp
		in, want Point
	}{
		{Translate{X: 10}, Point{1, 1}, Point{11, 1}},
		{Scale{X: 2, Y: 3}, Point{1, 1}, Point{2, 3}},
		{Rotate{Angle: 90}, Point{1, 0}, Point{0, 1}},
		{Rotate{Angle: 90, CX: 5, CY: 5}, Point{10, 5}, Point{5, 10}},
		{Skew{AngleX: 45}, Point{0, 1}, Point{1, 1}},
		{Skew{AngleY: 45}, Point{1, 0}, Point{1, 1}},
		{Shear{X: 0.5}, Point{0, 2}, Point{1, 2}},
		{MatrixOp{A: 1, D: 1, E: 4, F: 5}, Point{1, 1}, Point{5, 6}},
	} {
		assertPoint(t, test.want, test.op.Matrix().Apply(test.in))
	}
}

func TestTransformsMatrix(t *testing.T) {
	ts := Transforms{Translate{X: 10}, Rotate{Angle: 90}}
	// rotation first, then translation
	assertPoint(t, Point{10, 1}, ts.Matrix().Apply(Point{1, 0}))

	assert.Equal(t, Identity, Transforms(nil).Matrix())
	assert.Equal(t, "translate(10, 0) rotate(90)", ts.String())
	assert.Equal(t, "rotate(30, 1, 2) scale(2) shear(1, 0)", Transforms{Rotate{30, 1, 2}, Scale{2, 2}, Shear{1, 0}}.String())
}

func TestParseTransforms(t *testing.T) {
	ts, err := ParseTransforms("translate(10,20) scale(2)")
	require.NoError(t, err)
	assert.Equal(t, Transforms{Translate{10, 20}, Scale{2, 2}}, ts)
	assertPoint(t, Point{12, 22}, ts.Matrix().Apply(Point{1, 1}))

	ts, err = ParseTransforms("matrix(1 0 0 1 5 6), skewX(45) rotate(90 1 1)")
	require.NoError(t, err)
	assert.Equal(t, Transforms{MatrixOp{A: 1, D: 1, E: 5, F: 6}, Skew{AngleX: 45}, Rotate{90, 1, 1}}, ts)

	for _, bad := range []string{"rotate(1,2)", "foo", "scale()", "translate(1 2 3)"} {
		_, err = ParseTransforms(bad)
		assert.ErrorIs(t, err, ErrParamMismatch, bad)
	}
	_, err = ParseTransforms("translate(a)")
	assert.Error(t, err)
}

func TestSplitOnCommaOrSpace(t *testing.T) {
	for input, expected := range map[string][]string{
		"1,2 3":        {"1", "2", "3"},
		" 1 ,\t2\n,3 ": {"1", "2", "3"},
		"-1.5e2,,4":    {"-1.5e2", "4"},
		"":             {},
	} {
		got := SplitOnCommaOrSpace(input)
		assert.Len(t, got, len(expected), input)
		for i := range expected {
			assert.Equal(t, expected[i], got[i], input)
		}
	}
}
