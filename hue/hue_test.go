package hue_test

import (
	"reflect"
	"testing"

	"github.com/keep94/colorscale/colors"
	"github.com/keep94/colorscale/hue"
	"github.com/keep94/gohue"
	"github.com/keep94/maybe"
	"github.com/pkg/errors"
	asserts "github.com/stretchr/testify/assert"
)

var (
	kOne   = hue.Scale{{20.0, gohue.Green}}
	kTwo   = hue.Scale{{15.0, gohue.Red}, {20.0, gohue.Blue}}
	kThree = hue.Scale{
		{15.0, gohue.Green}, {20.0, gohue.Yellow}, {25.0, gohue.Red}}
)

func TestFromRgb(t *testing.T) {
	assertXY(t, 0.6401, 0.3300, hue.FromRgb(colors.Triple{255, 0, 0}))
	assertXY(t, 0.3000, 0.6000, hue.FromRgb(colors.Triple{0, 255, 0}))
	assertXY(t, 0.1500, 0.0600, hue.FromRgb(colors.Triple{0, 0, 255}))
	assertXY(t, 0.3127, 0.3290, hue.FromRgb(colors.Triple{255, 255, 255}))
	// Black has no chromaticity
	assertXY(t, 0.3127, 0.3290, hue.FromRgb(colors.Triple{0, 0, 0}))
	// Brightness does not change chromaticity
	dim := hue.FromRgb(colors.Triple{100, 50, 25})
	assertXY(t, dim.X(), dim.Y(), hue.FromRgb(colors.Triple{200, 100, 50}))
}

func TestFromScale(t *testing.T) {
	assert := asserts.New(t)
	actual, err := hue.FromScale(colors.Strings(
		"rgb(255, 0, 0)", "rgb(255, 255, 255)", "rgb(0, 0, 0)"))
	assert.NoError(err)
	expected := []hue.ColorBrightness{
		{
			gohue.NewMaybeColor(hue.FromRgb(colors.Triple{255, 0, 0})),
			maybe.NewUint8(128),
		},
		{
			gohue.NewMaybeColor(hue.FromRgb(colors.Triple{255, 255, 255})),
			maybe.NewUint8(255),
		},
		{
			gohue.NewMaybeColor(hue.FromRgb(colors.Triple{0, 0, 0})),
			maybe.NewUint8(0),
		},
	}
	assert.Equal(expected, actual)

	// hsl colors are converted to rgb first
	fromHsl, err := hue.FromScale(colors.Strings("hsl(0, 100%, 50%)"))
	assert.NoError(err)
	assert.Equal(expected[:1], fromHsl)

	_, err = hue.FromScale(colors.Strings("rgb(1, 2)"))
	assert.Equal(colors.ErrMalformedColor, errors.Cause(err))
}

func TestAssign(t *testing.T) {
	assert := asserts.New(t)
	lightColors, err := hue.Assign(
		colors.Strings("rgb(255, 0, 0)", "rgb(0, 0, 255)"), 3, 5)
	assert.NoError(err)
	red, err := hue.FromScale(colors.Strings("hsl(0, 100%, 50%)"))
	assert.NoError(err)
	assert.Len(lightColors, 2)
	assert.Equal(red[0], lightColors[3])
	assert.True(lightColors[5].Color.Valid)
	assert.Equal(maybe.NewUint8(128), lightColors[5].Brightness)

	lightColors, err = hue.Assign(colors.Strings("rgb(255, 0, 0)"))
	assert.NoError(err)
	assert.Empty(lightColors)

	_, err = hue.Assign(colors.Scale{42}, 1)
	assert.Equal(colors.ErrUnrecognizedFormat, errors.Cause(err))
}

func TestSpread(t *testing.T) {
	assert := asserts.New(t)
	red := hue.FromRgb(colors.Triple{255, 0, 0})
	blue := hue.FromRgb(colors.Triple{0, 0, 255})
	green := hue.FromRgb(colors.Triple{0, 255, 0})
	s, err := hue.Spread(
		colors.Strings("rgb(255, 0, 0)", "rgb(0, 255, 0)", "rgb(0, 0, 255)"),
		10.0, 30.0)
	assert.NoError(err)
	assert.Equal(hue.Scale{{10.0, red}, {20.0, green}, {30.0, blue}}, s)
	assertEqual(t, red.Blend(green, 0.5), s.Interpolate(15.0))

	s, err = hue.Spread(colors.Triples(colors.Triple{255, 0, 0}), 10.0, 30.0)
	assert.NoError(err)
	assert.Equal(hue.Scale{{10.0, red}}, s)

	_, err = hue.Spread(colors.Strings("rgb(255, 0, 0)"), 30.0, 10.0)
	assert.Equal(hue.ErrBadRange, errors.Cause(err))
	_, err = hue.Spread(colors.Scale{}, 10.0, 30.0)
	assert.Equal(colors.ErrUnrecognizedFormat, errors.Cause(err))
}

func TestEmptyScale(t *testing.T) {
	var empty hue.Scale
	assertEqual(t, gohue.Color{}, empty.Get(20.0))
	assertEqual(t, gohue.Color{}, hue.Scale{}.Interpolate(20.0))
}

func TestGetWithOne(t *testing.T) {
	assertEqual(t, gohue.Green, kOne.Get(20.0))
	assertEqual(t, gohue.Green, kOne.Get(19.0))
	assertEqual(t, gohue.Green, kOne.Get(21.0))
}

func TestGetWithTwo(t *testing.T) {
	assertEqual(t, gohue.Red, kTwo.Get(14.0))
	assertEqual(t, gohue.Red, kTwo.Get(15.0))
	assertEqual(t, gohue.Blue, kTwo.Get(16.0))
	assertEqual(t, gohue.Blue, kTwo.Get(20.0))
	assertEqual(t, gohue.Blue, kTwo.Get(21.0))
}

func TestGetWithThree(t *testing.T) {
	assertEqual(t, gohue.Green, kThree.Get(14.0))
	assertEqual(t, gohue.Green, kThree.Get(15.0))
	assertEqual(t, gohue.Yellow, kThree.Get(19.0))
	assertEqual(t, gohue.Yellow, kThree.Get(20.0))
	assertEqual(t, gohue.Red, kThree.Get(21.0))
	assertEqual(t, gohue.Red, kThree.Get(25.0))
	assertEqual(t, gohue.Red, kThree.Get(26.0))
}

func TestInterpolateWithOne(t *testing.T) {
	assertEqual(t, gohue.Green, kOne.Interpolate(20.0))
	assertEqual(t, gohue.Green, kOne.Interpolate(19.0))
	assertEqual(t, gohue.Green, kOne.Interpolate(21.0))
}

func TestInterpolateWithTwo(t *testing.T) {
	assertEqual(t, gohue.Red, kTwo.Interpolate(14.0))
	assertEqual(t, gohue.Red, kTwo.Interpolate(15.0))
	assertEqual(t, gohue.Red.Blend(gohue.Blue, 0.2), kTwo.Interpolate(16.0))
	assertEqual(t, gohue.Blue, kTwo.Interpolate(20.0))
	assertEqual(t, gohue.Blue, kTwo.Interpolate(21.0))
}

func TestInterpolateWithThree(t *testing.T) {
	assertEqual(t, gohue.Green, kThree.Interpolate(14.0))
	assertEqual(t, gohue.Green, kThree.Interpolate(15.0))
	assertEqual(
		t, gohue.Green.Blend(gohue.Yellow, 0.8), kThree.Interpolate(19.0))
	assertEqual(t, gohue.Yellow, kThree.Interpolate(20.0))
	assertEqual(
		t, gohue.Yellow.Blend(gohue.Red, 0.2), kThree.Interpolate(21.0))
	assertEqual(t, gohue.Red, kThree.Interpolate(25.0))
	assertEqual(t, gohue.Red, kThree.Interpolate(26.0))
}

func assertXY(t *testing.T, x, y float64, actual gohue.Color) {
	t.Helper()
	asserts.InDelta(t, x, actual.X(), 0.001)
	asserts.InDelta(t, y, actual.Y(), 0.001)
}

func assertEqual(t *testing.T, expected, actual gohue.Color) {
	t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		t.Errorf("Expected %v, got %v", expected, actual)
	}
}
