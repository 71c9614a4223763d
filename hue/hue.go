// Package hue converts color scales to colors that Philips Hue lights
// understand.
package hue

import (
	"math"

	"github.com/keep94/colorscale/colors"
	"github.com/keep94/colorscale/scale"
	"github.com/keep94/gohue"
	"github.com/keep94/maybe"
	"github.com/pkg/errors"
)

var (
	// Reported when Spread gets a range whose upper bound is less than
	// its lower bound.
	ErrBadRange = errors.New("hue: Bad range.")
)

var (
	// The D65 white point. Black has no chromaticity so it maps here.
	kWhitePoint = gohue.NewColor(0.3127, 0.3290)
)

// ColorBrightness represents a color and brightness for a light.
type ColorBrightness struct {
	Color      gohue.MaybeColor
	Brightness maybe.Uint8
}

// LightColors maps light id to the color and brightness for that light.
// These instances must be treated as immutable.
type LightColors map[int]ColorBrightness

// Assign resamples s to one color per light and returns the color and
// brightness for each light. The first light gets the first color of s.
func Assign(s colors.Scale, lightIds ...int) (LightColors, error) {
	hsl, err := scale.Interpolate(s, len(lightIds))
	if err != nil {
		return nil, err
	}
	result := make(LightColors, len(lightIds))
	if len(hsl) == 0 {
		return result, nil
	}
	cbs, err := FromScale(colors.Strings(hsl...))
	if err != nil {
		return nil, err
	}
	for i, id := range lightIds {
		result[id] = cbs[i]
	}
	return result, nil
}

// FromRgb converts an r, g, b triple with channels in [0, 255] to a hue
// color. The channels are treated as linear; no gamma correction is done.
func FromRgb(t colors.Triple) gohue.Color {
	r, g, b := t[0]/255.0, t[1]/255.0, t[2]/255.0
	x := 0.4124*r + 0.3576*g + 0.1805*b
	y := 0.2126*r + 0.7152*g + 0.0722*b
	z := 0.0193*r + 0.1192*g + 0.9505*b
	sum := x + y + z
	if sum == 0 {
		return kWhitePoint
	}
	return gohue.NewColor(x/sum, y/sum)
}

// FromScale returns the color and brightness of each color in s.
// Brightness is the hsl lightness of the color scaled to [0, 255].
func FromScale(s colors.Scale) ([]ColorBrightness, error) {
	triples, err := colors.ToRgbTriples(s)
	if err != nil {
		return nil, err
	}
	result := make([]ColorBrightness, len(triples))
	for i, t := range triples {
		_, l, _ := colors.RgbToHls(t[0]/255.0, t[1]/255.0, t[2]/255.0)
		result[i] = ColorBrightness{
			Color:      gohue.NewMaybeColor(FromRgb(t)),
			Brightness: maybe.NewUint8(toBrightness(l)),
		}
	}
	return result, nil
}

func toBrightness(lightness float64) uint8 {
	return uint8(math.RoundToEven(math.Max(0.0, math.Min(1.0, lightness)) * 255.0))
}
