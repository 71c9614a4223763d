// Package scale resamples color scales to a different number of colors
// by interpolating in hsl space.
package scale

import (
	"math"

	"github.com/keep94/colorscale/colors"
	"github.com/pkg/errors"
)

var (
	// Reported when a sample position falls outside the color scale.
	ErrIndexOutOfRange = errors.New("scale: Sample position out of range.")
)

// Positions returns count evenly spaced sample positions over [0, n).
// The k-th position is k*n/count, so n itself is never a sample.
// If count is not positive, Positions returns an empty slice.
func Positions(n, count int) []float64 {
	if count <= 0 {
		return []float64{}
	}
	result := make([]float64, count)
	for k := range result {
		result[k] = float64(k) * float64(n) / float64(count)
	}
	return result
}

// Interpolate resamples s to count colors and returns them as css hsl
// strings. The samples sit at Positions(len(s)-1, count). Interpolate
// returns an empty slice if count is not positive.
func Interpolate(s colors.Scale, count int) ([]string, error) {
	return InterpolateAt(s, Positions(len(s)-1, count))
}

// InterpolateAt works like Interpolate except that caller supplies the
// sample positions. A position of 2.25 means a quarter of the way from
// the third color of s to the fourth. Positions must be in
// [0, len(s)-1); otherwise InterpolateAt reports ErrIndexOutOfRange.
// The one exception is a position exactly equal to len(s)-1 which
// yields the last color of s. This lets a one color scale resample to
// any number of copies of itself.
func InterpolateAt(s colors.Scale, positions []float64) ([]string, error) {
	rgbs, err := colors.ToRgbTriples(s)
	if err != nil {
		return nil, err
	}
	last := len(rgbs) - 1
	blended := make([]string, len(positions))
	for i, p := range positions {
		lo := math.Floor(p)
		if math.IsNaN(p) || p < 0 || lo > float64(last) {
			return nil, errors.Wrapf(
				ErrIndexOutOfRange, "position %v, last index %d", p, last)
		}
		start := int(lo)
		fraction := p - lo
		end := start + 1
		if end > last {
			if fraction != 0 {
				return nil, errors.Wrapf(
					ErrIndexOutOfRange, "position %v, last index %d", p, last)
			}
			end = start
		}
		blended[i] = colors.FormatHsl(blend(
			fraction, toHsl(rgbs[start]), toHsl(rgbs[end])))
	}
	if len(blended) == 0 {
		return blended, nil
	}
	return colors.ToHsl(colors.Strings(blended...))
}

func blend(fraction float64, start, end colors.Triple) colors.Triple {
	var result colors.Triple
	for i := range result {
		result[i] = start[i] + (end[i]-start[i])*fraction
	}
	return result
}

// toHsl converts an rgb triple with channels in [0, 255] to an hsl triple
// with hue in degrees and saturation and lightness in percent, each
// truncated to a whole number. Its output is not always the same as
// colors.ToHsl: the blue dominant hue is computed as r - g/d + 4 rather
// than (r-g)/d + 4, and components are truncated rather than rounded.
// Existing interpolated palettes depend on these numbers, so they stay.
func toHsl(rgb colors.Triple) colors.Triple {
	r, g, b := rgb[0]/255.0, rgb[1]/255.0, rgb[2]/255.0
	mx := math.Max(r, math.Max(g, b))
	mn := math.Min(r, math.Min(g, b))
	l := (mx + mn) / 2
	var h, s float64
	if mx != mn {
		d := mx - mn
		if l < 0.5 {
			s = d / (mx + mn)
		} else {
			s = d / (2 - mx - mn)
		}
		switch mx {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = r - g/d + 4
		}
	}
	return colors.Triple{truncate(h * 60), truncate(s * 100), truncate(l * 100)}
}

// truncate rounds x to 4 decimal places and then drops the fraction.
func truncate(x float64) float64 {
	result := math.Trunc(math.RoundToEven(x*1e4) / 1e4)
	if result == 0 {
		// no negative zero
		return 0
	}
	return result
}
