// Package colors converts color scales between numeric RGB triples,
// css rgb strings and css hsl strings.
package colors

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	// Reported when the first color of a scale is none of the accepted
	// forms.
	ErrUnrecognizedFormat = errors.New(
		"colors: Could not determine type of input color scale. " +
			"Color scales must be in one of these 3 forms: " +
			"[]colors.Triple{{0, 0, 0}, {255, 255, 255}}, " +
			"[]string{\"rgb(0, 0, 0)\", \"rgb(255, 255, 255)\"}, " +
			"[]string{\"hsl(0, 0%, 0%)\", \"hsl(0, 0%, 100%)\"}.")

	// Reported when a color tagged rgb or hsl cannot be parsed.
	ErrMalformedColor = errors.New("colors: Malformed color text.")
)

// Variant identifies how the colors of a scale are represented.
type Variant int

const (
	// Numeric colors are Triple values.
	Numeric Variant = iota

	// RgbVariant colors are strings like "rgb(255, 0, 0)".
	RgbVariant

	// HslVariant colors are strings like "hsl(0, 100%, 50%)".
	HslVariant
)

func (v Variant) String() string {
	switch v {
	case Numeric:
		return "numeric"
	case RgbVariant:
		return "rgb"
	case HslVariant:
		return "hsl"
	default:
		return "unknown"
	}
}

// Triple is a color in numeric form. Whether it holds r, g, b channels
// or h, s, l components depends on where it came from. Components are
// neither clamped nor validated.
type Triple [3]float64

// Color is one entry in a Scale. A Color is a Triple, a [3]float64, or
// a string beginning with "rgb" or "hsl".
type Color interface{}

// Scale is an ordered sequence of colors that all share the same
// Variant. The first color decides the Variant of the whole scale.
// Scale instances must be treated as immutable.
type Scale []Color

// Strings returns a Scale made of css color strings.
func Strings(colors ...string) Scale {
	result := make(Scale, len(colors))
	for i := range colors {
		result[i] = colors[i]
	}
	return result
}

// Triples returns a Scale made of numeric colors.
func Triples(colors ...Triple) Scale {
	result := make(Scale, len(colors))
	for i := range colors {
		result[i] = colors[i]
	}
	return result
}

// Classify reports the Variant of s by looking only at its first color.
func Classify(s Scale) (Variant, error) {
	if len(s) == 0 {
		return 0, errors.Wrap(ErrUnrecognizedFormat, "empty scale")
	}
	if _, ok := asTriple(s[0]); ok {
		return Numeric, nil
	}
	if text, ok := s[0].(string); ok {
		if v, ok := textVariant(text); ok {
			return v, nil
		}
	}
	return 0, errors.Wrapf(ErrUnrecognizedFormat, "%v", s[0])
}

func textVariant(text string) (Variant, bool) {
	switch {
	case strings.HasPrefix(text, "rgb"):
		return RgbVariant, true
	case strings.HasPrefix(text, "hsl"):
		return HslVariant, true
	}
	return 0, false
}

func asTriple(c Color) (Triple, bool) {
	switch t := c.(type) {
	case Triple:
		return t, true
	case [3]float64:
		return Triple(t), true
	}
	return Triple{}, false
}
