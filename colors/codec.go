package colors

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// Parse parses a single css color string such as "rgb(255, 0, 0)" or
// "hsl(0, 100%, 50%)". The returned Triple holds the three fields as
// written; Parse does not convert between color spaces.
func Parse(text string) (Variant, Triple, error) {
	v, ok := textVariant(text)
	if !ok {
		return 0, Triple{}, errors.Wrapf(ErrUnrecognizedFormat, "%q", text)
	}
	t, err := parseFields(text)
	if err != nil {
		return 0, Triple{}, err
	}
	return v, t, nil
}

// parseFields reads the three comma separated numbers between the first
// '(' and the first ')' of text. Whitespace and percent signs are
// ignored.
func parseFields(text string) (result Triple, err error) {
	open := strings.IndexByte(text, '(')
	closing := strings.IndexByte(text, ')')
	if open == -1 || closing == -1 || closing < open {
		err = errors.Wrapf(ErrMalformedColor, "%q: missing parentheses", text)
		return
	}
	fields := strings.Split(strings.Map(dropSpaceAndPercent, text[open+1:closing]), ",")
	if len(fields) != 3 {
		err = errors.Wrapf(
			ErrMalformedColor, "%q: expected 3 fields, got %d", text, len(fields))
		return
	}
	for i := range fields {
		if result[i], err = strconv.ParseFloat(fields[i], 64); err != nil {
			err = errors.Wrapf(
				ErrMalformedColor, "%q: bad field %q", text, fields[i])
			return
		}
	}
	return
}

func dropSpaceAndPercent(r rune) rune {
	if r == '%' || unicode.IsSpace(r) {
		return -1
	}
	return r
}

// ToNumeric returns the colors of s as triples. Numeric scales pass
// through as is. For rgb and hsl scales only the text formatting is
// stripped, so an hsl scale yields h, s, l triples.
func ToNumeric(s Scale) ([]Triple, error) {
	v, err := Classify(s)
	if err != nil {
		return nil, err
	}
	result := make([]Triple, len(s))
	for i := range s {
		if v == Numeric {
			t, ok := asTriple(s[i])
			if !ok {
				return nil, errors.Wrapf(
					ErrMalformedColor, "%v: expected a numeric triple", s[i])
			}
			result[i] = t
			continue
		}
		text, ok := s[i].(string)
		if !ok {
			return nil, errors.Wrapf(
				ErrMalformedColor, "%v: expected %s text", s[i], v)
		}
		if result[i], err = parseFields(text); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// ToHsl returns s as css hsl strings like "hsl(0, 100%, 50%)".
// An hsl scale is reparsed and written back with percent signs on
// saturation and lightness; doing so again changes nothing.
// Numeric and rgb scales are converted from rgb space with hue rounded
// to whole degrees and saturation and lightness to whole percents.
func ToHsl(s Scale) ([]string, error) {
	v, err := Classify(s)
	if err != nil {
		return nil, err
	}
	triples, err := ToNumeric(s)
	if err != nil {
		return nil, err
	}
	result := make([]string, len(triples))
	if v == HslVariant {
		for i := range triples {
			result[i] = FormatHsl(triples[i])
		}
		return result, nil
	}
	for i, t := range triples {
		h, l, sat := RgbToHls(t[0]/255.0, t[1]/255.0, t[2]/255.0)
		result[i] = "hsl(" + strings.Join([]string{
			roundToString(h * 360.0),
			roundToString(sat*100.0) + "%",
			roundToString(l*100.0) + "%",
		}, ", ") + ")"
	}
	return result, nil
}

// ToRgb returns s as css rgb strings like "rgb(255, 0, 0)".
// An rgb scale is returned unchanged. Numeric components are written as
// given. Hsl colors are converted with each channel rounded to a whole
// number.
func ToRgb(s Scale) ([]string, error) {
	v, err := Classify(s)
	if err != nil {
		return nil, err
	}
	if v == RgbVariant {
		result := make([]string, len(s))
		for i := range s {
			text, ok := s[i].(string)
			if !ok {
				return nil, errors.Wrapf(
					ErrMalformedColor, "%v: expected rgb text", s[i])
			}
			result[i] = text
		}
		return result, nil
	}
	triples, err := ToNumeric(s)
	if err != nil {
		return nil, err
	}
	result := make([]string, len(triples))
	if v == Numeric {
		for i := range triples {
			result[i] = FormatRgb(triples[i])
		}
		return result, nil
	}
	for i, t := range triples {
		r, g, b := HlsToRgb(t[0]/360.0, t[2]/100.0, t[1]/100.0)
		result[i] = "rgb(" + strings.Join([]string{
			roundToString(r * 255.0),
			roundToString(g * 255.0),
			roundToString(b * 255.0),
		}, ", ") + ")"
	}
	return result, nil
}

// ToRgbTriples returns the colors of s as r, g, b triples with channels
// in [0, 255]. Hsl colors go through ToRgb first so they come back
// rounded to whole numbers.
func ToRgbTriples(s Scale) ([]Triple, error) {
	v, err := Classify(s)
	if err != nil {
		return nil, err
	}
	if v == HslVariant {
		rgb, err := ToRgb(s)
		if err != nil {
			return nil, err
		}
		s = Strings(rgb...)
	}
	return ToNumeric(s)
}

// FormatRgb writes t as "rgb(r, g, b)" without rounding.
func FormatRgb(t Triple) string {
	return "rgb(" + strings.Join([]string{
		formatFloat(t[0]), formatFloat(t[1]), formatFloat(t[2])}, ", ") + ")"
}

// FormatHsl writes t as "hsl(h, s%, l%)" without rounding.
func FormatHsl(t Triple) string {
	return "hsl(" + strings.Join([]string{
		formatFloat(t[0]),
		formatFloat(t[1]) + "%",
		formatFloat(t[2]) + "%"}, ", ") + ")"
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// roundToString rounds half to even, so 0.5 becomes 0 and 1.5 becomes 2.
func roundToString(x float64) string {
	return strconv.Itoa(int(math.RoundToEven(x)))
}
