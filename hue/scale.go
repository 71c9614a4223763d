package hue

import (
	"sort"

	"github.com/keep94/colorscale/colors"
	"github.com/keep94/gohue"
	"github.com/pkg/errors"
)

// Entry represents an entry in a Scale
type Entry struct {
	Value float64
	Color gohue.Color
}

// Scale maps values to hue colors. Scale instances are immutable.
// Entries must be sorted by Value in ascending order. An empty Scale
// maps every value to the zero gohue.Color.
type Scale []Entry

// Spread places the colors of s evenly over [lo, hi]. The first color
// gets lo and the last gets hi. A single color gets lo.
func Spread(s colors.Scale, lo, hi float64) (Scale, error) {
	if hi < lo {
		return nil, errors.Wrapf(ErrBadRange, "[%v, %v]", lo, hi)
	}
	triples, err := colors.ToRgbTriples(s)
	if err != nil {
		return nil, err
	}
	result := make(Scale, len(triples))
	for i, t := range triples {
		result[i].Color = FromRgb(t)
		result[i].Value = lo
		if len(triples) > 1 {
			result[i].Value = lo + (hi-lo)*float64(i)/float64(len(triples)-1)
		}
	}
	return result, nil
}

// Get converts x to a color. The returned color corresponds to the
// smallest value greater than or equal to x. If there are no such values,
// Get() returns the last color in this scale.
func (s Scale) Get(x float64) gohue.Color {
	if len(s) == 0 {
		return gohue.Color{}
	}
	idx := s.search(x)
	if idx == len(s) {
		return s[idx-1].Color
	}
	return s[idx].Color
}

// Interpolate works like Get except that it blends between the colors
// if x falls between two values in this scale.
func (s Scale) Interpolate(x float64) gohue.Color {
	if len(s) == 0 {
		return gohue.Color{}
	}
	idx := s.search(x)
	if idx == len(s) {
		return s[idx-1].Color
	}
	if idx == 0 {
		return s[0].Color
	}
	ratio := (x - s[idx-1].Value) / (s[idx].Value - s[idx-1].Value)
	return s[idx-1].Color.Blend(s[idx].Color, ratio)
}

func (s Scale) search(x float64) int {
	return sort.Search(len(s), func(i int) bool {
		return s[i].Value >= x
	})
}
