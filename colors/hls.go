package colors

import (
	"math"
)

const (
	kOneThird  = 1.0 / 3.0
	kOneSixth  = 1.0 / 6.0
	kTwoThirds = 2.0 / 3.0
)

// RgbToHls converts r, g, b channels in [0, 1] to hue, lightness and
// saturation. Hue is in [0, 1); lightness and saturation are in [0, 1].
// Gray colors have a hue and saturation of 0.
func RgbToHls(r, g, b float64) (h, l, s float64) {
	maxc := math.Max(r, math.Max(g, b))
	minc := math.Min(r, math.Min(g, b))
	sumc := maxc + minc
	rangec := maxc - minc
	l = sumc / 2.0
	if minc == maxc {
		return 0.0, l, 0.0
	}
	if l <= 0.5 {
		s = rangec / sumc
	} else {
		s = rangec / (2.0 - maxc - minc)
	}
	rc := (maxc - r) / rangec
	gc := (maxc - g) / rangec
	bc := (maxc - b) / rangec
	switch {
	case r == maxc:
		h = bc - gc
	case g == maxc:
		h = 2.0 + rc - bc
	default:
		h = 4.0 + gc - rc
	}
	h = floorMod(h/6.0, 1.0)
	return
}

// HlsToRgb is the inverse of RgbToHls. h, l and s are in [0, 1]; hue
// wraps around.
func HlsToRgb(h, l, s float64) (r, g, b float64) {
	if s == 0.0 {
		return l, l, l
	}
	var m2 float64
	if l <= 0.5 {
		m2 = l * (1.0 + s)
	} else {
		m2 = l + s - (l * s)
	}
	m1 := 2.0*l - m2
	return hueToChannel(m1, m2, h+kOneThird),
		hueToChannel(m1, m2, h),
		hueToChannel(m1, m2, h-kOneThird)
}

func hueToChannel(m1, m2, hue float64) float64 {
	hue = floorMod(hue, 1.0)
	switch {
	case hue < kOneSixth:
		return m1 + (m2-m1)*hue*6.0
	case hue < 0.5:
		return m2
	case hue < kTwoThirds:
		return m1 + (m2-m1)*(kTwoThirds-hue)*6.0
	}
	return m1
}

// floorMod returns x mod y with the sign of y.
func floorMod(x, y float64) float64 {
	m := math.Mod(x, y)
	if m != 0 && (m < 0) != (y < 0) {
		m += y
	}
	return m
}
