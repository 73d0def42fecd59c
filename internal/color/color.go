// SPDX-License-Identifier: MIT

// Package color converts between hex, RGB and HSL representations of sRGB
// colors and derives lighter or darker variants of a hex color.
package color

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// ErrInvalidHex is returned when a string is not a #rrggbb color
var ErrInvalidHex = errors.New("invalid hex color")

var hexPattern = regexp.MustCompile(`(?i)^#?([0-9a-f]{2})([0-9a-f]{2})([0-9a-f]{2})$`)

// RGB is a color with 8-bit channels
type RGB struct {
	R int
	G int
	B int
}

// String renders the channels as "r, g, b" for use inside rgba()
func (c RGB) String() string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}

// HSL holds hue in degrees and saturation/lightness in percent
type HSL struct {
	H int
	S int
	L int
}

// HexToRGB parses a six digit hex color, with or without the leading '#'.
// ok is false when the input does not match.
func HexToRGB(hex string) (RGB, bool) {
	m := hexPattern.FindStringSubmatch(hex)
	if m == nil {
		return RGB{}, false
	}
	return RGB{
		R: parseChannel(m[1]),
		G: parseChannel(m[2]),
		B: parseChannel(m[3]),
	}, true
}

// ParseHex is HexToRGB with an error for callers that need to report bad input
func ParseHex(hex string) (RGB, error) {
	rgb, ok := HexToRGB(hex)
	if !ok {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	return rgb, nil
}

// HexToHSL converts a #rgb or #rrggbb color to HSL.
//
// Strings of any other length are treated as black, and digits that are not
// hex parse as zero for their channel.
func HexToHSL(hex string) HSL {
	var r, g, b int
	switch len(hex) {
	case 4:
		r = parseChannel(hex[1:2] + hex[1:2])
		g = parseChannel(hex[2:3] + hex[2:3])
		b = parseChannel(hex[3:4] + hex[3:4])
	case 7:
		r = parseChannel(hex[1:3])
		g = parseChannel(hex[3:5])
		b = parseChannel(hex[5:7])
	}

	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	cmin := math.Min(rf, math.Min(gf, bf))
	cmax := math.Max(rf, math.Max(gf, bf))
	delta := cmax - cmin

	var h float64
	switch {
	case delta == 0:
		h = 0
	case cmax == rf:
		h = math.Mod((gf-bf)/delta, 6)
	case cmax == gf:
		h = (bf-rf)/delta + 2
	default:
		h = (rf-gf)/delta + 4
	}

	h = roundHalfUp(h * 60)
	if h < 0 {
		h += 360
	}

	l := (cmax + cmin) / 2
	var s float64
	if delta != 0 {
		s = delta / (1 - math.Abs(2*l-1))
	}
	s = roundTenth(s * 100)
	l = roundTenth(l * 100)

	return HSL{
		H: int(roundHalfUp(h)),
		S: int(roundHalfUp(s)),
		L: int(roundHalfUp(l)),
	}
}

// HSLToHex converts hue (degrees), saturation and lightness (percent) to #rrggbb
func HSLToHex(h, s, l float64) string {
	l /= 100
	a := s * math.Min(l, 1-l) / 100
	channel := func(n float64) int {
		k := math.Mod(n+h/30, 12)
		c := l - a*math.Max(math.Min(math.Min(k-3, 9-k), 1), -1)
		return int(roundHalfUp(255 * c))
	}
	return fmt.Sprintf("#%02x%02x%02x", channel(0), channel(8), channel(4))
}

// ChangeBrightness shifts the lightness of hex by delta percentage points,
// clamped to [0,100], keeping hue and saturation.
func ChangeBrightness(hex string, delta float64) string {
	hsl := HexToHSL(hex)
	l := math.Max(0, math.Min(100, float64(hsl.L)+delta))
	return HSLToHex(float64(hsl.H), float64(hsl.S), l)
}

// ContrastFor picks white or black text for a background color
func ContrastFor(hex string) string {
	if HexToHSL(hex).L < 60 {
		return "#ffffff"
	}
	return "#000000"
}

func parseChannel(digits string) int {
	v, err := strconv.ParseUint(digits, 16, 8)
	if err != nil {
		return 0
	}
	return int(v)
}

// roundHalfUp rounds .5 toward positive infinity
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

func roundTenth(x float64) float64 {
	return math.Round(x*10) / 10
}
