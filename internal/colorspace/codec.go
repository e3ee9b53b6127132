package colorspace

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Limited-range bounds for BT.601 YCbCr.
const (
	MinLuma   = 16
	MaxLuma   = 235
	MinChroma = 16
	MaxChroma = 240
)

// MaxRoundTripError is the largest per-channel difference between an RGB
// color and the result of RGB -> YCbCr -> RGB, measured over all 2^24 colors.
const MaxRoundTripError = 21

// RGBColor is an 8-bit RGB triple.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// YCbCrColor is a BT.601 limited-range triple.
//
// Values produced by this package always satisfy Y in [16,235] and Cb, Cr in
// [16,240]. The struct itself does not enforce it; use Valid to check values
// built elsewhere.
type YCbCrColor struct {
	Y  uint8 `json:"y"`  // Luma (16-235)
	Cb uint8 `json:"cb"` // Blue-difference chroma (16-240)
	Cr uint8 `json:"cr"` // Red-difference chroma (16-240)
}

// String formats the triple as "r, g, b".
func (c RGBColor) String() string {
	return fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B)
}

// RGBA implements color.Color so an RGBColor can be drawn directly.
func (c RGBColor) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex returns the canonical "#RRGGBB" form.
func (c RGBColor) Hex() string {
	return RGBToHex(c.R, c.G, c.B)
}

// YCbCr converts to limited-range YCbCr.
func (c RGBColor) YCbCr() YCbCrColor {
	return RGBToYCbCr(c.R, c.G, c.B)
}

// String formats the triple as "y, cb, cr".
func (c YCbCrColor) String() string {
	return fmt.Sprintf("%d, %d, %d", c.Y, c.Cb, c.Cr)
}

// Valid reports whether every component is inside the limited range.
func (c YCbCrColor) Valid() bool {
	return inRange(int(c.Y), MinLuma, MaxLuma) &&
		inRange(int(c.Cb), MinChroma, MaxChroma) &&
		inRange(int(c.Cr), MinChroma, MaxChroma)
}

// RGB converts back to RGB. See MaxRoundTripError.
func (c YCbCrColor) RGB() RGBColor {
	return YCbCrToRGB(c.Y, c.Cb, c.Cr)
}

var hexPattern = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

// HexToRGB parses a 6-digit hex color with optional leading '#'.
//
// The whole string must match; there is no partial parsing and no 3-digit
// shorthand. The second return value is false when the string does not match.
func HexToRGB(hex string) (RGBColor, bool) {
	if !hexPattern.MatchString(hex) {
		return RGBColor{}, false
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	val, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGBColor{}, false
	}
	return RGBColor{
		R: uint8(val >> 16),
		G: uint8(val >> 8),
		B: uint8(val),
	}, true
}

// RGBToHex formats the channels as "#RRGGBB" with uppercase digits.
func RGBToHex(r, g, b uint8) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// RGBToYCbCr applies the BT.601 forward transform:
//
//	Y  =       0.299*R    + 0.587*G    + 0.114*B
//	Cb = 128 - 0.168736*R - 0.331264*G + 0.5*B
//	Cr = 128 + 0.5*R      - 0.418688*G - 0.081312*B
//
// Each value is rounded, then clamped: Y to [16,235], Cb and Cr to [16,240].
func RGBToYCbCr(r, g, b uint8) YCbCrColor {
	rf, gf, bf := float64(r), float64(g), float64(b)

	// The explicit float64 conversions stop the compiler from fusing
	// multiply-adds, so results match on every architecture.
	y := float64(0.299*rf) + float64(0.587*gf) + float64(0.114*bf)
	cb := 128 - float64(0.168736*rf) - float64(0.331264*gf) + float64(0.5*bf)
	cr := 128 + float64(0.5*rf) - float64(0.418688*gf) - float64(0.081312*bf)

	return YCbCrColor{
		Y:  roundClamp(y, MinLuma, MaxLuma),
		Cb: roundClamp(cb, MinChroma, MaxChroma),
		Cr: roundClamp(cr, MinChroma, MaxChroma),
	}
}

// YCbCrToRGB applies the limited-range inverse:
//
//	R = 1.164*(Y-16)                     + 1.596*(Cr-128)
//	G = 1.164*(Y-16) - 0.392*(Cb-128)    - 0.813*(Cr-128)
//	B = 1.164*(Y-16) + 2.017*(Cb-128)
//
// Each value is rounded, then clamped to [0,255]. Inputs outside the limited
// range are accepted and simply produce clamped output.
func YCbCrToRGB(y, cb, cr uint8) RGBColor {
	yf := float64(int(y) - 16)
	cbf := float64(int(cb) - 128)
	crf := float64(int(cr) - 128)

	luma := float64(1.164 * yf)
	r := luma + float64(1.596*crf)
	g := luma - float64(0.392*cbf) - float64(0.813*crf)
	b := luma + float64(2.017*cbf)

	return RGBColor{
		R: roundClamp(r, 0, 255),
		G: roundClamp(g, 0, 255),
		B: roundClamp(b, 0, 255),
	}
}

// roundClamp rounds half away from zero, then clamps into [lo, hi].
func roundClamp(v float64, lo, hi int) uint8 {
	n := int(math.Round(v))
	if n < lo {
		n = lo
	}
	if n > hi {
		n = hi
	}
	return uint8(n)
}

func inRange(v, lo, hi int) bool {
	return v >= lo && v <= hi
}
