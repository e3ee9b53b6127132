package colorspace

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInputRejected is returned for any text that is not acceptable for the
// declared format: malformed, wrong arity, or out of the format's range.
var ErrInputRejected = errors.New("input rejected")

// Format identifies the textual representation of an input.
type Format string

const (
	FormatHex   Format = "hex"
	FormatRGB   Format = "rgb"
	FormatYCbCr Format = "ycbcr"
)

// Formats lists every supported input format.
var Formats = []Format{FormatHex, FormatRGB, FormatYCbCr}

// ParseFormat converts a case-insensitive tag ("hex", "rgb", "ycbcr") to a
// Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatHex, FormatRGB, FormatYCbCr:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (want hex, rgb or ycbcr)", s)
}

// Display is the derived view of a color in all three representations.
//
// It is always computed from RGB by DeriveDisplay and never edited
// field-by-field, so the three forms cannot drift apart.
type Display struct {
	Hex   string     `json:"hex"`   // "#RRGGBB"
	RGB   RGBColor   `json:"rgb"`   // Source of truth
	YCbCr YCbCrColor `json:"ycbcr"` // BT.601 limited range
}

// DeriveDisplay computes the HEX and YCbCr forms of c.
func DeriveDisplay(c RGBColor) Display {
	return Display{
		Hex:   c.Hex(),
		RGB:   c,
		YCbCr: c.YCbCr(),
	}
}

var (
	// A triple anywhere in the text: "rgb(1, 2, 3)" and "1,2,3;" both match.
	tripletScan = regexp.MustCompile(`(\d+)\s*,\s*(\d+)\s*,\s*(\d+)`)
	// A triple that is the whole text, surrounding whitespace allowed.
	tripletStrict = regexp.MustCompile(`^\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*$`)
)

// Parser validates raw user text against a declared format.
//
// The zero value scans rgb and ycbcr input for the first comma-separated
// triple anywhere in the text. With Strict set, the triple must make up the
// entire input (surrounding whitespace excepted), matching how hex input is
// always handled.
type Parser struct {
	Strict bool
}

// ValidateAndConvert parses raw as f using the default (scanning) Parser.
func ValidateAndConvert(raw string, f Format) (RGBColor, error) {
	return Parser{}.ValidateAndConvert(raw, f)
}

// ValidateAndConvert parses raw according to f and returns the RGB value it
// denotes. Every failure wraps ErrInputRejected.
func (p Parser) ValidateAndConvert(raw string, f Format) (RGBColor, error) {
	switch f {
	case FormatHex:
		c, ok := HexToRGB(raw)
		if !ok {
			return RGBColor{}, fmt.Errorf("%w: %q is not a 6-digit hex color", ErrInputRejected, raw)
		}
		return c, nil

	case FormatRGB:
		v, err := p.triplet(raw, [3][2]int{{0, 255}, {0, 255}, {0, 255}}, [3]string{"r", "g", "b"})
		if err != nil {
			return RGBColor{}, err
		}
		return RGBColor{R: uint8(v[0]), G: uint8(v[1]), B: uint8(v[2])}, nil

	case FormatYCbCr:
		v, err := p.triplet(raw,
			[3][2]int{{MinLuma, MaxLuma}, {MinChroma, MaxChroma}, {MinChroma, MaxChroma}},
			[3]string{"y", "cb", "cr"})
		if err != nil {
			return RGBColor{}, err
		}
		return YCbCrToRGB(uint8(v[0]), uint8(v[1]), uint8(v[2])), nil

	default:
		return RGBColor{}, fmt.Errorf("%w: unknown format %q", ErrInputRejected, string(f))
	}
}

// triplet extracts three integers and checks each against its [lo, hi]
// bound. One value out of range rejects the whole input; nothing is clamped.
func (p Parser) triplet(raw string, bounds [3][2]int, names [3]string) ([3]int, error) {
	var out [3]int

	re := tripletScan
	if p.Strict {
		re = tripletStrict
	}
	m := re.FindStringSubmatch(raw)
	if m == nil {
		return out, fmt.Errorf("%w: %q does not contain three comma-separated integers", ErrInputRejected, raw)
	}

	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(m[i+1])
		if err != nil || n < bounds[i][0] || n > bounds[i][1] {
			return out, fmt.Errorf("%w: %s=%s outside %d-%d",
				ErrInputRejected, names[i], m[i+1], bounds[i][0], bounds[i][1])
		}
		out[i] = n
	}
	return out, nil
}
