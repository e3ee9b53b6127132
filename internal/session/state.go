// Package session holds the caller-owned input state: the selected input
// format, the raw text last typed, and the current color.
//
// A State is driven from a single event loop and is not safe for concurrent
// use. Rejected input never changes the current color.
package session

import (
	"fmt"

	"github.com/ironsheep/color-tools-mcp/internal/clipboard"
	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// DefaultColor is the color a new session starts with when none is configured.
var DefaultColor = colorspace.RGBColor{R: 59, G: 130, B: 246}

// Field names a display field that can be copied.
type Field string

const (
	FieldHex   Field = "hex"
	FieldRGB   Field = "rgb"
	FieldYCbCr Field = "ycbcr"
)

// State is the input state machine for one user.
type State struct {
	format colorspace.Format
	input  string
	color  colorspace.RGBColor

	parser colorspace.Parser
	copier clipboard.Copier
}

// Option configures a State.
type Option func(*State)

// WithFormat sets the initial input format.
func WithFormat(f colorspace.Format) Option {
	return func(s *State) { s.format = f }
}

// WithParser sets the parser used to validate input.
func WithParser(p colorspace.Parser) Option {
	return func(s *State) { s.parser = p }
}

// WithCopier sets the clipboard used by Copy.
func WithCopier(c clipboard.Copier) Option {
	return func(s *State) { s.copier = c }
}

// New creates a State showing initial, with hex input selected and the
// clipboard disabled unless overridden by opts.
func New(initial colorspace.RGBColor, opts ...Option) *State {
	s := &State{
		format: colorspace.FormatHex,
		color:  initial,
		copier: clipboard.Discard{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Format returns the selected input format.
func (s *State) Format() colorspace.Format { return s.format }

// Input returns the raw text last submitted under the current format.
func (s *State) Input() string { return s.input }

// Color returns the current color.
func (s *State) Color() colorspace.RGBColor { return s.color }

// Display derives the HEX, RGB and YCbCr forms of the current color.
func (s *State) Display() colorspace.Display {
	return colorspace.DeriveDisplay(s.color)
}

// SetFormat selects a new input format. The raw input is cleared; the
// current color is kept.
func (s *State) SetFormat(f colorspace.Format) {
	s.format = f
	s.input = ""
}

// Submit records raw as the current input and, if it is valid for the
// selected format, makes the color it denotes current. It reports whether
// the input was accepted. Rejected input leaves the color untouched.
func (s *State) Submit(raw string) (colorspace.Display, bool) {
	s.input = raw

	c, err := s.parser.ValidateAndConvert(raw, s.format)
	if err != nil {
		return s.Display(), false
	}
	s.color = c
	return s.Display(), true
}

// Copy sends one display field of the current color to the clipboard and
// returns the text that was copied.
func (s *State) Copy(f Field) (string, error) {
	d := s.Display()

	var text string
	switch f {
	case FieldHex:
		text = d.Hex
	case FieldRGB:
		text = d.RGB.String()
	case FieldYCbCr:
		text = d.YCbCr.String()
	default:
		return "", fmt.Errorf("unknown field %q (want hex, rgb or ycbcr)", string(f))
	}

	s.copier.Copy(text)
	return text, nil
}
