// Package swatch renders a color as a flat PNG tile with its HEX code
// printed in a contrasting caption.
package swatch

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/color-tools-mcp/internal/colorspace"
)

// Size limits in pixels.
const (
	DefaultSize = 160
	MinSize     = 16
	MaxSize     = 2048
)

// Options controls swatch rendering.
type Options struct {
	Width  int // Pixels; 0 means DefaultSize
	Height int // Pixels; 0 means DefaultSize

	// Compare splits the tile: the left half is the color itself, the right
	// half is the color after an RGB -> YCbCr -> RGB round trip.
	Compare bool

	// NoCaption suppresses the HEX caption.
	NoCaption bool
}

// Result contains an encoded swatch.
type Result struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	Hex         string `json:"hex"`
	RoundTrip   string `json:"round_trip_hex,omitempty"` // Set when Compare is on
}

func (o Options) size() (int, int, error) {
	w, h := o.Width, o.Height
	if w == 0 {
		w = DefaultSize
	}
	if h == 0 {
		h = DefaultSize
	}
	if w < MinSize || w > MaxSize || h < MinSize || h > MaxSize {
		return 0, 0, fmt.Errorf("swatch size %dx%d outside %d-%d", w, h, MinSize, MaxSize)
	}
	return w, h, nil
}

// Render draws the swatch for d.
func Render(d colorspace.Display, opts Options) (image.Image, error) {
	w, h, err := opts.size()
	if err != nil {
		return nil, err
	}

	if !opts.Compare {
		tile := imaging.New(w, h, fillColor(d.RGB))
		if !opts.NoCaption {
			caption(tile, d)
		}
		return tile, nil
	}

	left := imaging.New(w/2, h, fillColor(d.RGB))
	rt := colorspace.DeriveDisplay(d.YCbCr.RGB())
	right := imaging.New(w-w/2, h, fillColor(rt.RGB))
	if !opts.NoCaption {
		caption(left, d)
		caption(right, rt)
	}

	canvas := imaging.New(w, h, color.Transparent)
	canvas = imaging.Paste(canvas, left, image.Pt(0, 0))
	canvas = imaging.Paste(canvas, right, image.Pt(w/2, 0))
	return canvas, nil
}

// Encode renders the swatch and returns it as base64 PNG.
func Encode(d colorspace.Display, opts Options) (*Result, error) {
	img, err := Render(d, opts)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode swatch: %w", err)
	}

	res := &Result{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		Hex:         d.Hex,
	}
	if opts.Compare {
		res.RoundTrip = d.YCbCr.RGB().Hex()
	}
	return res, nil
}

// Save renders the swatch and writes it to path as PNG.
func Save(path string, d colorspace.Display, opts Options) error {
	img, err := Render(d, opts)
	if err != nil {
		return err
	}
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to save swatch: %w", err)
	}
	return nil
}

func fillColor(c colorspace.RGBColor) colorful.Color {
	col, _ := colorful.MakeColor(c)
	return col
}

// captionColors picks black text on light colors and white on dark ones,
// using BT.601 luma, with a background pushed further away from the text.
func captionColors(d colorspace.Display) (fg, bg color.Color) {
	fill := fillColor(d.RGB)
	black := colorful.Color{R: 0, G: 0, B: 0}
	white := colorful.Color{R: 1, G: 1, B: 1}

	if d.YCbCr.Y >= 128 {
		return black, fill.BlendRgb(white, 0.5).Clamped()
	}
	return white, fill.BlendRgb(black, 0.5).Clamped()
}

// caption prints d.Hex in the bottom-left corner of img. Tiles too small to
// hold the text are left plain.
func caption(img draw.Image, d colorspace.Display) {
	b := img.Bounds()
	scale := b.Dy() / 40
	if scale < 1 {
		scale = 1
	}
	margin := 2 * scale

	if b.Dx() < labelWidth(d.Hex, scale)+2*margin || b.Dy() < labelHeight*scale+2*margin {
		return
	}

	fg, bg := captionColors(d)
	drawLabel(img, b.Min.X+margin, b.Max.Y-margin-labelHeight*scale, scale, d.Hex, fg, bg)
}
