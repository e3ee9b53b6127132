package swatch

import (
	"image"
	"image/color"
	"image/draw"
)

// 3x5 pixel glyphs for hex codes.
var glyphs = map[rune][]string{
	'0': {"111", "101", "101", "101", "111"},
	'1': {"010", "110", "010", "010", "111"},
	'2': {"111", "001", "111", "100", "111"},
	'3': {"111", "001", "111", "001", "111"},
	'4': {"101", "101", "111", "001", "001"},
	'5': {"111", "100", "111", "001", "111"},
	'6': {"111", "100", "111", "101", "111"},
	'7': {"111", "001", "001", "001", "001"},
	'8': {"111", "101", "111", "101", "111"},
	'9': {"111", "101", "111", "001", "111"},
	'A': {"010", "101", "111", "101", "101"},
	'B': {"110", "101", "110", "101", "110"},
	'C': {"011", "100", "100", "100", "011"},
	'D': {"110", "101", "101", "101", "110"},
	'E': {"111", "100", "110", "100", "111"},
	'F': {"111", "100", "110", "100", "100"},
	'#': {"101", "111", "101", "111", "101"},
}

const (
	charWidth   = 4 // glyph plus one column of spacing
	labelHeight = 6 // glyph plus one row of padding
)

func labelWidth(text string, scale int) int {
	return len(text) * charWidth * scale
}

// drawLabel draws text at (x, y) with each glyph pixel enlarged to a
// scale x scale block, over a background box one block wider on each side.
// Unknown runes leave a blank cell.
func drawLabel(img draw.Image, x, y, scale int, text string, fg, bg color.Color) {
	box := image.Rect(x-scale, y-scale, x+labelWidth(text, scale), y+labelHeight*scale)
	draw.Draw(img, box.Intersect(img.Bounds()), &image.Uniform{C: bg}, image.Point{}, draw.Src)

	src := &image.Uniform{C: fg}
	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += charWidth * scale
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel != '1' {
					continue
				}
				px := image.Rect(cx+col*scale, y+row*scale, cx+(col+1)*scale, y+(row+1)*scale)
				draw.Draw(img, px.Intersect(img.Bounds()), src, image.Point{}, draw.Src)
			}
		}
		cx += charWidth * scale
	}
}
