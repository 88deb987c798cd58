package probeplot

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg/draw"
)

// -------------------------------------------------------------------------
// Glyphs

// String2Glyph maps a shape name to a glyph drawer. Unknown names give a
// ring, the usual outlier marker.
func String2Glyph(s string) draw.GlyphDrawer {
	switch s {
	case "circle", "solid-circle":
		return draw.CircleGlyph{}
	case "square":
		return draw.BoxGlyph{}
	case "solid-square":
		return draw.SquareGlyph{}
	case "delta", "triangle":
		return draw.TriangleGlyph{}
	case "pyramid":
		return draw.PyramidGlyph{}
	case "cross":
		return draw.CrossGlyph{}
	case "plus":
		return draw.PlusGlyph{}
	}
	return draw.RingGlyph{}
}

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.RGBA{
	"red":        {0xff, 0x00, 0x00, 0xff},
	"green":      {0x00, 0xff, 0x00, 0xff},
	"blue":       {0x00, 0x00, 0xff, 0xff},
	"white":      {0xff, 0xff, 0xff, 0xff},
	"gray20":     {0x33, 0x33, 0x33, 0xff},
	"gray25":     {0x40, 0x40, 0x40, 0xff},
	"gray40":     {0x66, 0x66, 0x66, 0xff},
	"gray":       {0x7f, 0x7f, 0x7f, 0xff},
	"gray60":     {0x99, 0x99, 0x99, 0xff},
	"gray80":     {0xcc, 0xcc, 0xcc, 0xff},
	"black":      {0x00, 0x00, 0x00, 0xff},
	"tab:blue":   {0x1f, 0x77, 0xb4, 0xff},
	"tab:orange": {0xff, 0x7f, 0x0e, 0xff},
	"tab:green":  {0x2c, 0xa0, 0x2c, 0xff},
	"tab:red":    {0xd6, 0x27, 0x28, 0xff},
	"tab:gray":   {0x7f, 0x7f, 0x7f, 0xff},
}

// String2Color parses "#rrggbb", "#rrggbbaa" or a builtin color name.
func String2Color(s string) (color.Color, error) {
	if strings.HasPrefix(s, "#") && (len(s) == 7 || len(s) == 9) {
		var c [4]uint8
		c[3] = 0xff
		for i := 0; 1+2*i < len(s); i++ {
			v, err := strconv.ParseUint(s[1+2*i:3+2*i], 16, 8)
			if err != nil {
				return nil, fmt.Errorf("bad color %q", s)
			}
			c[i] = uint8(v)
		}
		return color.NRGBA{c[0], c[1], c[2], c[3]}, nil
	}
	if col, ok := BuiltinColors[s]; ok {
		return col, nil
	}
	return nil, fmt.Errorf("unknown color %q", s)
}

// mustColor is String2Color for theme values already checked by
// Theme.Validate.
func mustColor(s string) color.Color {
	c, err := String2Color(s)
	if err != nil {
		return color.Black
	}
	return c
}
