package geom

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// OutlierStyle returns the glyph style for outlier points.
func OutlierStyle(shape draw.GlyphDrawer, c color.Color, radius vg.Length) draw.GlyphStyle {
	if shape == nil {
		shape = draw.RingGlyph{}
	}
	return draw.GlyphStyle{Color: c, Radius: radius, Shape: shape}
}

// drawOutliers draws one glyph per value in ys at horizontal position x.
func drawOutliers(c draw.Canvas, sty draw.GlyphStyle, x vg.Length, ys []float64, trY func(float64) vg.Length) {
	for _, y := range ys {
		pt := vg.Point{X: x, Y: trY(y)}
		if !c.Contains(pt) {
			continue
		}
		c.DrawGlyph(sty, pt)
	}
}
