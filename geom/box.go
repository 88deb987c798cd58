package geom

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/probeplot/stat"
)

// Box draws a vertical box and whisker glyph from precomputed statistics.
// Unlike plotter.BoxPlot it does not compute quantiles itself, so the box
// agrees with the quartiles printed in the report.
type Box struct {
	X     float64 // location on the x axis, e.g. the index of a nominal tick
	Stats stat.Box

	Width    vg.Length // of the box
	CapWidth vg.Length // of the whisker ends

	FillColor    color.Color // nil means no fill
	BoxStyle     draw.LineStyle
	MedianStyle  draw.LineStyle
	WhiskerStyle draw.LineStyle
	OutlierStyle draw.GlyphStyle
}

var (
	_ plot.Plotter    = (*Box)(nil)
	_ plot.DataRanger = (*Box)(nil)
	_ plot.GlyphBoxer = (*Box)(nil)
)

// NewBox returns a box for stats at x, styled like a matplotlib boxplot.
func NewBox(x float64, stats stat.Box, width vg.Length) *Box {
	line := draw.LineStyle{Color: color.Black, Width: vg.Points(0.7)}
	return &Box{
		X:            x,
		Stats:        stats,
		Width:        width,
		CapWidth:     width / 2,
		BoxStyle:     line,
		MedianStyle:  draw.LineStyle{Color: color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}, Width: vg.Points(1)},
		WhiskerStyle: line,
		OutlierStyle: OutlierStyle(draw.RingGlyph{}, color.Black, vg.Points(2)),
	}
}

// Plot implements the plot.Plotter interface.
func (b *Box) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	x := trX(b.X)
	if !c.ContainsX(x) {
		return
	}
	s := b.Stats
	half := b.Width / 2
	q1, q3, med := trY(s.Q1), trY(s.Q3), trY(s.Median)

	box := []vg.Point{
		{X: x - half, Y: q1},
		{X: x - half, Y: q3},
		{X: x + half, Y: q3},
		{X: x + half, Y: q1},
	}
	if b.FillColor != nil {
		c.FillPolygon(b.FillColor, c.ClipPolygonY(box))
	}
	box = append(box, box[0])
	c.StrokeLines(b.BoxStyle, c.ClipLinesY(box)...)
	c.StrokeLines(b.MedianStyle, c.ClipLinesY([]vg.Point{{X: x - half, Y: med}, {X: x + half, Y: med}})...)

	if s.N > len(s.Outliers) {
		lo, hi := trY(s.Low), trY(s.High)
		ends := b.CapWidth / 2
		c.StrokeLines(b.WhiskerStyle, c.ClipLinesY(
			[]vg.Point{{X: x, Y: q3}, {X: x, Y: hi}},
			[]vg.Point{{X: x, Y: q1}, {X: x, Y: lo}},
			[]vg.Point{{X: x - ends, Y: hi}, {X: x + ends, Y: hi}},
			[]vg.Point{{X: x - ends, Y: lo}, {X: x + ends, Y: lo}},
		)...)
	}

	drawOutliers(c, b.OutlierStyle, x, s.Outliers, trY)
}

// DataRange implements the plot.DataRanger interface.
func (b *Box) DataRange() (xmin, xmax, ymin, ymax float64) {
	return b.X, b.X, b.Stats.Min, b.Stats.Max
}

// GlyphBoxes implements the plot.GlyphBoxer interface so that the axes
// leave room for half a box on either side.
func (b *Box) GlyphBoxes(plt *plot.Plot) []plot.GlyphBox {
	half := b.Width / 2
	return []plot.GlyphBox{{
		X: plt.X.Norm(b.X),
		Y: plt.Y.Norm(b.Stats.Median),
		Rectangle: vg.Rectangle{
			Min: vg.Point{X: -half},
			Max: vg.Point{X: half},
		},
	}}
}
