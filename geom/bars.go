// Package geom contains the gonum/plot plotters probeplot draws with:
// histogram bars that can be stacked on shared bins and box and whisker
// glyphs built from precomputed statistics.
package geom

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/probeplot/stat"
)

// Bars draws histogram bins as stroked rectangles. Each bar stands on
// Base[i] (zero if Base is nil) and is Bins[i].Count high; stacking one
// layer on another is done by setting Base to the tops of the lower layer.
type Bars struct {
	Bins []stat.Bin
	Base []float64

	FillColor color.Color // nil means no fill
	draw.LineStyle
}

var (
	_ plot.Plotter     = (*Bars)(nil)
	_ plot.DataRanger  = (*Bars)(nil)
	_ plot.Thumbnailer = (*Bars)(nil)
)

// NewBars returns bars for bins filled with fill and stroked with stroke.
func NewBars(bins []stat.Bin, fill color.Color, stroke draw.LineStyle) *Bars {
	return &Bars{Bins: bins, FillColor: fill, LineStyle: stroke}
}

// Stack returns one Bars per layer, each standing on top of the previous
// ones. All layers must have been binned on the same edges.
func Stack(fills []color.Color, stroke draw.LineStyle, layers ...[]stat.Bin) []*Bars {
	if len(layers) == 0 {
		return nil
	}
	n := len(layers[0])
	tops := make([]float64, n)
	stacked := make([]*Bars, len(layers))
	for l, bins := range layers {
		if len(bins) != n {
			panic("geom: stacked layers with different bin counts")
		}
		var fill color.Color
		if l < len(fills) {
			fill = fills[l]
		}
		b := NewBars(bins, fill, stroke)
		b.Base = make([]float64, n)
		copy(b.Base, tops)
		for i, bin := range bins {
			tops[i] += float64(bin.Count)
		}
		stacked[l] = b
	}
	return stacked
}

func (b *Bars) base(i int) float64 {
	if b.Base == nil {
		return 0
	}
	return b.Base[i]
}

// Plot implements the plot.Plotter interface.
func (b *Bars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for i, bin := range b.Bins {
		if bin.Count == 0 {
			continue
		}
		base := b.base(i)
		x0, x1 := trX(bin.Lo), trX(bin.Hi)
		y0, y1 := trY(base), trY(base+float64(bin.Count))
		pts := []vg.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
		if b.FillColor != nil {
			c.FillPolygon(b.FillColor, c.ClipPolygonXY(pts))
		}
		pts = append(pts, pts[0])
		c.StrokeLines(b.LineStyle, c.ClipLinesXY(pts)...)
	}
}

// DataRange implements the plot.DataRanger interface.
func (b *Bars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(+1), math.Inf(-1)
	ymin, ymax = 0, 0
	for i, bin := range b.Bins {
		xmin = math.Min(xmin, bin.Lo)
		xmax = math.Max(xmax, bin.Hi)
		ymax = math.Max(ymax, b.base(i)+float64(bin.Count))
	}
	if len(b.Bins) == 0 {
		xmin, xmax = 0, 0
	}
	return xmin, xmax, ymin, ymax
}

// Thumbnail implements the plot.Thumbnailer interface.
func (b *Bars) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	if b.FillColor != nil {
		c.FillPolygon(b.FillColor, c.ClipPolygonY(pts))
	}
	pts = append(pts, pts[0])
	c.StrokeLines(b.LineStyle, c.ClipLinesY(pts)...)
}
