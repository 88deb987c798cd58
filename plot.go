package probeplot

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/vdobler/probeplot/geom"
	"github.com/vdobler/probeplot/stat"
)

// Kinds of artifacts written by a Renderer.
const (
	KindDistribution = "distribution"
	KindBoxplotLog   = "boxplot_log"
	KindBoxplot      = "boxplot"
)

// Artifact is one figure written to disk.
type Artifact struct {
	Kind string
	Path string
}

// Renderer draws figures into PNG files below OutDir. File names are
// unique within the lifetime of a Renderer; an existing file is only
// replaced if Overwrite is set.
type Renderer struct {
	OutDir    string
	Theme     Theme
	Overwrite bool

	names *NamePool
}

func NewRenderer(outDir string, theme Theme, overwrite bool) *Renderer {
	return &Renderer{
		OutDir:    outDir,
		Theme:     theme,
		Overwrite: overwrite,
		names:     NewNamePool(),
	}
}

// DistributionName is the file name of the distribution figure of cond.
func DistributionName(cond *Condition) string {
	return fmt.Sprintf("%d_%s.png", cond.Ordinal, SanitizeTitle(cond.Title))
}

// DistributionTitle is the page title of the distribution figure of cond.
func DistributionTitle(cond *Condition, s Summary) string {
	return fmt.Sprintf("%s - %s valid", cond.Title, s.ValidationRate())
}

// histogram is a plot of bar layers stacked on shared bins. Names holds the
// legend entry of each layer; nil means no legend.
type histogram struct {
	p      *plot.Plot
	layers []*geom.Bars
	names  []string
}

// -------------------------------------------------------------------------
// Per-condition distributions

// Distribution renders the size histogram and the stacked valid/invalid
// duration histogram of one condition side by side.
func (r *Renderer) Distribution(cond *Condition, part Partition, s Summary) (Artifact, error) {
	sizes, err := r.sizeHistogram(part.ValidSizes)
	if err != nil {
		return Artifact{}, fmt.Errorf("size histogram: %w", err)
	}
	durations, err := r.durationHistogram(part)
	if err != nil {
		return Artifact{}, fmt.Errorf("duration histogram: %w", err)
	}

	title := DistributionTitle(cond, s)
	path, err := r.save(DistributionName(cond), r.Theme.DistWidth, r.Theme.DistHeight, func(dc draw.Canvas) {
		sty := sizes.p.Title.TextStyle
		sty.XAlign = draw.XCenter
		sty.YAlign = draw.YTop
		pad := vg.Points(4)
		tiles := draw.Tiles{
			Rows:   1,
			Cols:   2,
			PadTop: sty.Height(title) + 2*pad,
			PadX:   vg.Millimeter * 4,
		}
		canvases := plot.Align([][]*plot.Plot{{sizes.p, durations.p}}, tiles, dc)
		sizes.p.Draw(canvases[0][0])
		durations.p.Draw(canvases[0][1])
		dc.FillText(sty, vg.Point{X: dc.Center().X, Y: dc.Max.Y - pad}, title)
	})
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{Kind: KindDistribution, Path: path}, nil
}

func (r *Renderer) stroke() draw.LineStyle {
	return draw.LineStyle{Color: mustColor(r.Theme.BarStroke), Width: r.Theme.BarStrokeWidth}
}

func (r *Renderer) sizeHistogram(sizes []float64) (*histogram, error) {
	edges, err := stat.Edges(r.Theme.Bins, sizes)
	if err != nil {
		return nil, err
	}
	bars := geom.NewBars(stat.Histogram(edges, sizes), mustColor(r.Theme.SizeFill), r.stroke())

	p := plot.New()
	p.Title.Text = "Bubble size distribution"
	p.X.Label.Text = IdentityScale.Label
	p.Add(bars)
	return &histogram{p: p, layers: []*geom.Bars{bars}}, nil
}

func (r *Renderer) durationHistogram(part Partition) (*histogram, error) {
	valid, invalid := Millis(part.ValidDurations), Millis(part.InvalidDurations)
	edges, err := stat.Edges(r.Theme.Bins, valid, invalid)
	if err != nil {
		return nil, err
	}
	fills := []color.Color{mustColor(r.Theme.ValidFill), mustColor(r.Theme.InvalidFill)}
	h := &histogram{
		p:      plot.New(),
		layers: geom.Stack(fills, r.stroke(), stat.Histogram(edges, valid), stat.Histogram(edges, invalid)),
		names:  []string{"Valid", "Invalid"},
	}
	h.p.Title.Text = "Chord duration distribution"
	h.p.X.Label.Text = "Duration (ms)"
	h.p.Legend.Top = true
	for i, bars := range h.layers {
		h.p.Add(bars)
		h.p.Legend.Add(h.names[i], bars)
	}
	return h, nil
}

// -------------------------------------------------------------------------
// Cross-condition boxplots

// Boxplots seals c and renders its size samples as two boxplot figures,
// first on the log10 scale (ordinal) then on the linear scale (ordinal+1).
func (r *Renderer) Boxplots(c *Corpus, ordinal int) ([]Artifact, error) {
	c.Seal()
	if c.Len() == 0 {
		return nil, ErrEmptyCorpus
	}

	figures := []struct {
		kind  string
		name  string
		scale *ScaleTransform
	}{
		{KindBoxplotLog, fmt.Sprintf("%d_boxplot_all_data_log.png", ordinal), &Log10Scale},
		{KindBoxplot, fmt.Sprintf("%d_boxplot_all_data.png", ordinal+1), &IdentityScale},
	}

	var artifacts []Artifact
	for _, fig := range figures {
		samples, err := c.Samples(fig.scale)
		if err != nil {
			return artifacts, err
		}
		p, err := r.boxplot(c.Labels, samples, fig.scale.Label)
		if err != nil {
			return artifacts, err
		}
		path, err := r.save(fig.name, r.Theme.BoxWidth, r.Theme.BoxHeight, func(dc draw.Canvas) {
			p.Draw(dc)
		})
		if err != nil {
			return artifacts, err
		}
		artifacts = append(artifacts, Artifact{Kind: fig.kind, Path: path})
	}
	return artifacts, nil
}

func (r *Renderer) boxplot(labels []string, samples [][]float64, ylabel string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Bubble size distributions"
	p.Y.Label.Text = ylabel

	width := vg.Points(20)
	if n := len(samples); n > 6 {
		width = vg.Points(120 / float64(n))
	}
	outliers := geom.OutlierStyle(String2Glyph(r.Theme.OutlierShape), color.Black, vg.Points(2))
	for i, sample := range samples {
		s, err := stat.NewBox(sample, stat.DefaultWhisker)
		if err != nil {
			return nil, fmt.Errorf("condition %q: %w", labels[i], err)
		}
		box := geom.NewBox(float64(i), s, width)
		box.OutlierStyle = outliers
		p.Add(box)
	}

	p.NominalX(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	return p, nil
}

// -------------------------------------------------------------------------
// Output

// save renders fn onto a canvas of the given size and writes it as PNG.
func (r *Renderer) save(name string, w, h vg.Length, fn func(dc draw.Canvas)) (string, error) {
	if err := os.MkdirAll(r.OutDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(r.OutDir, r.names.Claim(name))

	img := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(r.Theme.DPI))
	fn(draw.New(img))

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !r.Overwrite {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return "", fmt.Errorf("%w: %s", ErrOutputExists, path)
	}
	if err != nil {
		return "", err
	}
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		f.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, f.Close()
}
