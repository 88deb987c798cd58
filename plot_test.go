package probeplot

import (
	"errors"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// testTheme renders small figures to keep the tests fast.
func testTheme() Theme {
	th := DefaultTheme
	th.DPI = 40
	th.Bins = 5
	return th
}

func sampleCondition(ordinal int, title string) *Condition {
	return &Condition{Ordinal: ordinal, Label: title, Title: title, Events: sampleEvents}
}

func checkPNG(t *testing.T, path string) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Cannot open %s: %s", path, err)
	}
	defer f.Close()
	if _, err := png.DecodeConfig(f); err != nil {
		t.Errorf("%s is not a PNG: %s", path, err)
	}
}

func TestDistribution(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir, testTheme(), false)
	cond := sampleCondition(0, "Water 10 L/min")
	part := Classify(cond.Events, 0)
	s, err := Summarize(cond.Events, part)
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}

	a, err := r.Distribution(cond, part, s)
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	want := Artifact{Kind: KindDistribution, Path: filepath.Join(dir, "0_Water-10-L_min.png")}
	if a != want {
		t.Errorf("Got %+v, want %+v", a, want)
	}
	checkPNG(t, a.Path)

	// The same condition again within one run gets a suffix.
	b, err := r.Distribution(cond, part, s)
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if b.Path != filepath.Join(dir, "0_Water-10-L_min-2.png") {
		t.Errorf("Got %s", b.Path)
	}
}

func TestDistributionEdgeCases(t *testing.T) {
	r := NewRenderer(t.TempDir(), testTheme(), false)

	// All events valid and of the same size: no invalid layer and a
	// degenerate size range.
	events := []Event{
		{Number: 1, Valid: true, Size: 42, Duration: 0.001},
		{Number: 2, Valid: true, Size: 42, Duration: 0.001},
	}
	cond := &Condition{Ordinal: 3, Title: "flat", Events: events}
	part := Classify(events, 0)
	s, err := Summarize(events, part)
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	a, err := r.Distribution(cond, part, s)
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	checkPNG(t, a.Path)
}

func TestRendererOverwrite(t *testing.T) {
	dir := t.TempDir()
	cond := sampleCondition(0, "again")
	part := Classify(cond.Events, 0)
	s, _ := Summarize(cond.Events, part)

	if _, err := NewRenderer(dir, testTheme(), false).Distribution(cond, part, s); err != nil {
		t.Fatalf("Unexpected error %s", err)
	}

	// A second run must not replace the figure of the first one.
	_, err := NewRenderer(dir, testTheme(), false).Distribution(cond, part, s)
	if !errors.Is(err, ErrOutputExists) {
		t.Errorf("Got %v, want ErrOutputExists", err)
	}

	if _, err := NewRenderer(dir, testTheme(), true).Distribution(cond, part, s); err != nil {
		t.Errorf("Overwrite: unexpected error %s", err)
	}
}

func TestBoxplots(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir, testTheme(), false)

	c := &Corpus{}
	c.Add(&Condition{Label: "10"}, []float64{120, 150, 180, 200, 210, 900})
	c.Add(&Condition{Label: "20"}, []float64{80, 95, 100, 130})
	c.Add(&Condition{Label: "single"}, []float64{55})

	got, err := r.Boxplots(c, 3)
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	want := []Artifact{
		{Kind: KindBoxplotLog, Path: filepath.Join(dir, "3_boxplot_all_data_log.png")},
		{Kind: KindBoxplot, Path: filepath.Join(dir, "4_boxplot_all_data.png")},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	for _, a := range got {
		checkPNG(t, a.Path)
	}
	if err := c.Add(&Condition{Label: "late"}, []float64{1}); !errors.Is(err, ErrCorpusSealed) {
		t.Errorf("Corpus not sealed after rendering: got %v", err)
	}
}

func TestBoxplotsEmpty(t *testing.T) {
	r := NewRenderer(t.TempDir(), testTheme(), false)
	if _, err := r.Boxplots(&Corpus{}, 0); !errors.Is(err, ErrEmptyCorpus) {
		t.Errorf("Got %v, want ErrEmptyCorpus", err)
	}
}

func TestDistributionTitle(t *testing.T) {
	cond := sampleCondition(0, "Water")
	s, err := Summarize(cond.Events, Classify(cond.Events, 0))
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if got := DistributionTitle(cond, s); got != "Water - 60% valid" {
		t.Errorf("Got %q, want %q", got, "Water - 60% valid")
	}
}

func TestHistogramLayout(t *testing.T) {
	r := NewRenderer(t.TempDir(), DefaultTheme, false)
	part := Classify(sampleEvents, 0)

	sizes, err := r.sizeHistogram(part.ValidSizes)
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	durations, err := r.durationHistogram(part)
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}

	if sizes.p.X.Label.Text != "Size (µm)" {
		t.Errorf("Got x label %q", sizes.p.X.Label.Text)
	}
	if len(sizes.layers) != 1 || sizes.names != nil {
		t.Errorf("Size histogram: got %d layers, legend %v", len(sizes.layers), sizes.names)
	}
	if diff := cmp.Diff([]string{"Valid", "Invalid"}, durations.names); diff != "" {
		t.Errorf("Legend mismatch (-want +got):\n%s", diff)
	}
	if len(durations.layers) != 2 {
		t.Fatalf("Got %d duration layers, want 2", len(durations.layers))
	}

	stroke := mustColor("gray25")
	for _, h := range []*histogram{sizes, durations} {
		for _, bars := range h.layers {
			if len(bars.Bins) != 20 {
				t.Errorf("%s: got %d bins, want 20", h.p.Title.Text, len(bars.Bins))
			}
			if bars.LineStyle.Color != stroke || bars.LineStyle.Width != vg.Points(0.7) {
				t.Errorf("%s: got stroke %v/%v", h.p.Title.Text, bars.LineStyle.Color, bars.LineStyle.Width)
			}
		}
	}

	// Invalid events are stacked on top of the valid ones.
	for i, bin := range durations.layers[0].Bins {
		if got := durations.layers[1].Base[i]; got != float64(bin.Count) {
			t.Errorf("Bin %d: got base %g, want %d", i, got, bin.Count)
		}
	}
}

func TestBoxplotLayout(t *testing.T) {
	r := NewRenderer(t.TempDir(), DefaultTheme, false)
	labels := []string{"W100", ".001_100", ".001_100"}
	samples := [][]float64{{1, 2, 3}, {2, 3, 4}, {3, 4, 5, 40}}

	for _, scale := range []*ScaleTransform{&Log10Scale, &IdentityScale} {
		p, err := r.boxplot(labels, samples, scale.Label)
		if err != nil {
			t.Fatalf("%s: unexpected error %s", scale.Name, err)
		}
		if p.Y.Label.Text != scale.Label {
			t.Errorf("%s: got y label %q, want %q", scale.Name, p.Y.Label.Text, scale.Label)
		}
		if p.X.Tick.Label.Rotation != math.Pi/4 {
			t.Errorf("%s: got rotation %g, want Pi/4", scale.Name, p.X.Tick.Label.Rotation)
		}
		if n := len(p.GlyphBoxes(p)); n != len(labels) {
			t.Errorf("%s: got %d boxes, want %d", scale.Name, n, len(labels))
		}

		ticks, ok := p.X.Tick.Marker.(plot.ConstantTicks)
		if !ok {
			t.Fatalf("%s: got marker %T, want nominal ticks", scale.Name, p.X.Tick.Marker)
		}
		var got []string
		for _, tick := range ticks {
			got = append(got, tick.Label)
		}
		if diff := cmp.Diff(labels, got); diff != "" {
			t.Errorf("%s: tick mismatch (-want +got):\n%s", scale.Name, diff)
		}
	}
	if Log10Scale.Label != "log10 Size (µm)" || IdentityScale.Label != "Size (µm)" {
		t.Errorf("Got scale labels %q and %q", Log10Scale.Label, IdentityScale.Label)
	}
}
