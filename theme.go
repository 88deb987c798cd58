package probeplot

import (
	"fmt"

	"gonum.org/v1/plot/vg"
)

// Theme controls the appearance of rendered figures.
type Theme struct {
	// Figure sizes.
	DistWidth, DistHeight vg.Length
	BoxWidth, BoxHeight   vg.Length

	// DPI of the PNG output.
	DPI int

	// Bins is the number of histogram bins.
	Bins int

	// Bar outline.
	BarStroke      string
	BarStrokeWidth vg.Length

	// Fill colors of the size histogram and of the stacked duration layers.
	SizeFill, ValidFill, InvalidFill string

	// OutlierShape is the glyph of boxplot outliers, see String2Glyph.
	OutlierShape string
}

var DefaultTheme = Theme{
	DistWidth:      16 * vg.Centimeter,
	DistHeight:     5.5 * vg.Centimeter,
	BoxWidth:       9 * vg.Centimeter,
	BoxHeight:      7 * vg.Centimeter,
	DPI:            300,
	Bins:           20,
	BarStroke:      "gray25",
	BarStrokeWidth: vg.Points(0.7),
	SizeFill:       "tab:blue",
	ValidFill:      "tab:blue",
	InvalidFill:    "tab:orange",
	OutlierShape:   "ring",
}

// Validate checks t for values the renderer cannot use.
func (t Theme) Validate() error {
	if t.Bins < 1 {
		return fmt.Errorf("bins must be positive, got %d", t.Bins)
	}
	if t.DPI < 1 {
		return fmt.Errorf("dpi must be positive, got %d", t.DPI)
	}
	if t.DistWidth <= 0 || t.DistHeight <= 0 || t.BoxWidth <= 0 || t.BoxHeight <= 0 {
		return fmt.Errorf("figure sizes must be positive")
	}
	for _, c := range []string{t.BarStroke, t.SizeFill, t.ValidFill, t.InvalidFill} {
		if _, err := String2Color(c); err != nil {
			return err
		}
	}
	return nil
}
