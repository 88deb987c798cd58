package probeplot

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var separator = strings.Repeat("-", 50)

// colored reports whether w is a terminal that should get ANSI colors.
// color.NoColor (NO_COLOR, dumb terminals) disables colors everywhere.
func colored(w io.Writer) bool {
	if color.NoColor {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// WriteReport writes the summary of one condition as a human readable block
// framed by separator lines. The field order is fixed. Colors are only used
// if w is a terminal.
func WriteReport(w io.Writer, title string, s Summary) error {
	headingColor := color.New(color.Bold)
	separatorColor := color.New(color.Faint)
	if colored(w) {
		headingColor.EnableColor()
		separatorColor.EnableColor()
	} else {
		headingColor.DisableColor()
		separatorColor.DisableColor()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", separatorColor.Sprint(separator))
	fmt.Fprintf(&b, "%s\n", headingColor.Sprintf("Results for %s:", title))
	fmt.Fprintf(&b, "Total events:\t%d\n", s.Total)
	fmt.Fprintf(&b, "Valid events:\t%d\n", s.Valid)
	fmt.Fprintf(&b, "Validation:\t%s\n", s.ValidationRate())
	fmt.Fprintf(&b, "Mean size:\t%s\n", formatValue(s.MeanSize))
	fmt.Fprintf(&b, "Standard deviation size:\t%s\n", formatValue(s.StdSize))
	fmt.Fprintf(&b, "Interquartile range of size:\t%d - %d\n", int(s.Q1), int(s.Q3))
	fmt.Fprintf(&b, "Mean chord duration (all):\t%s\n", formatValue(s.MeanDurationAll))
	fmt.Fprintf(&b, "Mean chord duration (valid):\t%s\n", formatValue(s.MeanDurationValid))
	fmt.Fprintf(&b, "Mean chord duration (invalid):\t%s\n", formatValue(s.MeanDurationInvalid))
	fmt.Fprintf(&b, "%s\n\n", separatorColor.Sprint(separator))

	_, err := io.WriteString(w, b.String())
	return err
}

func formatValue(x float64) string {
	if math.IsNaN(x) {
		return "n/a"
	}
	return fmt.Sprint(x)
}
