package probeplot

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
)

func TestWriteReport(t *testing.T) {
	color.NoColor = true

	s := Summary{
		Total:               8,
		Valid:               7,
		Rate:                87,
		SizeSamples:         7,
		MeanSize:            412.5,
		StdSize:             101.25,
		Q1:                  350.9,
		Q3:                  470.2,
		MeanDurationAll:     1.25,
		MeanDurationValid:   1.5,
		MeanDurationInvalid: math.NaN(),
	}
	var b strings.Builder
	if err := WriteReport(&b, "Water 10 L/min", s); err != nil {
		t.Fatalf("Unexpected error %s", err)
	}

	sep := strings.Repeat("-", 50)
	want := "\n" + sep + "\n" +
		"Results for Water 10 L/min:\n" +
		"Total events:\t8\n" +
		"Valid events:\t7\n" +
		"Validation:\t87%\n" +
		"Mean size:\t412.5\n" +
		"Standard deviation size:\t101.25\n" +
		"Interquartile range of size:\t350 - 470\n" +
		"Mean chord duration (all):\t1.25\n" +
		"Mean chord duration (valid):\t1.5\n" +
		"Mean chord duration (invalid):\tn/a\n" +
		sep + "\n\n"
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteReportColorFollowsWriter(t *testing.T) {
	saved := color.NoColor
	defer func() { color.NoColor = saved }()
	color.NoColor = false

	s := Summary{Total: 1, Valid: 1, Rate: 100, SizeSamples: 1, MeanSize: 1}

	var buf bytes.Buffer
	if err := WriteReport(&buf, "buffer", s); err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("Buffer got escape sequences: %q", buf.String())
	}

	f, err := os.Create(filepath.Join(t.TempDir(), "report.txt"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if colored(f) {
		t.Errorf("Regular file treated as terminal")
	}
	if err := WriteReport(f, "file", s); err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	content, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(content), "\x1b[") {
		t.Errorf("File got escape sequences: %q", content)
	}
}
