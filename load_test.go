package probeplot

import (
	"bytes"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ulikunitz/xz"
)

func TestParseEvents(t *testing.T) {
	got, err := ParseEvents(strings.NewReader(sampleLog), "sample")
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	if diff := cmp.Diff(sampleEvents, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEventsLayout(t *testing.T) {
	// Reordered columns, a byte order mark, dot decimals and blank lines.
	in := "\ufeffSize\tDuration\tNumber\tVeloc\tValid\n" +
		"12.5\t0.001\t7\t1\t1\n" +
		"\n" +
		"15,5\t0,002\t9\t1\t0\n"
	got, err := ParseEvents(strings.NewReader(in), "layout")
	if err != nil {
		t.Fatalf("Unexpected error %s", err)
	}
	want := []Event{
		{Number: 7, Valid: true, Velocity: 1, Size: 12.5, Duration: 0.001},
		{Number: 9, Valid: false, Velocity: 1, Size: 15.5, Duration: 0.002},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestParseEventsErrors(t *testing.T) {
	const header = "Number\tValid\tVeloc\tSize\tDuration\n"
	tests := []struct {
		name   string
		in     string
		kind   error
		line   int
		column string
	}{
		{"empty", "", ErrMissingColumn, 0, ColNumber},
		{"no size", "Number\tValid\tVeloc\tDuration\n1\t1\t0\t0\n", ErrMissingColumn, 0, ColSize},
		{"bad size", header + "1\t1\t0\tabc\t0\n", ErrMalformedRow, 2, ColSize},
		{"bad flag", header + "1\t1\t0\t1\t0\n2\t2\t0\t1\t0\n", ErrInvalidFlag, 3, ColValid},
		{"bad number", header + "x\t1\t0\t1\t0\n", ErrMalformedRow, 2, ColNumber},
		{"short row", header + "1\t1\t0\n", ErrMalformedRow, 2, ColSize},
		{"order", header + "2\t1\t0\t1\t0\n2\t1\t0\t1\t0\n", ErrEventOrder, 3, ColNumber},
		{"infinite", header + "1\t1\t0\tInf\t0\n", ErrMalformedRow, 2, ColSize},
	}
	for _, tc := range tests {
		events, err := ParseEvents(strings.NewReader(tc.in), tc.name)
		if err == nil {
			t.Errorf("%s: got no error and %d events", tc.name, len(events))
			continue
		}
		if !errors.Is(err, tc.kind) {
			t.Errorf("%s: got %v, want kind %v", tc.name, err, tc.kind)
		}
		if events != nil {
			t.Errorf("%s: got partial result %v", tc.name, events)
		}

		var ce *ColumnError
		var re *RowError
		switch {
		case errors.As(err, &ce):
			if ce.Column != tc.column || ce.Path != tc.name {
				t.Errorf("%s: got column error %+v", tc.name, ce)
			}
		case errors.As(err, &re):
			if re.Line != tc.line || re.Column != tc.column {
				t.Errorf("%s: got line %d column %q, want %d %q",
					tc.name, re.Line, re.Column, tc.line, tc.column)
			}
		default:
			t.Errorf("%s: unexpected error type %T", tc.name, err)
		}
	}
}

func TestReadEventsCompressed(t *testing.T) {
	dir := t.TempDir()

	var gz bytes.Buffer
	zw := gzip.NewWriter(&gz)
	zw.Write([]byte(sampleLog))
	zw.Close()

	var xzb bytes.Buffer
	xw, err := xz.NewWriter(&xzb)
	if err != nil {
		t.Fatal(err)
	}
	xw.Write([]byte(sampleLog))
	xw.Close()

	files := map[string][]byte{
		"plain.evt":    []byte(sampleLog),
		"sample.gz":    gz.Bytes(),
		"sample.xz":    xzb.Bytes(),
		"misnamed.txt": gz.Bytes(),
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, content, 0o644); err != nil {
			t.Fatal(err)
		}
		got, err := ReadEvents(path)
		if err != nil {
			t.Errorf("%s: unexpected error %v", name, err)
			continue
		}
		if diff := cmp.Diff(sampleEvents, got); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", name, diff)
		}
	}

	if _, err := ReadEvents(filepath.Join(dir, "missing.evt")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Got %v for missing file", err)
	}
}
