package probeplot

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/ulikunitz/xz"
)

// Magic bytes of the compressed formats ReadEvents accepts.
var (
	gzipMagic  = []byte{0x1f, 0x8b}
	bzip2Magic = []byte{0x42, 0x5a, 0x68}
	xzMagic    = []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}
)

// ReadEvents reads the event file at path. Gzip, bzip2 and xz compressed
// files are detected by their magic bytes and decompressed on the fly.
func ReadEvents(path string) ([]Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := decompress(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ParseEvents(r, path)
}

func decompress(br *bufio.Reader) (io.Reader, error) {
	header, err := br.Peek(len(xzMagic))
	if err != nil && err != io.EOF {
		return nil, err
	}
	switch {
	case bytes.HasPrefix(header, gzipMagic):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		return zr, nil
	case bytes.HasPrefix(header, bzip2Magic):
		return bzip2.NewReader(br), nil
	case bytes.HasPrefix(header, xzMagic):
		zr, err := xz.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("xz: %w", err)
		}
		return zr, nil
	}
	return br, nil
}

// ParseEvents parses a tab separated event log with one header row and
// comma decimal separators. Name is only used in errors.
//
// A missing required column yields a *ColumnError. Any row that cannot be
// parsed completely yields a *RowError; no partial result is returned.
func ParseEvents(r io.Reader, name string) ([]Event, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &ColumnError{Path: name, Column: RequiredColumns[0]}
	}
	if err != nil {
		return nil, csvError(name, err)
	}

	names := make([]string, len(header))
	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		names[i] = h
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}
	if missing := NewStringSetFrom(names).Missing(RequiredColumns); len(missing) > 0 {
		return nil, &ColumnError{Path: name, Column: missing[0]}
	}

	p := rowParser{name: name, index: index}
	var events []Event
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvError(name, err)
		}
		line, _ := cr.FieldPos(0)
		if isBlank(record) {
			continue
		}
		ev, err := p.parse(record, line)
		if err != nil {
			return nil, err
		}
		if len(events) > 0 && ev.Number <= events[len(events)-1].Number {
			return nil, &RowError{Path: name, Line: line, Column: ColNumber,
				Value: strconv.FormatInt(ev.Number, 10), Err: ErrEventOrder}
		}
		events = append(events, ev)
	}
	return events, nil
}

func csvError(name string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &RowError{Path: name, Line: pe.Line, Err: pe.Err}
	}
	return fmt.Errorf("%s: %w", name, err)
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

type rowParser struct {
	name  string
	index map[string]int
}

func (p rowParser) parse(record []string, line int) (Event, error) {
	var ev Event
	field := func(col string) (string, error) {
		i := p.index[col]
		if i >= len(record) {
			return "", &RowError{Path: p.name, Line: line, Column: col,
				Err: fmt.Errorf("row has %d fields", len(record))}
		}
		return strings.TrimSpace(record[i]), nil
	}
	fail := func(col, val string, err error) error {
		return &RowError{Path: p.name, Line: line, Column: col, Value: val, Err: err}
	}

	s, err := field(ColNumber)
	if err != nil {
		return ev, err
	}
	if ev.Number, err = strconv.ParseInt(s, 10, 64); err != nil {
		return ev, fail(ColNumber, s, unwrapNumError(err))
	}

	if s, err = field(ColValid); err != nil {
		return ev, err
	}
	switch s {
	case "1":
		ev.Valid = true
	case "0":
		ev.Valid = false
	default:
		return ev, fail(ColValid, s, ErrInvalidFlag)
	}

	floats := []struct {
		col string
		dst *float64
	}{
		{ColVelocity, &ev.Velocity},
		{ColSize, &ev.Size},
		{ColDuration, &ev.Duration},
	}
	for _, f := range floats {
		if s, err = field(f.col); err != nil {
			return ev, err
		}
		if *f.dst, err = parseDecimal(s); err != nil {
			return ev, fail(f.col, s, err)
		}
	}
	return ev, nil
}

// parseDecimal parses a float written with a comma or a dot as decimal
// separator. Non-finite values are rejected.
func parseDecimal(s string) (float64, error) {
	x, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0, unwrapNumError(err)
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, errors.New("not a finite number")
	}
	return x, nil
}

func unwrapNumError(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		return ne.Err
	}
	return err
}
