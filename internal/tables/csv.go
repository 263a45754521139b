package tables

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"
)

type row struct {
	line   int
	fields []string
}

// readRows reads a CSV table, skipping its header row, and checks that
// every data row has width fields.
func readRows(path string, width int) ([]row, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	var rows []row
	header := true
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			line := 0
			if errors.As(err, &pe) {
				line = pe.Line
			}
			return nil, &RecordError{Path: path, Line: line, Field: "row", Err: err}
		}
		line, _ := r.FieldPos(0)
		if header {
			header = false
			continue
		}
		if len(rec) != width {
			return nil, &RecordError{
				Path: path, Line: line, Field: "row", Value: strings.Join(rec, ","),
				Err: fmt.Errorf("want %d fields, got %d", width, len(rec)),
			}
		}
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		rows = append(rows, row{line: line, fields: rec})
	}
	return rows, nil
}

type bound int

const (
	nonNegative bound = iota
	positive
)

func (r row) float(path string, col int, name string, b bound) (float64, error) {
	raw := r.fields[col]
	v, err := strconv.ParseFloat(raw, 64)
	if err == nil {
		err = checkBound(v, b)
	}
	if err != nil {
		return 0, &RecordError{Path: path, Line: r.line, Field: name, Value: raw, Err: err}
	}
	return v, nil
}

func checkBound(v float64, b bound) error {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return errors.New("not a finite number")
	case b == positive && v <= 0:
		return errors.New("must be positive")
	case v < 0:
		return errors.New("must not be negative")
	}
	return nil
}
