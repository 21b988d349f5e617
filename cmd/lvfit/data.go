package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// readInput opens name ("-" is stdin) and parses two numeric columns.
func readInput(name string, stdin io.Reader, xCol, yCol int, skipHeader bool) ([]float64, []float64, error) {
	if name == "-" {
		return readXY(stdin, xCol, yCol, skipHeader)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	x, y, err := readXY(f, xCol, yCol, skipHeader)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", name, err)
	}

	return x, y, nil
}

// readXY parses CSV records into x and y. Lines starting with '#' are
// comments; records may have any number of fields.
func readXY(r io.Reader, xCol, yCol int, skipHeader bool) ([]float64, []float64, error) {
	if xCol < 0 || yCol < 0 {
		return nil, nil, fmt.Errorf("negative column index (x=%d, y=%d)", xCol, yCol)
	}
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var x, y []float64
	for first := true; ; first = false {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		if first && skipHeader {
			continue
		}
		line, _ := cr.FieldPos(0)
		xv, err := field(rec, xCol)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: x: %w", line, err)
		}
		yv, err := field(rec, yCol)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: y: %w", line, err)
		}
		x = append(x, xv)
		y = append(y, yv)
	}
	if len(x) == 0 {
		return nil, nil, errors.New("no samples")
	}

	return x, y, nil
}

func field(rec []string, col int) (float64, error) {
	if col >= len(rec) {
		return 0, fmt.Errorf("column %d missing (record has %d)", col, len(rec))
	}

	return strconv.ParseFloat(strings.TrimSpace(rec[col]), 64)
}
