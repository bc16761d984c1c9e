package series

import (
	"encoding/csv"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	stepColumn  = "step"
	valueColumn = "value"
)

// ReadCSV parses a series from r. The first record is a header; the step and value columns
// are located by name and any other column is ignored. Steps written as floats ("1000.0")
// are accepted when they hold an integer.
func ReadCSV(name string, r io.Reader) (Series, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return Series{}, errors.Wrapf(ErrMalformed, "%s: empty file", name)
	}

	if err != nil {
		return Series{}, errors.Wrapf(ErrMalformed, "%s: unable to read header: %v", name, err)
	}

	stepIdx, valueIdx := -1, -1

	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case stepColumn:
			stepIdx = i
		case valueColumn:
			valueIdx = i
		}
	}

	if stepIdx < 0 || valueIdx < 0 {
		return Series{}, errors.Wrapf(ErrMalformed, "%s: header %v must contain %q and %q", name, header, stepColumn, valueColumn)
	}

	s := Series{Name: name}

	for row := 1; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return Series{}, errors.Wrapf(ErrMalformed, "%s: row %d: %v", name, row, err)
		}

		if stepIdx >= len(record) || valueIdx >= len(record) {
			return Series{}, errors.Wrapf(ErrMalformed, "%s: row %d has %d columns", name, row, len(record))
		}

		step, err := parseStep(record[stepIdx])
		if err != nil {
			return Series{}, errors.Wrapf(ErrMalformed, "%s: row %d: %v", name, row, err)
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(record[valueIdx]), 64)
		if err != nil {
			return Series{}, errors.Wrapf(ErrMalformed, "%s: row %d: invalid value %q", name, row, record[valueIdx])
		}

		s.Points = append(s.Points, Point{Step: step, Value: value})
	}

	err = s.Validate()
	if err != nil {
		return Series{}, err
	}

	return s, nil
}

func parseStep(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)

	step, err := strconv.ParseInt(raw, 10, 64)
	if err == nil {
		return step, nil
	}

	f, ferr := strconv.ParseFloat(raw, 64)
	if ferr != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, errors.Errorf("invalid step %q", raw)
	}

	if f >= 1<<63 || f < -(1<<63) {
		return 0, errors.Errorf("step %q out of range", raw)
	}

	return int64(f), nil
}
