/*
Package csv reads sets from CSV streams and writes result rows to them.

Two layouts are supported. The marker layout has a header row with a
type marker per column: 'l' for the label column (exactly one), 'b' for
boolean, 'c' for categorical and 'r' for continuous features. The named
layout has a header row with column names, whose types and label column
are given by a feature.Metadata.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pbanos/cart/feature"
	"github.com/pbanos/cart/set"
)

// Error represents an error reading a CSV set
type Error string

/*
ErrNoLabelColumn is returned when the header of a marker layout stream
has no 'l' column.
*/
const ErrNoLabelColumn = Error("no label column on header")

/*
ErrManyLabelColumns is returned when the header of a marker layout stream
has more than one 'l' column.
*/
const ErrManyLabelColumns = Error("more than one label column on header")

func (e Error) Error() string {
	return string(e)
}

const labelMarker = "l"

/*
ReadSet takes an io.Reader for a CSV stream in the marker layout and
returns the set parsed from it or an error. Features are named after
their position among feature columns: f0, f1... A label cell is true
when it is "1" and false otherwise.
*/
func ReadSet(reader io.Reader) (*set.Set, error) {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	labelIndex := -1
	s := &set.Set{}
	for i, marker := range header {
		if marker == labelMarker {
			if labelIndex >= 0 {
				return nil, ErrManyLabelColumns
			}
			labelIndex = i
			continue
		}
		t, err := feature.ParseMarker(marker)
		if err != nil {
			return nil, fmt.Errorf("parsing header column %d: %w", i, err)
		}
		s.Names = append(s.Names, fmt.Sprintf("f%d", len(s.Types)))
		s.Types = append(s.Types, t)
	}
	if labelIndex < 0 {
		return nil, ErrNoLabelColumn
	}
	err = readRows(r, 2, func(l int, row []string) error {
		values := make([]float64, 0, len(s.Types))
		for i, cell := range row {
			if i == labelIndex {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return fmt.Errorf("parsing line %d column %d: %v", l, i, err)
			}
			values = append(values, v)
		}
		s.Features = append(s.Features, values)
		s.Labels = append(s.Labels, row[labelIndex] == "1")
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err = s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

/*
ReadSetWithMetadata takes an io.Reader for a CSV stream in the named layout
and a feature.Metadata and returns the set parsed from it or an error.
Columns not named on the metadata are ignored. Labels are parsed with
set.ParseLabel.
*/
func ReadSetWithMetadata(reader io.Reader, md *feature.Metadata) (*set.Set, error) {
	r := csv.NewReader(reader)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %v", err)
	}
	positions := make(map[string]int, len(header))
	for i, name := range header {
		positions[name] = i
	}
	columns := md.Columns()
	indexes := make([]int, len(columns))
	for i, name := range columns {
		p, ok := positions[name]
		if !ok {
			return nil, fmt.Errorf("parsing header: missing column %s", name)
		}
		indexes[i] = p
	}
	s := &set.Set{Names: md.Names, Types: md.Types}
	labelIndex := indexes[len(indexes)-1]
	err = readRows(r, 2, func(l int, row []string) error {
		values := make([]float64, len(md.Names))
		for i, p := range indexes[:len(md.Names)] {
			v, err := strconv.ParseFloat(row[p], 64)
			if err != nil {
				return fmt.Errorf("parsing line %d column %s: %v", l, md.Names[i], err)
			}
			values[i] = v
		}
		label, err := set.ParseLabel(row[labelIndex])
		if err != nil {
			return fmt.Errorf("parsing line %d: %v", l, err)
		}
		s.Features = append(s.Features, values)
		s.Labels = append(s.Labels, label)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err = s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

/*
ReadSetFromFilePath takes a filepath string and an optional feature.Metadata,
opens the file to which the filepath points to and returns the set read from
it with ReadSetWithMetadata, or ReadSet if the metadata is nil. If the
filepath is "" os.Stdin is read instead.
*/
func ReadSetFromFilePath(filepath string, md *feature.Metadata) (*set.Set, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("reading set: %v", err)
		}
		defer f.Close()
	}
	var s *set.Set
	if md == nil {
		s, err = ReadSet(f)
	} else {
		s, err = ReadSetWithMetadata(f, md)
	}
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %w", filepath, err)
	}
	return s, err
}

/*
ReadPredictions takes an io.Reader for a CSV stream without header whose
rows hold an expected and an actual label and returns both series. A
label is true when it is "1" and false otherwise.
*/
func ReadPredictions(reader io.Reader) (expected, actual []bool, err error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = 2
	err = readRows(r, 1, func(_ int, row []string) error {
		expected = append(expected, row[0] == "1")
		actual = append(actual, row[1] == "1")
		return nil
	})
	return
}

/*
WriteResults takes an io.Writer and rows of values and writes them to
the writer as CSV lines terminated with "\r\n". Floating point values
are written with 6 decimals, nil values as empty cells and the rest
with their default format.
*/
func WriteResults(writer io.Writer, rows [][]interface{}) error {
	w := csv.NewWriter(writer)
	w.UseCRLF = true
	for i, row := range rows {
		record := make([]string, len(row))
		for j, v := range row {
			record[j] = formatResult(v)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing result row %d: %v", i, err)
		}
	}
	w.Flush()
	return w.Error()
}

func formatResult(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(value, 'f', 6, 64)
	case float32:
		return strconv.FormatFloat(float64(value), 'f', 6, 32)
	}
	return fmt.Sprintf("%v", v)
}

// readRows calls f with each remaining row of r and its line number,
// starting with first
func readRows(r *csv.Reader, first int, f func(int, []string) error) error {
	for l := first; ; l++ {
		row, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading body: %v", err)
		}
		if err = f(l, row); err != nil {
			return err
		}
	}
}
