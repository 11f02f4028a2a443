// Copyright © 2024 The BayesLearning Authors
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package freq

import (
	"cmp"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadTSV reads a frequency table
// from a column of a TSV file.
//
// The TSV file must contain a header,
// and the field with the given name
// will be used as the observed values.
// If the file has a "count" field,
// it will be used as the number of observations
// of the value in that row,
// otherwise each row is counted as a single observation.
// Rows with an empty value are ignored.
//
// Here is an example file:
//
//	# coin tosses
//	value	count
//	0	12
//	1	9
func ReadTSV[T cmp.Ordered](r io.Reader, field string, parse func(string) (T, error)) (*Table[T], error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(strings.TrimSpace(h))
		fields[h] = i
	}
	field = strings.ToLower(field)
	if _, ok := fields[field]; !ok {
		return nil, fmt.Errorf("expecting field %q", field)
	}
	cf, hasCount := fields["count"]

	t := New[T]()
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		s := strings.TrimSpace(row[fields[field]])
		if s == "" {
			continue
		}
		v, err := parse(s)
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, field, err)
		}

		if !hasCount {
			t.Add(v)
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(row[cf]))
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, "count", err)
		}
		if n < 0 {
			return nil, fmt.Errorf("on row %d: field %q: negative count %d", ln, "count", n)
		}
		t.AddN(v, n)
	}
	return t, nil
}

// ReadFile reads a frequency table of numbers
// from a TSV file.
// If name is "-",
// the table will be read from r.
func ReadFile(r io.Reader, name, field string) (*Table[float64], error) {
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		name = "stdin"
	}

	t, err := ReadTSV(r, field, Float)
	if err != nil {
		return nil, fmt.Errorf("when reading %q: %v", name, err)
	}
	return t, nil
}

// Float parses a floating point value.
func Float(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// Int parses an integer value.
func Int(s string) (int, error) {
	return strconv.Atoi(s)
}

// String returns s without modification.
func String(s string) (string, error) {
	return s, nil
}
