// Copyright © 2024 The BayesLearning Authors
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package freq implements frequency tables,
// the number of times each value
// is observed in a data set.
package freq

import (
	"cmp"
	"iter"
	"slices"
)

// Table is a collection of value counts.
type Table[T cmp.Ordered] struct {
	count map[T]int

	// NaN is never equal to itself,
	// so it cannot be a map key.
	nan    int
	nanVal T
}

// New creates a new empty table.
func New[T cmp.Ordered]() *Table[T] {
	return &Table[T]{
		count: make(map[T]int),
	}
}

// Add adds an observation of a value.
func (t *Table[T]) Add(v T) {
	t.AddN(v, 1)
}

// AddN adds n observations of a value.
func (t *Table[T]) AddN(v T, n int) {
	if n <= 0 {
		return
	}
	if v != v {
		t.nan += n
		t.nanVal = v
		return
	}
	t.count[v] += n
}

// Count returns the number of observations of a value.
func (t *Table[T]) Count(v T) int {
	if v != v {
		return t.nan
	}
	return t.count[v]
}

// Len returns the number of distinct values.
func (t *Table[T]) Len() int {
	if t.nan > 0 {
		return len(t.count) + 1
	}
	return len(t.count)
}

// Total returns the number of observations.
func (t *Table[T]) Total() int {
	sum := t.nan
	for _, n := range t.count {
		sum += n
	}
	return sum
}

// Values returns the observed values
// in ascending order.
// NaN, if observed, is the first value.
func (t *Table[T]) Values() []T {
	vals := make([]T, 0, t.Len())
	for v := range t.count {
		vals = append(vals, v)
	}
	slices.Sort(vals)
	if t.nan > 0 {
		vals = slices.Insert(vals, 0, t.nanVal)
	}
	return vals
}

// Counts returns an iterator over the value counts,
// in ascending order of values.
func (t *Table[T]) Counts() iter.Seq2[T, int] {
	return func(yield func(T, int) bool) {
		for _, v := range t.Values() {
			if !yield(v, t.Count(v)) {
				return
			}
		}
	}
}
