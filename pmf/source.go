// Copyright © 2024 The BayesLearning Authors
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package pmf

import (
	"cmp"
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/jz3707/BayesLearning/wmap"
)

// A Counter is a tabular structure
// that provides the number of occurrences
// of each value.
type Counter[T cmp.Ordered] interface {
	Counts() iter.Seq2[T, int]
}

// FromItems creates a new PMF
// from a sequence of value-weight pairs.
// If a value is repeated,
// the last weight is used.
// The resulting PMF is normalized.
func FromItems[T cmp.Ordered](seq iter.Seq2[T, float64], label string) (*Pmf[T], error) {
	p := New[T](label)
	for v, w := range seq {
		p.Set(v, w)
	}
	return p.normalized()
}

// FromMap creates a new normalized PMF
// from a map of values to weights.
func FromMap[T cmp.Ordered](m map[T]float64, label string) (*Pmf[T], error) {
	p := New[T](label)
	for _, v := range slices.Sorted(maps.Keys(m)) {
		p.Set(v, m[v])
	}
	return p.normalized()
}

// FromWeighted creates a new normalized PMF
// from the weights of a weighted map.
func FromWeighted[T cmp.Ordered](m *wmap.Map[T], label string) (*Pmf[T], error) {
	if m.IsLog() {
		return nil, fmt.Errorf("source %s: map under a log transform: %w", m, ErrInvalidState)
	}
	return FromItems(m.Items(), label)
}

// FromValues creates a new normalized PMF
// from a list of values,
// using the frequency of each value
// as its weight.
func FromValues[T cmp.Ordered](vals []T, label string) (*Pmf[T], error) {
	p := New[T](label)
	for _, v := range vals {
		p.Incr(v, 1)
	}
	return p.normalized()
}

// FromCounts creates a new normalized PMF
// from a table of counts.
func FromCounts[T cmp.Ordered](c Counter[T], label string) (*Pmf[T], error) {
	p := New[T](label)
	for v, n := range c.Counts() {
		p.Incr(v, float64(n))
	}
	return p.normalized()
}

// From creates a new normalized PMF
// from a source.
// Valid sources are:
//
//   - a PMF or a weighted map of the same value type,
//   - a map of values to weights (float64)
//     or to counts (int),
//   - a slice of values,
//   - a sequence of value-weight pairs,
//   - a Counter.
func From[T cmp.Ordered](src any, label string) (*Pmf[T], error) {
	switch s := src.(type) {
	case *Pmf[T]:
		return FromWeighted(&s.Map, label)
	case *wmap.Map[T]:
		return FromWeighted(s, label)
	case map[T]float64:
		return FromMap(s, label)
	case map[T]int:
		p := New[T](label)
		for _, v := range slices.Sorted(maps.Keys(s)) {
			p.Set(v, float64(s[v]))
		}
		return p.normalized()
	case []T:
		return FromValues(s, label)
	case iter.Seq2[T, float64]:
		return FromItems(s, label)
	case func(func(T, float64) bool):
		return FromItems(s, label)
	case Counter[T]:
		return FromCounts(s, label)
	}
	return nil, fmt.Errorf("source of type %T: %w", src, ErrUnsupportedSource)
}

func (p *Pmf[T]) normalized() (*Pmf[T], error) {
	if p.Len() == 0 {
		return p, nil
	}
	if _, err := p.Normalize(); err != nil {
		return nil, err
	}
	return p, nil
}
