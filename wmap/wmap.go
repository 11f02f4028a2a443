// Copyright © 2024 The BayesLearning Authors
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package wmap implements a sparse map
// of values to weights.
//
// A weighted map is the base
// for frequency and probability mass functions.
// It can be in one of two modes:
// linear,
// in which weights are plain values,
// or log-transformed,
// in which weights are logarithms relative to a reference value.
package wmap

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

var log = logrus.WithField("package", "wmap")

// NoLegend is the label used
// when a map does not have a label.
const NoLegend = "_nolegend_"

// Errors returned by weighted maps.
var (
	ErrKeyNotFound       = errors.New("key not found")
	ErrEmpty             = errors.New("empty collection")
	ErrInvalidState      = errors.New("invalid state")
	ErrDegenerate        = errors.New("degenerate distribution")
	ErrUnsupportedSource = errors.New("unsupported source")
)

// Item is a value-weight pair.
type Item[T cmp.Ordered] struct {
	Value  T
	Weight float64
}

// Map is a map of values to weights.
//
// The zero value is an empty,
// unlabeled map,
// ready to use.
type Map[T cmp.Ordered] struct {
	label string
	log   bool

	keys []T // insertion order
	w    map[T]float64

	// NaN is never equal to itself,
	// so it cannot be a map key.
	hasNaN bool
	nan    float64
}

// New creates a new empty map.
func New[T cmp.Ordered](label string) *Map[T] {
	return &Map[T]{
		label: label,
		w:     make(map[T]float64),
	}
}

// Label returns the label of the map.
func (m *Map[T]) Label() string {
	if m.label == "" {
		return NoLegend
	}
	return m.label
}

// SetLabel sets the label of the map.
func (m *Map[T]) SetLabel(label string) {
	m.label = label
}

// IsLog returns true if the weights of the map
// are log-transformed.
func (m *Map[T]) IsLog() bool {
	return m.log
}

// Len returns the number of values in the map.
func (m *Map[T]) Len() int {
	return len(m.keys)
}

// Has returns true if the value is defined in the map.
func (m *Map[T]) Has(v T) bool {
	_, ok := m.lookup(v)
	return ok
}

// Get returns the weight of a value,
// or def if the value is not in the map.
func (m *Map[T]) Get(v T, def float64) float64 {
	w, ok := m.lookup(v)
	if !ok {
		return def
	}
	return w
}

// Set sets the weight of a value.
func (m *Map[T]) Set(v T, w float64) {
	if !m.Has(v) {
		m.keys = append(m.keys, v)
	}
	m.put(v, w)
}

// Incr adds d to the weight of a value.
// An undefined value is taken as having a weight of 0.
func (m *Map[T]) Incr(v T, d float64) {
	w, _ := m.lookup(v)
	m.Set(v, w+d)
}

// Mult multiplies the weight of a value by f.
// An undefined value is taken as having a weight of 0.
func (m *Map[T]) Mult(v T, f float64) {
	w, _ := m.lookup(v)
	m.Set(v, w*f)
}

// Remove removes a value from the map.
func (m *Map[T]) Remove(v T) error {
	if !m.Has(v) {
		return fmt.Errorf("remove %v: %w", v, ErrKeyNotFound)
	}
	m.unset(v)
	if i := m.index(v); i >= 0 {
		m.keys = slices.Delete(m.keys, i, i+1)
	}
	return nil
}

// Values returns the values of the map
// in insertion order.
func (m *Map[T]) Values() []T {
	return slices.Clone(m.keys)
}

// Items returns an iterator over the value-weight pairs
// in insertion order.
func (m *Map[T]) Items() iter.Seq2[T, float64] {
	return func(yield func(T, float64) bool) {
		for _, v := range m.keys {
			w, _ := m.lookup(v)
			if !yield(v, w) {
				return
			}
		}
	}
}

// Total returns the sum of all the weights.
func (m *Map[T]) Total() float64 {
	return floats.Sum(m.weights())
}

// MaxWeight returns the largest weight in the map.
func (m *Map[T]) MaxWeight() (float64, error) {
	if m.Len() == 0 {
		return 0, fmt.Errorf("max weight: %w", ErrEmpty)
	}
	return floats.Max(m.weights()), nil
}

// Largest returns the n items with the largest weight,
// sorted from the largest.
// Ties are broken by the larger value.
func (m *Map[T]) Largest(n int) []Item[T] {
	items := m.itemSlice()
	slices.SortFunc(items, func(a, b Item[T]) int {
		if c := cmp.Compare(b.Weight, a.Weight); c != 0 {
			return c
		}
		return cmp.Compare(b.Value, a.Value)
	})
	return items[:max(0, min(n, len(items)))]
}

// Smallest returns the n items with the smallest weight,
// sorted from the smallest.
// Ties are broken by the smaller value.
func (m *Map[T]) Smallest(n int) []Item[T] {
	items := m.itemSlice()
	slices.SortFunc(items, func(a, b Item[T]) int {
		if c := cmp.Compare(a.Weight, b.Weight); c != 0 {
			return c
		}
		return cmp.Compare(a.Value, b.Value)
	})
	return items[:max(0, min(n, len(items)))]
}

// SortedItems returns the items of the map
// sorted by value.
func (m *Map[T]) SortedItems() []Item[T] {
	items := m.itemSlice()
	for _, it := range items {
		if isNaN(it.Value) {
			log.Warn("values contain NaN, items may not be sorted correctly")
			break
		}
	}
	slices.SortStableFunc(items, func(a, b Item[T]) int {
		return cmp.Compare(a.Value, b.Value)
	})
	return items
}

// Equal returns true if both maps
// have the same values with the same weights.
// Labels and log state are ignored.
func (m *Map[T]) Equal(o *Map[T]) bool {
	if o == nil {
		return false
	}
	if m.hasNaN != o.hasNaN || m.nan != o.nan {
		return false
	}
	return maps.Equal(m.w, o.w)
}

// Copy returns a shallow copy of the map.
// The weights can be modified
// without affecting the original map.
// If label is empty,
// the label of the original map is kept.
func (m *Map[T]) Copy(label string) *Map[T] {
	if label == "" {
		label = m.label
	}
	return &Map[T]{
		label:  label,
		log:    m.log,
		keys:   slices.Clone(m.keys),
		w:      maps.Clone(m.w),
		hasNaN: m.hasNaN,
		nan:    m.nan,
	}
}

// String returns the label of the map,
// or its content if it is unlabeled.
func (m *Map[T]) String() string {
	if m.label != "" && m.label != NoLegend {
		return m.label
	}

	var b strings.Builder
	b.WriteString("Map{")
	for i, it := range m.SortedItems() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v:%g", it.Value, it.Weight)
	}
	b.WriteByte('}')
	return b.String()
}

func (m *Map[T]) weights() []float64 {
	w := make([]float64, 0, len(m.keys))
	for _, v := range m.keys {
		x, _ := m.lookup(v)
		w = append(w, x)
	}
	return w
}

func (m *Map[T]) itemSlice() []Item[T] {
	items := make([]Item[T], 0, len(m.keys))
	for _, v := range m.keys {
		x, _ := m.lookup(v)
		items = append(items, Item[T]{Value: v, Weight: x})
	}
	return items
}

// Lookup returns the stored weight of a value.
func (m *Map[T]) lookup(v T) (float64, bool) {
	if isNaN(v) {
		return m.nan, m.hasNaN
	}
	w, ok := m.w[v]
	return w, ok
}

// Put stores the weight of a value
// without updating the key order.
func (m *Map[T]) put(v T, w float64) {
	if isNaN(v) {
		m.hasNaN = true
		m.nan = w
		return
	}
	if m.w == nil {
		m.w = make(map[T]float64)
	}
	m.w[v] = w
}

// Unset removes the weight of a value
// without updating the key order.
func (m *Map[T]) unset(v T) {
	if isNaN(v) {
		m.hasNaN = false
		m.nan = 0
		return
	}
	delete(m.w, v)
}

func (m *Map[T]) index(v T) int {
	if isNaN(v) {
		return slices.IndexFunc(m.keys, isNaN[T])
	}
	return slices.Index(m.keys, v)
}

// IsNaN reports whether v is a floating point NaN,
// the only ordered value not equal to itself.
func isNaN[T cmp.Ordered](v T) bool {
	return v != v
}
