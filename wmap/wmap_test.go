// Copyright © 2024 The BayesLearning Authors
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package wmap_test

import (
	"errors"
	"maps"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jz3707/BayesLearning/wmap"
)

const tolerance = 1e-9

func newMap() *wmap.Map[int] {
	m := wmap.New[int]("")
	m.Set(3, 0.2)
	m.Set(1, 0.5)
	m.Set(2, 0.1)
	m.Set(4, 0.2)
	return m
}

func weights[T int | float64 | string](m *wmap.Map[T]) map[T]float64 {
	return maps.Collect(m.Items())
}

func TestMapBasic(t *testing.T) {
	m := newMap()

	if g := m.Label(); g != wmap.NoLegend {
		t.Errorf("label: got %q, want %q", g, wmap.NoLegend)
	}
	if g := m.Len(); g != 4 {
		t.Errorf("len: got %d, want %d", g, 4)
	}
	if g := m.Get(1, -1); g != 0.5 {
		t.Errorf("get 1: got %.6f, want %.6f", g, 0.5)
	}
	if g := m.Get(10, -1); g != -1 {
		t.Errorf("get 10: got %.6f, want %.6f", g, -1.0)
	}

	want := []int{3, 1, 2, 4}
	if diff := cmp.Diff(want, m.Values()); diff != "" {
		t.Errorf("values: insertion order mismatch (-want +got):\n%s", diff)
	}

	m.Incr(2, 1)
	m.Incr(5, 2)
	m.Mult(1, 4)
	m.Mult(6, 3)
	w := map[int]float64{1: 2, 2: 1.1, 3: 0.2, 4: 0.2, 5: 2, 6: 0}
	if diff := cmp.Diff(w, weights(m), cmpopts.EquateApprox(0, tolerance)); diff != "" {
		t.Errorf("weights mismatch (-want +got):\n%s", diff)
	}
	if g := m.Total(); math.Abs(g-5.5) > tolerance {
		t.Errorf("total: got %.6f, want %.6f", g, 5.5)
	}
}

func TestZeroMap(t *testing.T) {
	var m wmap.Map[string]
	if g := m.Total(); g != 0 {
		t.Errorf("total: got %.6f, want 0", g)
	}
	if _, err := m.MaxWeight(); !errors.Is(err, wmap.ErrEmpty) {
		t.Errorf("max weight: got error %v, want %v", err, wmap.ErrEmpty)
	}

	m.Incr("a", 1)
	m.Incr("a", 1)
	if g := m.Get("a", 0); g != 2 {
		t.Errorf("incr: got %.6f, want %.6f", g, 2.0)
	}
}

func TestRemove(t *testing.T) {
	m := newMap()
	if err := m.Remove(2); err != nil {
		t.Fatalf("remove: unexpected error: %v", err)
	}
	if m.Has(2) {
		t.Errorf("remove: value %d still in map", 2)
	}
	if diff := cmp.Diff([]int{3, 1, 4}, m.Values()); diff != "" {
		t.Errorf("values after remove mismatch (-want +got):\n%s", diff)
	}

	if err := m.Remove(2); !errors.Is(err, wmap.ErrKeyNotFound) {
		t.Errorf("remove missing: got error %v, want %v", err, wmap.ErrKeyNotFound)
	}
}

func TestMaxWeight(t *testing.T) {
	m := newMap()
	mx, err := m.MaxWeight()
	if err != nil {
		t.Fatalf("max weight: unexpected error: %v", err)
	}
	if mx != 0.5 {
		t.Errorf("max weight: got %.6f, want %.6f", mx, 0.5)
	}
}

func TestLargestSmallest(t *testing.T) {
	m := newMap()

	large := []wmap.Item[int]{
		{Value: 1, Weight: 0.5},
		{Value: 4, Weight: 0.2},
		{Value: 3, Weight: 0.2},
	}
	if diff := cmp.Diff(large, m.Largest(3)); diff != "" {
		t.Errorf("largest mismatch (-want +got):\n%s", diff)
	}

	small := []wmap.Item[int]{
		{Value: 2, Weight: 0.1},
		{Value: 3, Weight: 0.2},
	}
	if diff := cmp.Diff(small, m.Smallest(2)); diff != "" {
		t.Errorf("smallest mismatch (-want +got):\n%s", diff)
	}

	if g := len(m.Largest(10)); g != 4 {
		t.Errorf("largest 10: got %d items, want %d", g, 4)
	}
}

func TestSortedItems(t *testing.T) {
	m := newMap()
	want := []wmap.Item[int]{
		{Value: 1, Weight: 0.5},
		{Value: 2, Weight: 0.1},
		{Value: 3, Weight: 0.2},
		{Value: 4, Weight: 0.2},
	}
	if diff := cmp.Diff(want, m.SortedItems()); diff != "" {
		t.Errorf("sorted items mismatch (-want +got):\n%s", diff)
	}

	// NaN values only produce a warning
	f := wmap.New[float64]("nan")
	f.Set(2, 1)
	f.Set(math.NaN(), 1)
	f.Set(1, 1)
	if g := len(f.SortedItems()); g != 3 {
		t.Errorf("sorted items with NaN: got %d items, want %d", g, 3)
	}
}

func TestNaNValue(t *testing.T) {
	nan := math.NaN()

	m := wmap.New[float64]("")
	m.Set(nan, 1)
	m.Incr(nan, 1)
	m.Set(1, 1)
	m.Set(2, 0)
	if g := m.Len(); g != 3 {
		t.Errorf("len: got %d, want %d", g, 3)
	}
	if !m.Has(nan) {
		t.Errorf("has: NaN should be in the map")
	}
	if g := m.Get(nan, -1); g != 2 {
		t.Errorf("get NaN: got %.6f, want %.6f", g, 2.0)
	}
	if g := m.Total(); g != 3 {
		t.Errorf("total: got %.6f, want %.6f", g, 3.0)
	}
	if g := len(m.Values()); g != 3 {
		t.Errorf("values: got %d values, want %d", g, 3)
	}

	c := m.Copy("")
	if !m.Equal(c) {
		t.Errorf("copy: maps should be equal")
	}
	c.Mult(nan, 2)
	if m.Equal(c) {
		t.Errorf("copy: maps should be different after modification")
	}
	if g := c.Get(nan, -1); g != 4 {
		t.Errorf("mult NaN: got %.6f, want %.6f", g, 4.0)
	}
	if g := c.Len(); g != 3 {
		t.Errorf("mult NaN: got len %d, want %d", g, 3)
	}

	if err := m.Log(); err != nil {
		t.Fatalf("log: unexpected error: %v", err)
	}
	if g := m.Len(); g != 2 {
		t.Errorf("log: got len %d, want %d", g, 2)
	}
	if g := m.Get(nan, -1); g != 0 {
		t.Errorf("log NaN: got %.6f, want 0", g)
	}
	if err := m.Exp(); err != nil {
		t.Fatalf("exp: unexpected error: %v", err)
	}
	if g := m.Get(1, -1); math.Abs(g-0.5) > tolerance {
		t.Errorf("exp: got %.6f, want %.6f", g, 0.5)
	}

	if err := m.Remove(nan); err != nil {
		t.Fatalf("remove NaN: unexpected error: %v", err)
	}
	if m.Has(nan) || m.Len() != 1 {
		t.Errorf("remove NaN: got len %d, want %d", m.Len(), 1)
	}
	if err := m.Remove(nan); !errors.Is(err, wmap.ErrKeyNotFound) {
		t.Errorf("remove NaN twice: got error %v, want %v", err, wmap.ErrKeyNotFound)
	}
}

func TestScale(t *testing.T) {
	m := wmap.New[float64]("scale")
	m.Set(1, 0.3)
	m.Set(2, 0.7)

	s := wmap.Scale(m, 2)
	want := map[float64]float64{2: 0.3, 4: 0.7}
	if diff := cmp.Diff(want, weights(s)); diff != "" {
		t.Errorf("scale mismatch (-want +got):\n%s", diff)
	}
	if s.Label() != "scale" {
		t.Errorf("scale label: got %q, want %q", s.Label(), "scale")
	}

	// the original is not modified
	if diff := cmp.Diff(map[float64]float64{1: 0.3, 2: 0.7}, weights(m)); diff != "" {
		t.Errorf("original after scale mismatch (-want +got):\n%s", diff)
	}

	z := wmap.Scale(m, 0)
	if diff := cmp.Diff(map[float64]float64{0: 1}, weights(z), cmpopts.EquateApprox(0, tolerance)); diff != "" {
		t.Errorf("scale by zero mismatch (-want +got):\n%s", diff)
	}
}

func TestLogExp(t *testing.T) {
	m := newMap()
	m.Set(5, 0)

	if err := m.Exp(); !errors.Is(err, wmap.ErrInvalidState) {
		t.Errorf("exp on linear map: got error %v, want %v", err, wmap.ErrInvalidState)
	}

	if err := m.Log(); err != nil {
		t.Fatalf("log: unexpected error: %v", err)
	}
	if !m.IsLog() {
		t.Fatalf("log: map should be under a log transform")
	}
	if m.Has(5) {
		t.Errorf("log: zero weight value %d not removed", 5)
	}
	if g := m.Get(1, -1); g != 0 {
		t.Errorf("log: largest weight: got %.6f, want 0", g)
	}
	for v, w := range m.Items() {
		if w > 0 {
			t.Errorf("log: value %d: got log weight %.6f, want <= 0", v, w)
		}
	}
	if err := m.Log(); !errors.Is(err, wmap.ErrInvalidState) {
		t.Errorf("log twice: got error %v, want %v", err, wmap.ErrInvalidState)
	}

	if err := m.ExpRef(math.Log(2)); err != nil {
		t.Fatalf("exp: unexpected error: %v", err)
	}
	if m.IsLog() {
		t.Fatalf("exp: map still under a log transform")
	}
	want := map[int]float64{1: 0.5, 2: 0.1, 3: 0.2, 4: 0.2}
	if diff := cmp.Diff(want, weights(m), cmpopts.EquateApprox(0, tolerance)); diff != "" {
		t.Errorf("log-exp round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLogRefExpRef(t *testing.T) {
	m := newMap()
	if err := m.LogRef(1); err != nil {
		t.Fatalf("log: unexpected error: %v", err)
	}
	if err := m.ExpRef(0); err != nil {
		t.Fatalf("exp: unexpected error: %v", err)
	}
	if diff := cmp.Diff(weights(newMap()), weights(m), cmpopts.EquateApprox(0, tolerance)); diff != "" {
		t.Errorf("log-exp round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEqualCopy(t *testing.T) {
	m := newMap()
	c := m.Copy("copy")
	if c.Label() != "copy" {
		t.Errorf("copy label: got %q, want %q", c.Label(), "copy")
	}
	if !m.Equal(c) {
		t.Errorf("copy: maps should be equal")
	}

	c.Set(1, 0.9)
	if m.Equal(c) {
		t.Errorf("copy: maps should be different after modification")
	}
	if g := m.Get(1, 0); g != 0.5 {
		t.Errorf("copy: original modified: got %.6f, want %.6f", g, 0.5)
	}

	// labels and insertion order are ignored
	o := wmap.New[int]("other")
	for _, it := range m.SortedItems() {
		o.Set(it.Value, it.Weight)
	}
	if !m.Equal(o) {
		t.Errorf("equal: maps with same weights and different labels should be equal")
	}
	if m.Equal(nil) {
		t.Errorf("equal: map should be different from nil")
	}
}

func TestString(t *testing.T) {
	m := wmap.New[int]("")
	m.Set(2, 0.5)
	m.Set(1, 0.5)
	if g, w := m.String(), "Map{1:0.5 2:0.5}"; g != w {
		t.Errorf("string: got %q, want %q", g, w)
	}
	m.SetLabel("coin")
	if g := m.String(); g != "coin" {
		t.Errorf("string: got %q, want %q", g, "coin")
	}
}
