// Copyright © 2024 The BayesLearning Authors
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package wmap

import "golang.org/x/exp/constraints"

// Number is a constraint for numeric values.
type Number interface {
	constraints.Integer | constraints.Float
}

// Scale returns a new map
// in which each value is multiplied by factor.
// The weights are not modified,
// except when two scaled values collide,
// in which case their weights are added.
func Scale[T Number](m *Map[T], factor T) *Map[T] {
	n := &Map[T]{
		label: m.label,
		log:   m.log,
		keys:  make([]T, 0, len(m.keys)),
		w:     make(map[T]float64, len(m.w)),
	}
	for _, v := range m.keys {
		w, _ := m.lookup(v)
		n.Incr(v*factor, w)
	}
	return n
}
