// Copyright © 2024 The BayesLearning Authors
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package wmap

import (
	"fmt"
	"math"
	"slices"
)

// Log transforms the weights into log weights,
// relative to the largest weight of the map.
// After the transformation,
// the largest weight will be 0.
//
// Values with a weight of 0 are removed.
func (m *Map[T]) Log() error {
	if m.log {
		return fmt.Errorf("log: map already under a log transform: %w", ErrInvalidState)
	}
	if m.Len() == 0 {
		m.log = true
		return nil
	}
	mx, err := m.MaxWeight()
	if err != nil {
		return err
	}
	return m.LogRef(mx)
}

// LogRef transforms the weights into log weights,
// relative to the reference value ref.
//
// Values with a weight of 0 are removed.
func (m *Map[T]) LogRef(ref float64) error {
	if m.log {
		return fmt.Errorf("log: map already under a log transform: %w", ErrInvalidState)
	}
	m.log = true

	keys := m.keys[:0]
	for _, v := range m.keys {
		p, _ := m.lookup(v)
		if p == 0 {
			m.unset(v)
			continue
		}
		m.put(v, math.Log(p/ref))
		keys = append(keys, v)
	}
	clear(m.keys[len(keys):])
	m.keys = keys
	return nil
}

// Exp transforms log weights back into weights,
// relative to the largest log weight of the map.
func (m *Map[T]) Exp() error {
	if !m.log {
		return fmt.Errorf("exp: map not under a log transform: %w", ErrInvalidState)
	}
	if m.Len() == 0 {
		m.log = false
		return nil
	}
	return m.ExpRef(slices.Max(m.weights()))
}

// ExpRef transforms log weights back into weights,
// shifting them by the reference value ref
// before the exponentiation.
func (m *Map[T]) ExpRef(ref float64) error {
	if !m.log {
		return fmt.Errorf("exp: map not under a log transform: %w", ErrInvalidState)
	}
	m.log = false

	for _, v := range m.keys {
		p, _ := m.lookup(v)
		m.put(v, math.Exp(p-ref))
	}
	return nil
}
