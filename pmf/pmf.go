// Copyright © 2024 The BayesLearning Authors
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package pmf implements probability mass functions
// of discrete random variables.
//
// A probability mass function (PMF)
// is a weighted map
// in which the weights are interpreted as probabilities.
// The probabilities are not required to sum 1,
// unless the PMF is normalized.
//
// PMFs of numeric values can be combined
// using arithmetic operations
// that produce the distribution
// of the result of the operation
// over two independent random variables,
// or a random variable and a constant.
package pmf

import (
	"cmp"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/jz3707/BayesLearning/wmap"
)

// Errors returned by PMF operations.
var (
	ErrKeyNotFound       = wmap.ErrKeyNotFound
	ErrEmpty             = wmap.ErrEmpty
	ErrInvalidState      = wmap.ErrInvalidState
	ErrDegenerate        = wmap.ErrDegenerate
	ErrUnsupportedSource = wmap.ErrUnsupportedSource

	// ErrDivByZero is returned
	// when an integer PMF is divided
	// by a zero value.
	ErrDivByZero = errors.New("division by zero")
)

// Number is a constraint for numeric values.
type Number = wmap.Number

// Pmf is a probability mass function.
type Pmf[T cmp.Ordered] struct {
	wmap.Map[T]
}

// New creates a new empty PMF.
func New[T cmp.Ordered](label string) *Pmf[T] {
	return &Pmf[T]{
		Map: *wmap.New[T](label),
	}
}

// Copy returns a shallow copy of the PMF.
// If label is empty,
// the label of the original PMF is kept.
func (p *Pmf[T]) Copy(label string) *Pmf[T] {
	return &Pmf[T]{
		Map: *p.Map.Copy(label),
	}
}

// Equal returns true if both PMFs
// have the same values with the same probabilities.
func (p *Pmf[T]) Equal(o *Pmf[T]) bool {
	if o == nil {
		return false
	}
	return p.Map.Equal(&o.Map)
}

// Prob returns the probability of a value.
func (p *Pmf[T]) Prob(x T) float64 {
	return p.Get(x, 0)
}

// ProbDefault returns the probability of a value,
// or def if the value is not defined in the PMF.
func (p *Pmf[T]) ProbDefault(x T, def float64) float64 {
	return p.Get(x, def)
}

// Probs returns the probabilities of a sequence of values.
func (p *Pmf[T]) Probs(xs []T) []float64 {
	probs := make([]float64, len(xs))
	for i, x := range xs {
		probs[i] = p.Prob(x)
	}
	return probs
}

// Normalize scales the probabilities
// so they sum 1.
// It returns the total probability before the scaling.
func (p *Pmf[T]) Normalize() (float64, error) {
	return p.NormalizeTo(1)
}

// NormalizeTo scales the probabilities
// so they sum fraction.
// It returns the total probability before the scaling.
func (p *Pmf[T]) NormalizeTo(fraction float64) (float64, error) {
	if p.IsLog() {
		return 0, fmt.Errorf("normalize: pmf under a log transform: %w", ErrInvalidState)
	}

	total := p.Total()
	if total == 0 {
		return 0, fmt.Errorf("normalize: total probability is zero: %w", ErrDegenerate)
	}

	factor := fraction / total
	for _, v := range p.Values() {
		p.Mult(v, factor)
	}
	return total, nil
}

// Percentile returns the first value,
// in ascending order,
// at which the accumulated probability
// is at least pct (in the range 0-100).
// It returns false if the accumulated probability
// never reaches pct.
func (p *Pmf[T]) Percentile(pct float64) (T, bool) {
	target := pct / 100

	var total float64
	for _, it := range p.SortedItems() {
		total += it.Weight
		if total >= target {
			return it.Value, true
		}
	}
	var zero T
	return zero, false
}

// Median returns the 50th percentile.
func (p *Pmf[T]) Median() (T, bool) {
	return p.Percentile(50)
}

// CredibleInterval returns the central interval
// that contains pct (in the range 0-100)
// of the probability.
func (p *Pmf[T]) CredibleInterval(pct float64) (low, high T, ok bool) {
	tail := (100 - pct) / 2
	low, ok = p.Percentile(tail)
	if !ok {
		return low, high, false
	}
	high, ok = p.Percentile(100 - tail)
	return low, high, ok
}

// ProbLess returns the probability
// that a value drawn from the PMF
// is less than x.
func (p *Pmf[T]) ProbLess(x T) float64 {
	var sum float64
	for v, w := range p.Items() {
		if v < x {
			sum += w
		}
	}
	return sum
}

// ProbLessPmf returns the probability
// that a value drawn from the PMF
// is less than a value drawn from o.
func (p *Pmf[T]) ProbLessPmf(o *Pmf[T]) float64 {
	var sum float64
	for v1, p1 := range p.Items() {
		for v2, p2 := range o.Items() {
			if v1 < v2 {
				sum += p1 * p2
			}
		}
	}
	return sum
}

// ProbEqual returns the probability
// that a value drawn from the PMF
// is equal to x.
func (p *Pmf[T]) ProbEqual(x T) float64 {
	return p.Prob(x)
}

// ProbEqualPmf returns the probability
// that a value drawn from the PMF
// is equal to a value drawn from o.
func (p *Pmf[T]) ProbEqualPmf(o *Pmf[T]) float64 {
	var sum float64
	for v1, p1 := range p.Items() {
		for v2, p2 := range o.Items() {
			if v1 == v2 {
				sum += p1 * p2
			}
		}
	}
	return sum
}

// Random returns a random value from the PMF
// using the default random source.
// The PMF is assumed to be normalized;
// if the total probability is less than 1,
// no value might be returned.
func (p *Pmf[T]) Random() (T, bool) {
	return p.draw(rand.Float64())
}

// Sample returns a random value from the PMF
// using the given random source.
func (p *Pmf[T]) Sample(r *rand.Rand) (T, bool) {
	return p.draw(r.Float64())
}

func (p *Pmf[T]) draw(target float64) (T, bool) {
	var total float64
	for _, it := range p.SortedItems() {
		total += it.Weight
		if total > target {
			return it.Value, true
		}
	}
	var zero T
	return zero, false
}

// Expect returns the expectation of f
// over the PMF.
func (p *Pmf[T]) Expect(f func(T) float64) float64 {
	var sum float64
	for v, w := range p.Items() {
		sum += w * f(v)
	}
	return sum
}

// Mode returns the value with the largest probability.
// If several values share the largest probability,
// the first one inserted is returned.
func (p *Pmf[T]) Mode() (T, error) {
	var mode T
	if p.Len() == 0 {
		return mode, fmt.Errorf("mode: %w", ErrEmpty)
	}

	first := true
	var best float64
	for v, w := range p.Items() {
		if first || w > best {
			mode, best = v, w
			first = false
		}
	}
	return mode, nil
}

// MAP returns the maximum a posteriori estimate,
// i.e., the mode of the PMF.
func (p *Pmf[T]) MAP() (T, error) {
	return p.Mode()
}

// MaximumLikelihood returns the value with the largest likelihood,
// i.e., the mode of the PMF.
func (p *Pmf[T]) MaximumLikelihood() (T, error) {
	return p.Mode()
}
